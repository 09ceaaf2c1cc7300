package cmd

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/satko/internal/app"
	"github.com/abhisek/satko/internal/audio"
	"github.com/abhisek/satko/internal/game"
	"github.com/abhisek/satko/internal/questions"
	"github.com/abhisek/satko/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "satko",
	Short: "Igra učenja sata za djecu",
	Long:  "Satko — terminalska igra u kojoj djeca vježbaju računanje s vremenom kroz tri razine zadataka.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SATKO_DB env var)")

	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SATKO_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the SQLite store at the resolved path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// newLogger writes structured logs to satko.log beside the database.
// The TUI owns the terminal, so nothing logs to stdout.
func newLogger(cmd *cobra.Command) (zerolog.Logger, func(), error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return zerolog.Nop(), func() {}, err
	}

	logPath := filepath.Join(filepath.Dir(dbPath), "satko.log")
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		// Run without logs rather than refuse to start.
		return zerolog.Nop(), func() {}, nil
	}

	log := zerolog.New(f).With().Timestamp().Logger()
	return log, func() { f.Close() }, nil
}

func runApp(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	log, closeLog, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := game.DefaultSettings()
	if rec, err := st.SettingsRepo().Load(context.Background()); err == nil {
		cfg = game.SettingsFromRecord(*rec)
		if err := cfg.Validate(); err != nil {
			log.Warn().Err(err).Msg("stored settings invalid, using defaults")
			cfg = game.DefaultSettings()
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Error().Err(err).Msg("load settings")
	}

	sound := audio.NewBell(os.Stderr)
	sound.Init()
	sound.SetEnabled(cfg.SoundsEnabled)
	sound.SetVolume(float64(cfg.SoundsVolume) / 100)

	mgr := questions.NewManager(rand.New(rand.NewSource(time.Now().UnixNano())))
	engine := game.NewEngine(cfg, mgr, st.SessionRepo(), st.ScoreRepo(), sound, log)

	if rec, err := st.SessionRepo().Load(context.Background()); err == nil {
		engine.Resume(rec)
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Error().Err(err).Msg("load saved session")
	}

	log.Info().Msg("satko starting")
	return app.Run(app.Options{
		Engine: engine,
		Store:  st,
		Log:    log,
	})
}
