package scoreboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rs/zerolog"

	"github.com/abhisek/satko/internal/screen"
	"github.com/abhisek/satko/internal/store"
	"github.com/abhisek/satko/internal/ui/theme"
)

// ScoreboardScreen lists the best finished playthroughs.
type ScoreboardScreen struct {
	scores []store.ScoreRecord
	errMsg string
}

var _ screen.Screen = (*ScoreboardScreen)(nil)

// New creates a ScoreboardScreen with the history loaded up front.
func New(repo store.ScoreRepo, log zerolog.Logger) *ScoreboardScreen {
	s := &ScoreboardScreen{}
	scores, err := repo.Top(context.Background())
	if err != nil {
		log.Error().Err(err).Msg("load score history")
		s.errMsg = "Ne mogu učitati rezultate."
		return s
	}
	s.scores = scores
	return s
}

func (s *ScoreboardScreen) Title() string {
	return "Rezultati"
}

func (s *ScoreboardScreen) Init() tea.Cmd {
	return nil
}

func (s *ScoreboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *ScoreboardScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n" + s.errMsg)
	}

	if len(s.scores) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\nJoš nema rezultata. Odigraj prvu igru!")
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("\nNajbolji rezultati"))
	b.WriteString("\n\n")

	header := fmt.Sprintf("  %-3s %-20s %7s %7s %8s %10s  %s",
		"#", "Ime", "Bodovi", "Razina", "Točno", "Prosjek", "Datum")
	rows := []string{
		lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render(header),
		lipgloss.NewStyle().Foreground(theme.Border).Render("  " + strings.Repeat("─", max(len(header)-2, 0))),
	}

	for i, rec := range s.scores {
		line := fmt.Sprintf("  %-3d %-20s %7d %7d %8s %9.1fs  %s",
			i+1,
			rec.PlayerName,
			rec.Score,
			rec.Level,
			fmt.Sprintf("%d/%d", rec.CorrectAnswers, rec.TotalQuestions),
			rec.AverageTime,
			rec.CreatedAt.Local().Format("2.1.2006."),
		)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == 0 {
			style = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
		}
		rows = append(rows, style.Render(line))
	}

	table := strings.Join(rows, "\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, table))

	return b.String()
}
