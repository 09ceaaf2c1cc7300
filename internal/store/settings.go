package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SettingsRecord is the persisted game configuration. Range validation
// happens in the game package before anything reaches this layer.
type SettingsRecord struct {
	LevelCompletionThreshold int
	QuestionsPerLevel        int
	TimeLimit                int
	SoundsEnabled            bool
	SoundsVolume             int
	PlayerName               string
}

// SettingsRepo manages the single settings row.
type SettingsRepo interface {
	Save(ctx context.Context, rec SettingsRecord) error

	// Load returns the settings, or ErrNotFound when none were saved yet.
	Load(ctx context.Context) (*SettingsRecord, error)
}

type settingsRepo struct {
	db *sql.DB
}

func (r *settingsRepo) Save(ctx context.Context, rec SettingsRecord) error {
	query := `INSERT INTO settings
		(id, level_completion_threshold, questions_per_level, time_limit, sounds_enabled, sounds_volume, player_name)
		VALUES (1, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			level_completion_threshold = excluded.level_completion_threshold,
			questions_per_level = excluded.questions_per_level,
			time_limit = excluded.time_limit,
			sounds_enabled = excluded.sounds_enabled,
			sounds_volume = excluded.sounds_volume,
			player_name = excluded.player_name`

	enabled := 0
	if rec.SoundsEnabled {
		enabled = 1
	}

	_, err := r.db.ExecContext(ctx, query,
		rec.LevelCompletionThreshold,
		rec.QuestionsPerLevel,
		rec.TimeLimit,
		enabled,
		rec.SoundsVolume,
		rec.PlayerName,
	)
	if err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}

func (r *settingsRepo) Load(ctx context.Context) (*SettingsRecord, error) {
	query := `SELECT level_completion_threshold, questions_per_level, time_limit, sounds_enabled, sounds_volume, player_name
		FROM settings WHERE id = 1`

	var rec SettingsRecord
	var enabled int
	err := r.db.QueryRowContext(ctx, query).Scan(
		&rec.LevelCompletionThreshold,
		&rec.QuestionsPerLevel,
		&rec.TimeLimit,
		&enabled,
		&rec.SoundsVolume,
		&rec.PlayerName,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	rec.SoundsEnabled = enabled != 0
	return &rec, nil
}
