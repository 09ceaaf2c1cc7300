package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// SessionRecord is the saved snapshot of a game session. A single row
// exists at most; saving replaces it.
type SessionRecord struct {
	GameState         string
	Score             int
	Level             int
	LevelProgress     int
	TotalQuestions    int
	CorrectAnswers    int
	Character         string
	PlayerName        string
	AverageTime       float64
	TotalTime         float64
	QuestionsAnswered int
	SavedAt           time.Time
}

// SessionRepo manages the saved session.
type SessionRepo interface {
	// Save replaces the saved session.
	Save(ctx context.Context, rec SessionRecord) error

	// Load returns the saved session, or ErrNotFound.
	Load(ctx context.Context) (*SessionRecord, error)

	// Clear removes the saved session. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}

type sessionRepo struct {
	db *sql.DB
}

func (r *sessionRepo) Save(ctx context.Context, rec SessionRecord) error {
	query := `INSERT INTO saved_session
		(id, game_state, score, level, level_progress, total_questions, correct_answers,
		 character, player_name, average_time, total_time, questions_answered, saved_at)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			game_state = excluded.game_state,
			score = excluded.score,
			level = excluded.level,
			level_progress = excluded.level_progress,
			total_questions = excluded.total_questions,
			correct_answers = excluded.correct_answers,
			character = excluded.character,
			player_name = excluded.player_name,
			average_time = excluded.average_time,
			total_time = excluded.total_time,
			questions_answered = excluded.questions_answered,
			saved_at = excluded.saved_at`

	savedAt := rec.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, query,
		rec.GameState,
		rec.Score,
		rec.Level,
		rec.LevelProgress,
		rec.TotalQuestions,
		rec.CorrectAnswers,
		rec.Character,
		rec.PlayerName,
		rec.AverageTime,
		rec.TotalTime,
		rec.QuestionsAnswered,
		savedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

func (r *sessionRepo) Load(ctx context.Context) (*SessionRecord, error) {
	query := `SELECT game_state, score, level, level_progress, total_questions, correct_answers,
		character, player_name, average_time, total_time, questions_answered, saved_at
		FROM saved_session WHERE id = 1`

	var rec SessionRecord
	var savedAt string
	err := r.db.QueryRowContext(ctx, query).Scan(
		&rec.GameState,
		&rec.Score,
		&rec.Level,
		&rec.LevelProgress,
		&rec.TotalQuestions,
		&rec.CorrectAnswers,
		&rec.Character,
		&rec.PlayerName,
		&rec.AverageTime,
		&rec.TotalTime,
		&rec.QuestionsAnswered,
		&savedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}

	if t, err := time.Parse(time.RFC3339, savedAt); err == nil {
		rec.SavedAt = t
	}
	return &rec, nil
}

func (r *sessionRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM saved_session WHERE id = 1`); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}
