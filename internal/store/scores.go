package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MaxScoreEntries caps the score history at the top entries by score.
const MaxScoreEntries = 10

// ScoreRecord is one finished playthrough in the score history.
type ScoreRecord struct {
	ID             string
	PlayerName     string
	Score          int
	Level          int
	CorrectAnswers int
	TotalQuestions int
	AverageTime    float64
	CreatedAt      time.Time
}

// ScoreRepo manages the append-only, top-N score history.
type ScoreRepo interface {
	// Add inserts an entry and trims the table to the top
	// MaxScoreEntries by score (older entries win ties).
	Add(ctx context.Context, rec ScoreRecord) error

	// Top returns the history, best score first.
	Top(ctx context.Context) ([]ScoreRecord, error)

	// Clear removes all entries.
	Clear(ctx context.Context) error
}

type scoreRepo struct {
	db *sql.DB
}

func (r *scoreRepo) Add(ctx context.Context, rec ScoreRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin score insert: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO scores (id, player_name, score, level, correct_answers, total_questions, average_time, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.PlayerName,
		rec.Score,
		rec.Level,
		rec.CorrectAnswers,
		rec.TotalQuestions,
		rec.AverageTime,
		createdAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting score: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`DELETE FROM scores WHERE id NOT IN (
			SELECT id FROM scores ORDER BY score DESC, created_at ASC LIMIT ?
		)`, MaxScoreEntries)
	if err != nil {
		return fmt.Errorf("trimming scores: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit score insert: %w", err)
	}
	return nil
}

func (r *scoreRepo) Top(ctx context.Context) ([]ScoreRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, player_name, score, level, correct_answers, total_questions, average_time, created_at
		 FROM scores ORDER BY score DESC, created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing scores: %w", err)
	}
	defer rows.Close()

	var out []ScoreRecord
	for rows.Next() {
		var rec ScoreRecord
		var createdAt string
		if err := rows.Scan(
			&rec.ID,
			&rec.PlayerName,
			&rec.Score,
			&rec.Level,
			&rec.CorrectAnswers,
			&rec.TotalQuestions,
			&rec.AverageTime,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scanning score: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			rec.CreatedAt = t
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *scoreRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM scores`); err != nil {
		return fmt.Errorf("clearing scores: %w", err)
	}
	return nil
}
