package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// Reopening an existing database runs the same schema statements
	// without error.
	s, err = Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())
}

func TestSessionRepoRoundTrip(t *testing.T) {
	repo := newTestStore(t).SessionRepo()
	ctx := context.Background()

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	rec := SessionRecord{
		GameState:         "playing",
		Score:             12,
		Level:             2,
		LevelProgress:     1,
		TotalQuestions:    7,
		CorrectAnswers:    6,
		Character:         "girl",
		PlayerName:        "Ana",
		AverageTime:       4.5,
		TotalTime:         27,
		QuestionsAnswered: 6,
	}
	require.NoError(t, repo.Save(ctx, rec))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, rec.Score, got.Score)
	assert.Equal(t, rec.GameState, got.GameState)
	assert.Equal(t, rec.PlayerName, got.PlayerName)
	assert.Equal(t, rec.AverageTime, got.AverageTime)
	assert.False(t, got.SavedAt.IsZero())
}

func TestSessionRepoSaveReplaces(t *testing.T) {
	repo := newTestStore(t).SessionRepo()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, SessionRecord{GameState: "playing", Score: 5, Level: 1}))
	require.NoError(t, repo.Save(ctx, SessionRecord{GameState: "menu", Score: 9, Level: 2}))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "menu", got.GameState)
	assert.Equal(t, 9, got.Score)
	assert.Equal(t, 2, got.Level)
}

func TestSessionRepoClear(t *testing.T) {
	repo := newTestStore(t).SessionRepo()
	ctx := context.Background()

	require.NoError(t, repo.Clear(ctx))

	require.NoError(t, repo.Save(ctx, SessionRecord{GameState: "playing", Level: 1}))
	require.NoError(t, repo.Clear(ctx))

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestScoreRepoOrdersByScoreThenAge(t *testing.T) {
	repo := newTestStore(t).ScoreRepo()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Add(ctx, ScoreRecord{PlayerName: "Ana", Score: 20, CreatedAt: base}))
	require.NoError(t, repo.Add(ctx, ScoreRecord{PlayerName: "Marko", Score: 35, CreatedAt: base.Add(time.Minute)}))
	require.NoError(t, repo.Add(ctx, ScoreRecord{PlayerName: "Iva", Score: 20, CreatedAt: base.Add(2 * time.Minute)}))

	top, err := repo.Top(ctx)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, "Marko", top[0].PlayerName)

	// Equal scores rank by age, older first.
	assert.Equal(t, "Ana", top[1].PlayerName)
	assert.Equal(t, "Iva", top[2].PlayerName)
}

func TestScoreRepoTrimsToTopEntries(t *testing.T) {
	repo := newTestStore(t).ScoreRepo()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < MaxScoreEntries+3; i++ {
		require.NoError(t, repo.Add(ctx, ScoreRecord{
			PlayerName: fmt.Sprintf("igrač %d", i),
			Score:      i + 1,
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		}))
	}

	top, err := repo.Top(ctx)
	require.NoError(t, err)
	require.Len(t, top, MaxScoreEntries)

	// The lowest scores were trimmed away.
	assert.Equal(t, MaxScoreEntries+3, top[0].Score)
	assert.Equal(t, 4, top[len(top)-1].Score)
}

func TestScoreRepoClear(t *testing.T) {
	repo := newTestStore(t).ScoreRepo()
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, ScoreRecord{PlayerName: "Ana", Score: 10}))
	require.NoError(t, repo.Clear(ctx))

	top, err := repo.Top(ctx)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestSettingsRepoRoundTrip(t *testing.T) {
	repo := newTestStore(t).SettingsRepo()
	ctx := context.Background()

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	rec := SettingsRecord{
		LevelCompletionThreshold: 70,
		QuestionsPerLevel:        6,
		TimeLimit:                45,
		SoundsEnabled:            false,
		SoundsVolume:             40,
		PlayerName:               "Marta",
	}
	require.NoError(t, repo.Save(ctx, rec))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, rec, *got)

	rec.TimeLimit = 60
	rec.SoundsEnabled = true
	require.NoError(t, repo.Save(ctx, rec))

	got, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 60, got.TimeLimit)
	assert.True(t, got.SoundsEnabled)
}
