package game

import (
	"errors"

	"github.com/abhisek/satko/internal/store"
)

// Settings holds the tunable game configuration. Values are validated
// before they are applied or persisted.
type Settings struct {
	// LevelCompletionThreshold is the percentage of QuestionsPerLevel
	// that must be answered correctly to advance (50-100).
	LevelCompletionThreshold int

	// QuestionsPerLevel is the per-level target used for the
	// completion percentage (3-10).
	QuestionsPerLevel int

	// TotalLevels is the number of levels in the game.
	TotalLevels int

	// TimeLimit is the per-question countdown in seconds.
	TimeLimit int

	SoundsEnabled bool
	SoundsVolume  int // 0-100

	// PlayerName overrides the character's default name when set.
	PlayerName string
}

// Default character names used when the player doesn't enter one.
const (
	DefaultBoyName  = "Marko"
	DefaultGirlName = "Ana"
)

// DefaultSettings returns the stock configuration.
func DefaultSettings() Settings {
	return Settings{
		LevelCompletionThreshold: 80,
		QuestionsPerLevel:        5,
		TotalLevels:              3,
		TimeLimit:                30,
		SoundsEnabled:            true,
		SoundsVolume:             80,
	}
}

// Validation failures carry player-facing messages shown inline in the
// settings view.
var (
	ErrThresholdRange = errors.New("Prag za završetak razine mora biti između 50% i 100%.")
	ErrQuestionsRange = errors.New("Broj pitanja po razini mora biti između 3 i 10.")
	ErrTimeLimitRange = errors.New("Vremensko ograničenje mora biti najmanje 10 sekundi.")
	ErrVolumeRange    = errors.New("Glasnoća mora biti između 0 i 100.")
)

// Validate checks range constraints. Out-of-range settings are
// rejected before persisting.
func (s Settings) Validate() error {
	if s.LevelCompletionThreshold < 50 || s.LevelCompletionThreshold > 100 {
		return ErrThresholdRange
	}
	if s.QuestionsPerLevel < 3 || s.QuestionsPerLevel > 10 {
		return ErrQuestionsRange
	}
	if s.TimeLimit < 10 {
		return ErrTimeLimitRange
	}
	if s.SoundsVolume < 0 || s.SoundsVolume > 100 {
		return ErrVolumeRange
	}
	return nil
}

// Record converts to the persistence shape.
func (s Settings) Record() store.SettingsRecord {
	return store.SettingsRecord{
		LevelCompletionThreshold: s.LevelCompletionThreshold,
		QuestionsPerLevel:        s.QuestionsPerLevel,
		TimeLimit:                s.TimeLimit,
		SoundsEnabled:            s.SoundsEnabled,
		SoundsVolume:             s.SoundsVolume,
		PlayerName:               s.PlayerName,
	}
}

// SettingsFromRecord restores settings from the persistence shape,
// falling back to defaults for fields the record does not carry.
func SettingsFromRecord(rec store.SettingsRecord) Settings {
	s := DefaultSettings()
	s.LevelCompletionThreshold = rec.LevelCompletionThreshold
	s.QuestionsPerLevel = rec.QuestionsPerLevel
	s.TimeLimit = rec.TimeLimit
	s.SoundsEnabled = rec.SoundsEnabled
	s.SoundsVolume = rec.SoundsVolume
	s.PlayerName = rec.PlayerName
	return s
}
