package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettingsAreValid(t *testing.T) {
	s := DefaultSettings()
	require.NoError(t, s.Validate())
	assert.Equal(t, 80, s.LevelCompletionThreshold)
	assert.Equal(t, 5, s.QuestionsPerLevel)
	assert.Equal(t, 30, s.TimeLimit)
	assert.True(t, s.SoundsEnabled)
}

func TestValidateRanges(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Settings)
		want   error
	}{
		{"threshold too low", func(s *Settings) { s.LevelCompletionThreshold = 49 }, ErrThresholdRange},
		{"threshold too high", func(s *Settings) { s.LevelCompletionThreshold = 101 }, ErrThresholdRange},
		{"threshold at bounds", func(s *Settings) { s.LevelCompletionThreshold = 50 }, nil},
		{"questions too few", func(s *Settings) { s.QuestionsPerLevel = 2 }, ErrQuestionsRange},
		{"questions too many", func(s *Settings) { s.QuestionsPerLevel = 11 }, ErrQuestionsRange},
		{"time limit too short", func(s *Settings) { s.TimeLimit = 9 }, ErrTimeLimitRange},
		{"time limit at minimum", func(s *Settings) { s.TimeLimit = 10 }, nil},
		{"volume negative", func(s *Settings) { s.SoundsVolume = -1 }, ErrVolumeRange},
		{"volume too loud", func(s *Settings) { s.SoundsVolume = 101 }, ErrVolumeRange},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := DefaultSettings()
			tc.mutate(&s)
			err := s.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.want)
			}
		})
	}
}

func TestSettingsRecordRoundTrip(t *testing.T) {
	s := DefaultSettings()
	s.TimeLimit = 45
	s.SoundsEnabled = false
	s.PlayerName = "Marta"

	got := SettingsFromRecord(s.Record())
	assert.Equal(t, s, got)
}
