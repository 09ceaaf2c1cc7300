package grade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/satko/internal/questions"
)

func TestCheckHourAnswers(t *testing.T) {
	answer := questions.HourAnswer(3)

	correct, err := Check("3", answer)
	require.NoError(t, err)
	assert.True(t, correct)

	correct, err = Check("  3  ", answer)
	require.NoError(t, err)
	assert.True(t, correct)

	correct, err = Check("4", answer)
	require.NoError(t, err)
	assert.False(t, correct)

	_, err = Check("tri", answer)
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = Check("", answer)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestCheckTimeSeparatorEquivalence(t *testing.T) {
	answer := questions.ClockAnswer(8, 30)

	for _, input := range []string{"8:30", "8.30", "8,30", " 8:30 "} {
		correct, err := Check(input, answer)
		require.NoError(t, err, "input %q", input)
		assert.True(t, correct, "input %q", input)
	}

	correct, err := Check("8:45", answer)
	require.NoError(t, err)
	assert.False(t, correct)

	// Comparison is string-wise after normalization, so a dropped
	// leading zero in the minutes does not pass.
	correct, err = Check("8:3", answer)
	require.NoError(t, err)
	assert.False(t, correct)
}

func TestCheckMinutesUsesLeadingInteger(t *testing.T) {
	answer := questions.MinutesAnswer(45)

	inputs := []string{
		"45", "45 min", "45min", "45 minuta", "45 minute",
		"45 min.", "45 minuta kasnije", "45 sati",
	}
	for _, input := range inputs {
		correct, err := Check(input, answer)
		require.NoError(t, err, "input %q", input)
		assert.True(t, correct, "input %q", input)
	}

	correct, err := Check("30", answer)
	require.NoError(t, err)
	assert.False(t, correct)

	correct, err = Check("30 minuta", answer)
	require.NoError(t, err)
	assert.False(t, correct)

	_, err = Check("minuta 45", answer)
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = Check("", answer)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestNormalizeClockIdempotent(t *testing.T) {
	for _, s := range []string{"8:30", "8.30", "8,30", "12.05"} {
		once := NormalizeClock(s)
		assert.Equal(t, once, NormalizeClock(once), "input %q", s)
	}
	assert.Equal(t, "8:30", NormalizeClock("8.30"))
	assert.Equal(t, "12:05", NormalizeClock("12,05"))
}
