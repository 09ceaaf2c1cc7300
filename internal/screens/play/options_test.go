package play

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/satko/internal/grade"
	"github.com/abhisek/satko/internal/questions"
)

func TestBuildOptionsContainsCorrectAnswer(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	answers := []questions.Answer{
		questions.HourAnswer(3),
		questions.ClockAnswer(8, 30),
		questions.MinutesAnswer(45),
	}

	for _, a := range answers {
		opts, correct := buildOptions(rng, a)
		require.NotEmpty(t, opts, "answer %v", a)
		require.Less(t, correct, len(opts))
		assert.Equal(t, a.Display(), opts[correct])

		// No duplicate options.
		seen := map[string]bool{}
		for _, o := range opts {
			assert.False(t, seen[o], "duplicate option %q", o)
			seen[o] = true
		}
	}
}

func TestBuildOptionsGradeAsTyped(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	answers := []questions.Answer{
		questions.HourAnswer(5),
		questions.ClockAnswer(7, 45),
		questions.MinutesAnswer(30),
	}

	// Every option string must be valid typed input: only the correct
	// one grades true, and none grade as malformed.
	for _, a := range answers {
		opts, correct := buildOptions(rng, a)
		for i, o := range opts {
			ok, err := grade.Check(o, a)
			require.NoError(t, err, "option %q", o)
			assert.Equal(t, i == correct, ok, "option %q", o)
		}
	}
}

func TestBuildOptionsDistractorsStayPlausible(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 50; i++ {
		opts, _ := buildOptions(rng, questions.HourAnswer(1))
		for _, o := range opts {
			assert.NotEqual(t, "0", o)
			assert.NotEqual(t, "-1", o)
		}
	}
}
