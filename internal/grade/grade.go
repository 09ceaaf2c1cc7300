// Package grade decides whether a submitted answer matches a
// question's canonical answer. Malformed input is a distinct outcome
// from an incorrect answer: the player may correct and retry without
// penalty.
package grade

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/abhisek/satko/internal/questions"
)

// ErrMalformed signals input that cannot be interpreted for the
// question's answer kind. It is a normal grading outcome, not a fault.
var ErrMalformed = errors.New("answer not parseable")

var leadingInt = regexp.MustCompile(`^(\d+)`)

var clockSeparators = strings.NewReplacer(",", ":", ".", ":")

// Check grades raw input against the canonical answer. No type
// coercion happens across answer kinds and there is no partial credit.
func Check(input string, answer questions.Answer) (bool, error) {
	input = strings.TrimSpace(input)

	switch answer.Kind {
	case questions.AnswerHour:
		n, err := strconv.Atoi(input)
		if err != nil {
			return false, ErrMalformed
		}
		return n == answer.Hour, nil

	case questions.AnswerTime:
		return NormalizeClock(input) == NormalizeClock(answer.Clock), nil

	case questions.AnswerMinutes:
		// The leading integer decides; anything after it ("min",
		// "minuta", a stray unit) is ignored.
		m := leadingInt.FindStringSubmatch(input)
		if m == nil {
			return false, ErrMalformed
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return false, ErrMalformed
		}
		return n == answer.Minutes, nil
	}

	return false, ErrMalformed
}

// NormalizeClock rewrites the accepted clock separators ("." and ",")
// to the canonical ":". Already-canonical strings pass through
// unchanged. Comparison stays string-wise so "8:30" and "8:3" never
// conflate.
func NormalizeClock(s string) string {
	return clockSeparators.Replace(strings.TrimSpace(s))
}
