package play

import (
	"math/rand"
	"strconv"
	"strings"

	"github.com/abhisek/satko/internal/questions"
)

const optionCount = 4

// buildOptions produces the multiple-choice options for an answer:
// the correct value plus three plausible distractors, shuffled.
// Returns the option strings and the index of the correct one. Every
// option string also grades correctly when submitted as typed input.
func buildOptions(rng *rand.Rand, a questions.Answer) ([]string, int) {
	correct := a.Display()

	seen := map[string]bool{correct: true}
	distractors := make([]string, 0, optionCount-1)
	for _, d := range candidateDistractors(rng, a) {
		if seen[d] {
			continue
		}
		seen[d] = true
		distractors = append(distractors, d)
		if len(distractors) == optionCount-1 {
			break
		}
	}

	options := append(distractors, correct)
	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	for i, opt := range options {
		if opt == correct {
			return options, i
		}
	}
	return options, 0
}

// candidateDistractors lists near-miss values around the correct
// answer, closest first-ish but in randomized order.
func candidateDistractors(rng *rand.Rand, a questions.Answer) []string {
	var out []string

	switch a.Kind {
	case questions.AnswerHour:
		for _, off := range shuffledInts(rng, []int{-2, -1, 1, 2, 3}) {
			v := a.Hour + off
			if v < 1 || v > 12 {
				continue
			}
			out = append(out, strconv.Itoa(v))
		}

	case questions.AnswerTime:
		h, m := splitClock(a.Clock)
		for _, off := range shuffledInts(rng, []int{-60, -30, -15, 15, 30, 60}) {
			total := h*60 + m + off
			if total < 60 {
				continue
			}
			nh := questions.WrapHour(total / 60)
			out = append(out, questions.ClockString(nh, total%60))
		}

	case questions.AnswerMinutes:
		for _, off := range shuffledInts(rng, []int{-30, -15, 15, 30}) {
			v := a.Minutes + off
			if v < 5 {
				continue
			}
			out = append(out, questions.MinutesAnswer(v).Display())
		}
	}

	return out
}

func shuffledInts(rng *rand.Rand, vals []int) []int {
	out := make([]int, len(vals))
	copy(out, vals)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

func splitClock(s string) (int, int) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0
	}
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	return h, m
}
