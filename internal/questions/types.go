package questions

import (
	"fmt"
	"math/rand"
)

// Character identifies the player's chosen character.
type Character string

const (
	CharacterBoy  Character = "boy"
	CharacterGirl Character = "girl"
)

// GenContext carries player identity into data generators. Passing it
// explicitly keeps generators free of post-generation substitution.
type GenContext struct {
	PlayerName string
	Character  Character
}

// AnswerKind discriminates how an answer is encoded and graded.
type AnswerKind string

const (
	// AnswerHour is a bare hour count or hour-on-the-clock, graded numerically.
	AnswerHour AnswerKind = "hour"

	// AnswerTime is a clock time in "H:MM" form, graded as a normalized string.
	AnswerTime AnswerKind = "time"

	// AnswerMinutes is a duration in minutes, graded numerically.
	AnswerMinutes AnswerKind = "minutes"
)

// Answer is the canonical correct answer for one question instance.
// Exactly one value field is meaningful, selected by Kind.
type Answer struct {
	Kind    AnswerKind
	Hour    int
	Clock   string
	Minutes int
}

// HourAnswer builds an hour-kind answer.
func HourAnswer(h int) Answer {
	return Answer{Kind: AnswerHour, Hour: h}
}

// ClockAnswer builds a time-kind answer from an hour and minute,
// formatted canonically as "H:MM".
func ClockAnswer(h, m int) Answer {
	return Answer{Kind: AnswerTime, Clock: ClockString(h, m)}
}

// MinutesAnswer builds a minutes-kind answer.
func MinutesAnswer(n int) Answer {
	return Answer{Kind: AnswerMinutes, Minutes: n}
}

// Display renders the answer the way it is shown in feedback messages.
func (a Answer) Display() string {
	switch a.Kind {
	case AnswerHour:
		return fmt.Sprintf("%d", a.Hour)
	case AnswerTime:
		return a.Clock
	case AnswerMinutes:
		return fmt.Sprintf("%d %s", a.Minutes, MinuteWord(a.Minutes))
	}
	return ""
}

// Data holds one generated set of question values. Clock fields are
// retained for display components even when not part of the answer.
type Data struct {
	StartHour   int
	StartMinute int
	EndHour     int
	EndMinute   int

	DurationHours   int
	DurationMinutes int

	Activity   string
	PlayerName string

	// StartTimeStr / EndTimeStr / TimeText are preformatted fragments
	// interpolated into the question text.
	StartTimeStr string
	EndTimeStr   string
	TimeText     string

	Answer Answer
	Hint   string
}

// Template pairs a text formatter with a data generator for one
// scenario archetype. Templates are defined at load time and never
// mutated.
type Template struct {
	// ID is unique within the template's level.
	ID string

	// Generate produces fresh random data for one instance.
	Generate func(rng *rand.Rand, gctx GenContext) Data

	// Format renders the question text from generated data.
	Format func(d Data) string
}

// Instance is a template bound to one generated data snapshot.
type Instance struct {
	ID   string
	Text string
	Data Data
}
