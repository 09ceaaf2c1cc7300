package play

import "time"

// Feedback display durations before the next question appears.
const (
	correctDelay   = 1500 * time.Millisecond
	incorrectDelay = 2000 * time.Millisecond
	levelUpDelay   = 2000 * time.Millisecond
	timeoutDelay   = 2000 * time.Millisecond
)

// countdownTickMsg drives the per-question countdown. The epoch ties a
// tick to the question it was armed for; ticks from a previous
// question carry a stale epoch and are dropped.
type countdownTickMsg struct {
	epoch int
}

// advanceTickMsg fires when the feedback delay ends and the next
// question should be shown. Epoch-guarded the same way.
type advanceTickMsg struct {
	epoch int
}
