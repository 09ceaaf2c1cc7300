package questions

import "fmt"

// Croatian unit words decline three ways by count: 1, 2-4, and 5+.
// The question text and hints must agree with this rule, so all
// duration formatting goes through these helpers.

// HourWord returns the declined form of "sat" for n hours.
func HourWord(n int) string {
	switch {
	case n == 1:
		return "sat"
	case n < 5:
		return "sata"
	default:
		return "sati"
	}
}

// MinuteWord returns the declined form of "minuta" for n minutes.
func MinuteWord(n int) string {
	switch {
	case n == 1:
		return "minuta"
	case n < 5:
		return "minute"
	default:
		return "minuta"
	}
}

// DurationText renders a duration in minutes as Croatian prose,
// e.g. "1 sat i 30 minuta", "2 sata", "45 minuta".
func DurationText(minutes int) string {
	hours := minutes / 60
	rem := minutes % 60

	if hours == 0 {
		return fmt.Sprintf("%d %s", minutes, MinuteWord(minutes))
	}
	if rem == 0 {
		return fmt.Sprintf("%d %s", hours, HourWord(hours))
	}
	return fmt.Sprintf("%d %s i %d %s", hours, HourWord(hours), rem, MinuteWord(rem))
}

// ClockString formats an hour and minute as "H:MM" with zero-padded minutes.
func ClockString(h, m int) string {
	return fmt.Sprintf("%d:%02d", h, m)
}

// WrapHour folds an hour count onto the 12-hour clock. A result that
// lands on 0 reads as 12.
func WrapHour(h int) int {
	if h > 12 {
		h = h % 12
		if h == 0 {
			h = 12
		}
	}
	return h
}

// periodWord returns the day-period suffix for an hour ("ujutro" before
// noon, "popodne" otherwise).
func periodWord(h int) string {
	if h < 12 {
		return "ujutro"
	}
	return "popodne"
}
