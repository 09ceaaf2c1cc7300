package questions

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHourWordDeclension(t *testing.T) {
	cases := map[int]string{
		1: "sat",
		2: "sata",
		3: "sata",
		4: "sata",
		5: "sati",
		6: "sati",
		12: "sati",
	}
	for n, want := range cases {
		assert.Equal(t, want, HourWord(n), "n=%d", n)
	}
}

func TestMinuteWordDeclension(t *testing.T) {
	cases := map[int]string{
		1:  "minuta",
		2:  "minute",
		4:  "minute",
		5:  "minuta",
		15: "minuta",
		30: "minuta",
		45: "minuta",
	}
	for n, want := range cases {
		assert.Equal(t, want, MinuteWord(n), "n=%d", n)
	}
}

func TestDurationText(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{45, "45 minuta"},
		{60, "1 sat"},
		{75, "1 sat i 15 minuta"},
		{90, "1 sat i 30 minuta"},
		{120, "2 sata"},
		{135, "2 sata i 15 minuta"},
		{150, "2 sata i 30 minuta"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DurationText(tc.minutes), "minutes=%d", tc.minutes)
	}
}

func TestWrapHour(t *testing.T) {
	assert.Equal(t, 11, WrapHour(11))
	assert.Equal(t, 12, WrapHour(12))
	assert.Equal(t, 1, WrapHour(13))
	assert.Equal(t, 3, WrapHour(15))
	assert.Equal(t, 12, WrapHour(24))
}

func TestClockString(t *testing.T) {
	assert.Equal(t, "9:05", ClockString(9, 5))
	assert.Equal(t, "12:30", ClockString(12, 30))
	assert.Equal(t, "7:00", ClockString(7, 0))
}

func TestAddMinutesCarriesAndWraps(t *testing.T) {
	cases := []struct {
		h, m, add      int
		wantH, wantM   int
	}{
		{7, 0, 45, 7, 45},
		{7, 30, 45, 8, 15},
		{6, 0, 120, 8, 0},
		{11, 30, 90, 1, 0},
		{10, 0, 120, 12, 0},
	}
	for _, tc := range cases {
		h, m := AddMinutes(tc.h, tc.m, tc.add)
		assert.Equal(t, tc.wantH, h, "%d:%02d +%d", tc.h, tc.m, tc.add)
		assert.Equal(t, tc.wantM, m, "%d:%02d +%d", tc.h, tc.m, tc.add)
	}
}

func TestAnswerDisplay(t *testing.T) {
	assert.Equal(t, "3", HourAnswer(3).Display())
	assert.Equal(t, "8:15", ClockAnswer(8, 15).Display())
	assert.Equal(t, "45 minuta", MinutesAnswer(45).Display())
	assert.Equal(t, "30 minuta", MinutesAnswer(30).Display())
}

func TestClockAnswerFormatsCanonically(t *testing.T) {
	a := ClockAnswer(9, 5)
	assert.Equal(t, AnswerTime, a.Kind)
	assert.Equal(t, "9:05", a.Clock)
	assert.Equal(t, fmt.Sprintf("%d:%02d", 9, 5), a.Clock)
}
