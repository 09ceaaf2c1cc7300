package questions

import (
	"fmt"
	"math/rand"
)

// TotalLevels is the number of levels with question content.
const TotalLevels = 3

// ForLevel returns the templates eligible for a level. Unknown levels
// yield an empty slice.
func ForLevel(level int) []Template {
	return bank[level]
}

// CountForLevel returns the number of templates defined for a level.
func CountForLevel(level int) int {
	return len(bank[level])
}

// AddMinutes adds a duration in minutes to a clock position, carrying
// minute overflow into hours and folding the result onto the 12-hour
// clock. Durations are bounded to a few hours; wraparound beyond one
// 12-hour cycle is out of scope.
func AddMinutes(h, m, minutes int) (int, int) {
	h += minutes / 60
	m += minutes % 60
	if m >= 60 {
		h++
		m -= 60
	}
	return WrapHour(h), m
}

func pick(rng *rand.Rand, options []string) string {
	return options[rng.Intn(len(options))]
}

func pickInt(rng *rand.Rand, options []int) int {
	return options[rng.Intn(len(options))]
}

// halfHour returns 0 or 30 with equal probability.
func halfHour(rng *rand.Rand) int {
	if rng.Intn(2) == 0 {
		return 0
	}
	return 30
}

// quarterHour returns 0, 15, 30 or 45.
func quarterHour(rng *rand.Rand) int {
	return rng.Intn(4) * 15
}

// bank holds the per-level template catalogue. Level 1 is whole-hour
// arithmetic, level 2 mixes half hours and a minutes-duration
// scenario, level 3 layers irregular minute durations onto a start
// hour.
var bank = map[int][]Template{
	1: {
		{
			ID: "1-1",
			Generate: func(rng *rand.Rand, _ GenContext) Data {
				startHour := rng.Intn(10) + 1
				endHour := startHour + rng.Intn(3) + 1
				activity := pick(rng, []string{"škola", "trening", "ples", "glazbena škola", "igranje"})
				return Data{
					StartHour: startHour,
					EndHour:   endHour,
					Activity:  activity,
					Answer:    HourAnswer(endHour - startHour),
					Hint:      fmt.Sprintf("Razmisli koliko je sati od %d do %d.", startHour, endHour),
				}
			},
			Format: func(d Data) string {
				return fmt.Sprintf("Ako je sada %d sati %s i %s počinje u %d sati %s, koliko sati imaš do tada?",
					d.StartHour, periodWord(d.StartHour), d.Activity, d.EndHour, periodWord(d.EndHour))
			},
		},
		{
			ID: "1-2",
			Generate: func(rng *rand.Rand, _ GenContext) Data {
				startHour := rng.Intn(10) + 1
				duration := rng.Intn(2) + 1
				endHour := WrapHour(startHour + duration)
				activity := pick(rng, []string{"nastava", "sport", "crtanje", "čitanje", "igranje"})
				return Data{
					StartHour:     startHour,
					EndHour:       endHour,
					DurationHours: duration,
					Activity:      activity,
					Answer:        HourAnswer(endHour),
					Hint:          fmt.Sprintf("Dodaj %d na %d.", duration, startHour),
				}
			},
			Format: func(d Data) string {
				return fmt.Sprintf("Ako %s počinje u %d sati i traje %d %s, u koliko sati završava?",
					d.Activity, d.StartHour, d.DurationHours, HourWord(d.DurationHours))
			},
		},
		{
			ID: "1-3",
			Generate: func(rng *rand.Rand, gctx GenContext) Data {
				startHour := rng.Intn(3) + 8
				duration := rng.Intn(3) + 4
				return Data{
					StartHour:     startHour,
					EndHour:       startHour + duration,
					DurationHours: duration,
					PlayerName:    gctx.PlayerName,
					Answer:        HourAnswer(duration),
					Hint:          fmt.Sprintf("Oduzmi %d od %d.", startHour, startHour+duration),
				}
			},
			Format: func(d Data) string {
				return fmt.Sprintf("%s ide u školu u %d sati, a završava u %d sati. Koliko sati provodi u školi?",
					d.PlayerName, d.StartHour, d.EndHour)
			},
		},
	},

	2: {
		{
			ID: "2-1",
			Generate: func(rng *rand.Rand, _ GenContext) Data {
				activity := pick(rng, []string{"škola", "ručak", "odmor", "domaća zadaća", "igranje"})
				startHour := rng.Intn(12) + 1
				startMinute := halfHour(rng)
				hoursLater := rng.Intn(3) + 1
				endHour := WrapHour(startHour + hoursLater)
				return Data{
					StartHour:    startHour,
					StartMinute:  startMinute,
					EndHour:      endHour,
					EndMinute:    startMinute,
					Activity:     activity,
					StartTimeStr: ClockString(startHour, startMinute),
					EndTimeStr:   ClockString(endHour, startMinute),
					Answer:       HourAnswer(hoursLater),
					Hint: fmt.Sprintf("Izbroji sate od %s do %s.",
						ClockString(startHour, startMinute), ClockString(endHour, startMinute)),
				}
			},
			Format: func(d Data) string {
				return fmt.Sprintf("Ako %s počinje u %s i završava u %s, koliko sati traje?",
					d.Activity, d.StartTimeStr, d.EndTimeStr)
			},
		},
		{
			ID: "2-2",
			Generate: func(rng *rand.Rand, gctx GenContext) Data {
				startHour := rng.Intn(6) + 1
				startMinute := halfHour(rng)
				durationHours := rng.Intn(2) + 1
				durationMinutes := halfHour(rng)
				endHour, endMinute := AddMinutes(startHour, startMinute, durationHours*60+durationMinutes)
				return Data{
					StartHour:       startHour,
					StartMinute:     startMinute,
					EndHour:         endHour,
					EndMinute:       endMinute,
					DurationHours:   durationHours,
					DurationMinutes: durationMinutes,
					PlayerName:      gctx.PlayerName,
					StartTimeStr:    ClockString(startHour, startMinute),
					Answer:          ClockAnswer(endHour, endMinute),
					Hint: fmt.Sprintf("Dodaj %s na %s.",
						DurationText(durationHours*60+durationMinutes), ClockString(startHour, startMinute)),
				}
			},
			Format: func(d Data) string {
				return fmt.Sprintf("%s ima rođendansku proslavu koja počinje u %s i traje %s. U koliko sati završava?",
					d.PlayerName, d.StartTimeStr, DurationText(d.DurationHours*60+d.DurationMinutes))
			},
		},
		{
			ID: "2-3",
			Generate: func(rng *rand.Rand, gctx GenContext) Data {
				startHour := rng.Intn(3) + 7
				startMinute := quarterHour(rng)
				durationMinutes := rng.Intn(3)*15 + 15
				endHour, endMinute := AddMinutes(startHour, startMinute, durationMinutes)
				return Data{
					StartHour:       startHour,
					StartMinute:     startMinute,
					EndHour:         endHour,
					EndMinute:       endMinute,
					DurationMinutes: durationMinutes,
					PlayerName:      gctx.PlayerName,
					StartTimeStr:    ClockString(startHour, startMinute),
					EndTimeStr:      ClockString(endHour, endMinute),
					Answer:          MinutesAnswer(durationMinutes),
					Hint: fmt.Sprintf("Izračunaj razliku između %s i %s.",
						ClockString(startHour, startMinute), ClockString(endHour, endMinute)),
				}
			},
			Format: func(d Data) string {
				return fmt.Sprintf("%s kreće od kuće u %s i dolazi u školu u %s. Koliko traje put do škole?",
					d.PlayerName, d.StartTimeStr, d.EndTimeStr)
			},
		},
	},

	3: {
		{
			ID: "3-1",
			Generate: func(rng *rand.Rand, _ GenContext) Data {
				startHour := rng.Intn(4) + 6
				durationMinutes := pickInt(rng, []int{45, 60, 75, 90, 120})
				return bedtimeData(startHour, 0, durationMinutes)
			},
			Format: func(d Data) string {
				return fmt.Sprintf("Ako je večera u %d sati i vrijeme za spavanje je %s kasnije, u koliko sati je vrijeme za spavanje?",
					d.StartHour, d.TimeText)
			},
		},
		{
			ID: "3-2",
			Generate: func(rng *rand.Rand, _ GenContext) Data {
				startHour := rng.Intn(4) + 5
				durationMinutes := pickInt(rng, []int{90, 105, 120, 135, 150})
				return bedtimeData(startHour, 0, durationMinutes)
			},
			Format: func(d Data) string {
				return fmt.Sprintf("Ako počneš gledati film u %d:00 i traje %s, u koliko sati završava?",
					d.StartHour, d.TimeText)
			},
		},
		{
			ID: "3-3",
			Generate: func(rng *rand.Rand, gctx GenContext) Data {
				startHour := rng.Intn(6) + 3
				startMinute := quarterHour(rng)
				durationMinutes := pickInt(rng, []int{45, 60, 75, 90})
				activity := "ples"
				if gctx.Character == CharacterBoy {
					activity = "nogometni trening"
				}
				d := bedtimeData(startHour, startMinute, durationMinutes)
				d.Activity = activity
				d.StartTimeStr = ClockString(startHour, startMinute)
				d.Hint = fmt.Sprintf("Dodaj %s na %s.", d.TimeText, d.StartTimeStr)
				return d
			},
			Format: func(d Data) string {
				return fmt.Sprintf("Ako %s počinje u %s i traje %s, u koliko sati završava?",
					d.Activity, d.StartTimeStr, d.TimeText)
			},
		},
	},
}

// bedtimeData builds the shared level-3 shape: a start position plus a
// minute duration, collapsing to an hour answer when the end lands
// exactly on the hour.
func bedtimeData(startHour, startMinute, durationMinutes int) Data {
	endHour, endMinute := AddMinutes(startHour, startMinute, durationMinutes)
	timeText := DurationText(durationMinutes)

	var answer Answer
	if endMinute == 0 {
		answer = HourAnswer(endHour)
	} else {
		answer = ClockAnswer(endHour, endMinute)
	}

	return Data{
		StartHour:       startHour,
		StartMinute:     startMinute,
		EndHour:         endHour,
		EndMinute:       endMinute,
		DurationMinutes: durationMinutes,
		TimeText:        timeText,
		Answer:          answer,
		Hint:            fmt.Sprintf("Dodaj %s na %s.", timeText, ClockString(startHour, startMinute)),
	}
}
