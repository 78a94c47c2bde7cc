// Package recurrence computes care-schedule due dates.
//
// All arithmetic is calendar arithmetic in the location of the input timestamps,
// so a daily 09:00 task stays at 09:00 across month and year boundaries.
package recurrence

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"plantcare/internal/errors"
)

var timeOfDayPattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):([0-5][0-9])$`)

// ErrInvalidTimeOfDay is returned when a time-of-day string is not HH:MM in 24h form.
var ErrInvalidTimeOfDay = errors.New("time of day must be HH:MM (24h)")

// TimeOfDay is an hour and minute on a 24h clock.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses "H:MM" or "HH:MM".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	m := timeOfDayPattern.FindStringSubmatch(s)
	if m == nil {
		return TimeOfDay{}, errors.Wrapf(ErrInvalidTimeOfDay, "parse %q", s)
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])

	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// IsValidTimeOfDay reports whether s parses as a time of day.
func IsValidTimeOfDay(s string) bool {
	return timeOfDayPattern.MatchString(s)
}

// String renders the canonical zero-padded form.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// On returns the instant at t on the calendar day of day, in day's location.
func (t TimeOfDay) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour, t.Minute, 0, 0, day.Location())
}

// AdvanceByDays moves t forward by whole calendar days, keeping the wall-clock time.
func AdvanceByDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// NextDue returns the first occurrence of the schedule that is not before now.
//
// Occurrences are start's calendar day at tod, then every frequencyDays days after it.
// A future first occurrence is returned as is. Otherwise the whole elapsed days are
// divided into cycles to jump close to now and the result is then settled on the
// smallest occurrence >= now, which also covers a first occurrence earlier today.
func NextDue(start time.Time, frequencyDays int, tod TimeOfDay, now time.Time) time.Time {
	if frequencyDays < 1 {
		frequencyDays = 1
	}

	first := tod.On(start)
	if !first.Before(now) {
		return first
	}

	daysElapsed := int(now.Sub(first) / (24 * time.Hour))
	cycles := daysElapsed / frequencyDays
	candidate := AdvanceByDays(first, cycles*frequencyDays)

	for candidate.Before(now) {
		cycles++
		candidate = AdvanceByDays(first, cycles*frequencyDays)
	}

	// A DST shift can leave the jump one cycle late.
	for cycles > 0 {
		prev := AdvanceByDays(first, (cycles-1)*frequencyDays)
		if prev.Before(now) {
			break
		}
		cycles--
		candidate = prev
	}

	return candidate
}
