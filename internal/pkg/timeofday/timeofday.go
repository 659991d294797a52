// Package timeofday provides a comparable time-of-day value used for shift
// windows and slot labels. It replaces ad-hoc parsing of strings like
// "9:00 AM" scattered across the booking flow with a single canonical type.
package timeofday

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay is a clock time expressed as minutes since midnight.
// The zero value is midnight.
type TimeOfDay int

var (
	ErrInvalidFormat = fmt.Errorf("invalid time of day format")
	ErrOutOfRange    = fmt.Errorf("time of day out of range")
)

// New builds a TimeOfDay from an hour (0-23) and minute (0-59).
func New(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, ErrOutOfRange
	}
	return TimeOfDay(hour*60 + minute), nil
}

// MustNew is like New but panics on invalid input. Intended for constants
// and tests.
func MustNew(hour, minute int) TimeOfDay {
	t, err := New(hour, minute)
	if err != nil {
		panic(err)
	}
	return t
}

// Parse accepts both 24-hour forms ("09:00", "09:00:00") and 12-hour slot
// labels ("9:00 AM", "12:30 pm").
func Parse(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidFormat
	}

	// Detect and strip an AM/PM suffix.
	upper := strings.ToUpper(s)
	meridiem := ""
	for _, suffix := range []string{"AM", "PM"} {
		if strings.HasSuffix(upper, suffix) {
			meridiem = suffix
			s = strings.TrimSpace(s[:len(s)-len(suffix)])
			break
		}
	}

	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, ErrInvalidFormat
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, ErrInvalidFormat
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, ErrInvalidFormat
	}
	// Seconds, if present, are accepted and discarded ("09:00:00").
	if len(parts) == 3 {
		if _, err := strconv.Atoi(parts[2]); err != nil {
			return 0, ErrInvalidFormat
		}
	}

	switch meridiem {
	case "AM":
		if hour < 1 || hour > 12 {
			return 0, ErrOutOfRange
		}
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour < 1 || hour > 12 {
			return 0, ErrOutOfRange
		}
		if hour != 12 {
			hour += 12
		}
	}

	return New(hour, minute)
}

// Hour returns the hour component (0-23).
func (t TimeOfDay) Hour() int { return int(t) / 60 }

// Minute returns the minute component (0-59).
func (t TimeOfDay) Minute() int { return int(t) % 60 }

// Minutes returns the total minutes since midnight.
func (t TimeOfDay) Minutes() int { return int(t) }

// Add returns the time of day shifted forward by the given number of minutes.
// The result may exceed the end of the day; callers compare against window
// bounds rather than wrapping.
func (t TimeOfDay) Add(minutes int) TimeOfDay { return t + TimeOfDay(minutes) }

// Before reports whether t is earlier than other.
func (t TimeOfDay) Before(other TimeOfDay) bool { return t < other }

// After reports whether t is later than other.
func (t TimeOfDay) After(other TimeOfDay) bool { return t > other }

// Label renders the user-facing 12-hour slot label, e.g. "9:00 AM" or
// "12:30 PM". This is the exact format persisted on bookings.
func (t TimeOfDay) Label() string {
	hour := t.Hour()
	meridiem := "AM"
	switch {
	case hour == 0:
		hour = 12
	case hour == 12:
		meridiem = "PM"
	case hour > 12:
		hour -= 12
		meridiem = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", hour, t.Minute(), meridiem)
}

// String renders the 24-hour form "HH:MM" used in storage and logs.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}
