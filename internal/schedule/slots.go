package schedule

import (
	"sort"
	"time"

	"github.com/trimslot/barber-booking-backend/internal/pkg/timeofday"
)

// Default open interval used for providers who have not configured any
// shifts yet.
var (
	defaultOpen  = timeofday.MustNew(9, 0)
	defaultClose = timeofday.MustNew(18, 0)
)

// SlotInput is everything needed to compute a provider's bookable slots for
// one date. VenueID empty means the independent (unscoped) context.
type SlotInput struct {
	Date            time.Time
	VenueID         string
	Shifts          []*Shift     // all of the provider's shifts, any scope
	Blocks          []*TimeBlock // all of the provider's time blocks, any scope
	BookedLabels    []string     // slot labels of non-cancelled, non-no-show bookings on Date
	DurationMinutes int
	StepMinutes     int
}

// ComputeSlots derives the ordered bookable start times for a date.
//
// Shifts are matched on weekday and context scope: venue-scoped shifts count
// only when computing for that venue, unscoped shifts only for independent
// context. A provider with shifts defined somewhere but none matching this
// date+context is closed. A provider with no shifts at all falls back to a
// 09:00-18:00 default, a leniency for newly onboarded providers.
//
// A candidate is excluded when it overlaps a time block of matching scope,
// or when an existing booking already carries that exact slot label.
func ComputeSlots(in SlotInput) []timeofday.TimeOfDay {
	windows := matchingWindows(in.Shifts, in.Date.Weekday(), in.VenueID)

	if len(windows) == 0 {
		if len(in.Shifts) > 0 {
			// Closed for this date+context. Not a fallback case.
			return nil
		}
		windows = []window{{start: defaultOpen, end: defaultClose}}
	}

	blocks := matchingBlockRanges(in.Blocks, in.Date, in.VenueID)

	booked := make(map[string]struct{}, len(in.BookedLabels))
	for _, label := range in.BookedLabels {
		booked[label] = struct{}{}
	}

	seen := make(map[timeofday.TimeOfDay]struct{})
	var slots []timeofday.TimeOfDay

	for _, w := range windows {
		for start := w.start; !start.Add(in.DurationMinutes).After(w.end); start = start.Add(in.StepMinutes) {
			end := start.Add(in.DurationMinutes)

			if overlapsAny(start, end, blocks) {
				continue
			}
			if _, taken := booked[start.Label()]; taken {
				continue
			}
			if _, dup := seen[start]; dup {
				continue
			}
			seen[start] = struct{}{}
			slots = append(slots, start)
		}
	}

	sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })
	return slots
}

// ComputeVenueSlots derives the aggregate slot ladder for the generic "any
// professional" flow: the union of all venue-scoped shifts matching the
// date, with no per-booking exclusion (capacity is not modeled at slot
// granularity). No default fallback applies.
func ComputeVenueSlots(date time.Time, shifts []*Shift, durationMinutes, stepMinutes int) []timeofday.TimeOfDay {
	var windows []window
	for _, s := range shifts {
		if s.Weekday == date.Weekday() && s.VenueID != nil {
			windows = append(windows, window{start: s.Start, end: s.End})
		}
	}

	seen := make(map[timeofday.TimeOfDay]struct{})
	var slots []timeofday.TimeOfDay
	for _, w := range windows {
		for start := w.start; !start.Add(durationMinutes).After(w.end); start = start.Add(stepMinutes) {
			if _, dup := seen[start]; dup {
				continue
			}
			seen[start] = struct{}{}
			slots = append(slots, start)
		}
	}

	sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })
	return slots
}

// FirstAfterHour picks the first slot strictly later than the top of the
// hour containing now. Used by the ASAP shortcut.
func FirstAfterHour(slots []timeofday.TimeOfDay, now time.Time) (timeofday.TimeOfDay, bool) {
	hourTop := timeofday.TimeOfDay(now.Hour() * 60)
	for _, s := range slots {
		if s.After(hourTop) {
			return s, true
		}
	}
	return 0, false
}

type window struct {
	start, end timeofday.TimeOfDay
}

func matchingWindows(shifts []*Shift, weekday time.Weekday, venueID string) []window {
	var windows []window
	for _, s := range shifts {
		if s.Weekday != weekday {
			continue
		}
		if !scopeMatches(s.VenueID, venueID) {
			continue
		}
		windows = append(windows, window{start: s.Start, end: s.End})
	}
	return windows
}

// scopeMatches pairs venue-scoped records with the matching venue context
// and unscoped records with independent context, never across.
func scopeMatches(recordVenueID *string, contextVenueID string) bool {
	if recordVenueID == nil {
		return contextVenueID == ""
	}
	return *recordVenueID == contextVenueID
}

type minuteRange struct {
	start, end int
}

// matchingBlockRanges projects the time blocks that affect the given date
// and context onto minutes-since-midnight ranges. A block with nil venue
// scope applies in every context.
func matchingBlockRanges(blocks []*TimeBlock, date time.Time, venueID string) []minuteRange {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	var ranges []minuteRange
	for _, b := range blocks {
		if b.VenueID != nil && *b.VenueID != venueID {
			continue
		}
		if !b.Start.Before(dayEnd) || !b.End.After(dayStart) {
			continue
		}

		start := 0
		if b.Start.After(dayStart) {
			start = b.Start.Hour()*60 + b.Start.Minute()
		}
		end := 24 * 60
		if b.End.Before(dayEnd) {
			end = b.End.Hour()*60 + b.End.Minute()
		}
		ranges = append(ranges, minuteRange{start: start, end: end})
	}
	return ranges
}

func overlapsAny(start, end timeofday.TimeOfDay, ranges []minuteRange) bool {
	for _, r := range ranges {
		if start.Minutes() < r.end && end.Minutes() > r.start {
			return true
		}
	}
	return false
}
