package schedule

import (
	"testing"
	"time"

	"github.com/trimslot/barber-booking-backend/internal/pkg/timeofday"
)

func labels(slots []timeofday.TimeOfDay) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.Label()
	}
	return out
}

func equalLabels(a []string, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func strPtr(s string) *string { return &s }

// A Monday used across tests.
var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func TestComputeSlotsShopScenario(t *testing.T) {
	// Shift Monday 09:00-12:00 scoped to venue A, a global block
	// 10:00-10:30, and an existing booking at "9:30 AM". A 30-minute
	// service in venue A context leaves exactly four slots.
	shift := &Shift{
		ID:         "s1",
		ProviderID: "p1",
		VenueID:    strPtr("venue-a"),
		Weekday:    time.Monday,
		Start:      timeofday.MustNew(9, 0),
		End:        timeofday.MustNew(12, 0),
	}
	block := &TimeBlock{
		ID:         "b1",
		ProviderID: "p1",
		Start:      time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		End:        time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC),
	}

	got := ComputeSlots(SlotInput{
		Date:            monday,
		VenueID:         "venue-a",
		Shifts:          []*Shift{shift},
		Blocks:          []*TimeBlock{block},
		BookedLabels:    []string{"9:30 AM"},
		DurationMinutes: 30,
		StepMinutes:     30,
	})

	want := []string{"9:00 AM", "10:30 AM", "11:00 AM", "11:30 AM"}
	if !equalLabels(labels(got), want) {
		t.Errorf("ComputeSlots = %v, want %v", labels(got), want)
	}
}

func TestComputeSlotsDefaultLadder(t *testing.T) {
	// Independent provider with no shifts defined at all falls back to the
	// default 09:00-18:00 ladder at 30-minute steps.
	got := ComputeSlots(SlotInput{
		Date:            monday,
		DurationMinutes: 30,
		StepMinutes:     30,
	})

	if len(got) != 18 {
		t.Fatalf("expected 18 default slots, got %d: %v", len(got), labels(got))
	}
	if got[0].Label() != "9:00 AM" || got[len(got)-1].Label() != "5:30 PM" {
		t.Errorf("default ladder bounds = %q..%q", got[0].Label(), got[len(got)-1].Label())
	}
}

func TestComputeSlotsClosedWhenNoMatchingShift(t *testing.T) {
	// A provider with shifts defined somewhere, but none matching this
	// date+context, is closed. The default ladder must NOT kick in.
	tuesdayShift := &Shift{
		ID:         "s1",
		ProviderID: "p1",
		VenueID:    strPtr("venue-a"),
		Weekday:    time.Tuesday,
		Start:      timeofday.MustNew(9, 0),
		End:        timeofday.MustNew(17, 0),
	}

	got := ComputeSlots(SlotInput{
		Date:            monday,
		VenueID:         "venue-a",
		Shifts:          []*Shift{tuesdayShift},
		DurationMinutes: 30,
		StepMinutes:     30,
	})
	if len(got) != 0 {
		t.Errorf("expected closed (no slots), got %v", labels(got))
	}
}

func TestComputeSlotsScopesNeverMerge(t *testing.T) {
	// Venue-scoped and unscoped shifts for the same provider never mix:
	// the venue shift is invisible in independent context and vice versa.
	venueShift := &Shift{
		ID: "s1", ProviderID: "p1", VenueID: strPtr("venue-a"),
		Weekday: time.Monday,
		Start:   timeofday.MustNew(9, 0), End: timeofday.MustNew(12, 0),
	}
	independentShift := &Shift{
		ID: "s2", ProviderID: "p1",
		Weekday: time.Monday,
		Start:   timeofday.MustNew(14, 0), End: timeofday.MustNew(17, 0),
	}
	shifts := []*Shift{venueShift, independentShift}

	shop := ComputeSlots(SlotInput{
		Date: monday, VenueID: "venue-a", Shifts: shifts,
		DurationMinutes: 30, StepMinutes: 30,
	})
	if shop[0].Label() != "9:00 AM" || shop[len(shop)-1].Label() != "11:30 AM" {
		t.Errorf("shop context slots = %v, want 9:00 AM..11:30 AM", labels(shop))
	}

	independent := ComputeSlots(SlotInput{
		Date: monday, Shifts: shifts,
		DurationMinutes: 30, StepMinutes: 30,
	})
	if independent[0].Label() != "2:00 PM" || independent[len(independent)-1].Label() != "4:30 PM" {
		t.Errorf("independent context slots = %v, want 2:00 PM..4:30 PM", labels(independent))
	}
}

func TestComputeSlotsVenueScopedBlockIgnoredInIndependentContext(t *testing.T) {
	shift := &Shift{
		ID: "s1", ProviderID: "p1",
		Weekday: time.Monday,
		Start:   timeofday.MustNew(9, 0), End: timeofday.MustNew(11, 0),
	}
	venueBlock := &TimeBlock{
		ID: "b1", ProviderID: "p1", VenueID: strPtr("venue-a"),
		Start: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC),
	}

	got := ComputeSlots(SlotInput{
		Date: monday, Shifts: []*Shift{shift}, Blocks: []*TimeBlock{venueBlock},
		DurationMinutes: 30, StepMinutes: 30,
	})
	if len(got) != 4 {
		t.Errorf("venue-scoped block leaked into independent context: %v", labels(got))
	}
}

func TestComputeSlotsLongerServiceShrinksLadder(t *testing.T) {
	shift := &Shift{
		ID: "s1", ProviderID: "p1", VenueID: strPtr("venue-a"),
		Weekday: time.Monday,
		Start:   timeofday.MustNew(9, 0), End: timeofday.MustNew(12, 0),
	}

	// A 90-minute service must fully fit inside the window.
	got := ComputeSlots(SlotInput{
		Date: monday, VenueID: "venue-a", Shifts: []*Shift{shift},
		DurationMinutes: 90, StepMinutes: 30,
	})
	want := []string{"9:00 AM", "9:30 AM", "10:00 AM", "10:30 AM"}
	if !equalLabels(labels(got), want) {
		t.Errorf("ComputeSlots = %v, want %v", labels(got), want)
	}
}

func TestComputeVenueSlots(t *testing.T) {
	morning := &Shift{
		ID: "s1", ProviderID: "p1", VenueID: strPtr("venue-a"),
		Weekday: time.Monday,
		Start:   timeofday.MustNew(9, 0), End: timeofday.MustNew(11, 0),
	}
	afternoon := &Shift{
		ID: "s2", ProviderID: "p2", VenueID: strPtr("venue-a"),
		Weekday: time.Monday,
		Start:   timeofday.MustNew(10, 0), End: timeofday.MustNew(13, 0),
	}

	got := ComputeVenueSlots(monday, []*Shift{morning, afternoon}, 30, 30)

	// Union of the overlapping windows, deduplicated.
	want := []string{
		"9:00 AM", "9:30 AM", "10:00 AM", "10:30 AM",
		"11:00 AM", "11:30 AM", "12:00 PM", "12:30 PM",
	}
	if !equalLabels(labels(got), want) {
		t.Errorf("ComputeVenueSlots = %v, want %v", labels(got), want)
	}
}

func TestFirstAfterHour(t *testing.T) {
	slots := []timeofday.TimeOfDay{
		timeofday.MustNew(9, 0),
		timeofday.MustNew(10, 30),
		timeofday.MustNew(11, 0),
	}

	now := time.Date(2026, 3, 2, 10, 15, 0, 0, time.UTC)
	got, ok := FirstAfterHour(slots, now)
	if !ok || got.Label() != "10:30 AM" {
		t.Errorf("FirstAfterHour = %v,%v, want 10:30 AM", got.Label(), ok)
	}

	late := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)
	if _, ok := FirstAfterHour(slots, late); ok {
		t.Error("expected no slot after 18:00")
	}
}
