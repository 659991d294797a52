package offering

import (
	"testing"
)

func baseOffering(id, name string, price int64, duration int) *Offering {
	venueID := "v1"
	return &Offering{
		ID:              id,
		VenueID:         &venueID,
		Name:            name,
		PriceCents:      price,
		DurationMinutes: duration,
		IsActive:        true,
	}
}

func TestApplyOverrides(t *testing.T) {
	haircut := baseOffering("o1", "Haircut", 3000, 30)
	shave := baseOffering("o2", "Hot Shave", 2000, 30)
	color := baseOffering("o3", "Color", 8000, 60)

	customPrice := int64(3500)
	customDuration := 45

	overrides := []*Override{
		{ID: "ov1", MembershipID: "m1", OfferingID: "o1", Enabled: true, PriceCents: &customPrice, DurationMinutes: &customDuration},
		{ID: "ov2", MembershipID: "m1", OfferingID: "o2", Enabled: false},
	}

	got := ApplyOverrides([]*Offering{haircut, shave, color}, overrides)

	if len(got) != 2 {
		t.Fatalf("expected 2 offerings after overrides, got %d", len(got))
	}

	// Haircut keeps its identity but takes the override's price/duration.
	if got[0].ID != "o1" || got[0].PriceCents != 3500 || got[0].DurationMinutes != 45 {
		t.Errorf("overridden offering = %+v, want o1 at 3500/45min", got[0])
	}

	// Color has no override and passes through at base values.
	if got[1].ID != "o3" || got[1].PriceCents != 8000 || got[1].DurationMinutes != 60 {
		t.Errorf("untouched offering = %+v, want o3 at 8000/60min", got[1])
	}

	// The input list must not be mutated.
	if haircut.PriceCents != 3000 || haircut.DurationMinutes != 30 {
		t.Errorf("input offering mutated: %+v", haircut)
	}
}

func TestApplyOverridesNoOverrides(t *testing.T) {
	haircut := baseOffering("o1", "Haircut", 3000, 30)

	got := ApplyOverrides([]*Offering{haircut}, nil)
	if len(got) != 1 || got[0].PriceCents != 3000 {
		t.Fatalf("expected pass-through, got %+v", got)
	}
}

func TestTotalDuration(t *testing.T) {
	offerings := []*Offering{
		baseOffering("o1", "Haircut", 3000, 30),
		baseOffering("o2", "Beard Trim", 1500, 15),
	}

	if got := TotalDuration(offerings, 30); got != 45 {
		t.Errorf("TotalDuration = %d, want 45", got)
	}
	if got := TotalDuration(nil, 30); got != 30 {
		t.Errorf("TotalDuration fallback = %d, want 30", got)
	}
}
