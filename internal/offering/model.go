package offering

import (
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("offering not found")
)

// Offering represents a service on the catalog. It is owned either directly
// by an independent provider (ProviderID set) or by a venue (VenueID set),
// never both.
type Offering struct {
	ID              string // UUID
	ProviderID      *string
	VenueID         *string
	Name            string
	Category        string
	PriceCents      int64
	DurationMinutes int
	IsActive        bool
	CreatedAt       time.Time
}

// Override customizes (or disables) a venue-owned offering for one
// membership. Absence of an override means the staff member performs the
// offering at base price.
type Override struct {
	ID              string // UUID
	MembershipID    string
	OfferingID      string
	Enabled         bool
	PriceCents      *int64
	DurationMinutes *int
}

// Filter defines parameters for listing offerings. MembershipID, when set,
// applies that membership's capability overrides to the result.
type Filter struct {
	ProviderID   string
	VenueID      string
	Category     string
	MembershipID string
}
