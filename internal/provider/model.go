package provider

import (
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("provider not found")
)

// Provider represents a barber profile. Independent providers can take
// bookings outside any shop; the rest only work through shop memberships.
type Provider struct {
	ID              string // UUID
	DisplayName     string
	Bio             string
	IsIndependent   bool
	DefaultLocation *string // free-form address for independent/mobile work
	IsActive        bool
	CreatedAt       time.Time
}

// Filter defines parameters for listing providers.
type Filter struct {
	Keyword  string // search in display name
	VenueID  string // only providers with an active membership at this venue
	Page     int
	PageSize int
}
