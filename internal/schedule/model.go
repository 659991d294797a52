package schedule

import (
	"errors"
	"time"

	"github.com/trimslot/barber-booking-backend/internal/pkg/timeofday"
)

var (
	ErrNotFound        = errors.New("schedule record not found")
	ErrInvalidWindow   = errors.New("start time must be before end time")
	ErrPermissionDenied = errors.New("permission denied")
)

// Shift is a recurring weekly availability window. VenueID scopes the shift
// to a shop; nil means the shift belongs to the provider's independent
// practice. The two scopes never mix for the same computation.
type Shift struct {
	ID         string // UUID
	ProviderID string
	VenueID    *string
	Weekday    time.Weekday
	Start      timeofday.TimeOfDay
	End        timeofday.TimeOfDay
	CreatedAt  time.Time
}

// TimeBlock is a one-off unavailability window. VenueID nil means the block
// applies everywhere; otherwise it only applies in that venue's context.
type TimeBlock struct {
	ID         string // UUID
	ProviderID string
	VenueID    *string
	Start      time.Time
	End        time.Time
	Reason     string
	CreatedAt  time.Time
}
