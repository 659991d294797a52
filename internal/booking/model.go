package booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/trimslot/barber-booking-backend/internal/pkg/apperror"
	"github.com/trimslot/barber-booking-backend/internal/pricing"
)

var (
	ErrNotFound = errors.New("booking not found")

	// Write-time failures, checked in order and short-circuiting. They block
	// submission inline; the client keeps the in-progress selections.
	ErrUnauthenticated      = apperror.New(http.StatusUnauthorized, "authentication required")
	ErrMissingProvider      = apperror.New(http.StatusInternalServerError, "no provider on the booking request")
	ErrUnverifiedMembership = apperror.New(http.StatusUnprocessableEntity, "provider is not a verified member of this venue")
	ErrAmbiguousContext     = apperror.New(http.StatusConflict, "booking context must be resolved before creating a booking")

	// ErrSlotTaken maps both the point-in-time recheck and the bookings
	// table's uniqueness constraint.
	ErrSlotTaken = apperror.New(http.StatusConflict, "the selected time slot is no longer available")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
	StatusNoShow    Status = "no_show"
)

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Booking is a confirmed reservation. Services and Breakdown are frozen at
// creation time and never recomputed from live catalog state; the display
// name fields are likewise snapshots so historical bookings render correctly
// after renames.
type Booking struct {
	ID           string // UUID
	ClientID     string
	ProviderID   string
	VenueID      *string
	MembershipID *string

	BookingDate time.Time // date only, midnight local
	SlotLabel   string    // e.g. "9:30 AM"

	Status        Status
	PaymentStatus PaymentStatus

	Services  []pricing.LineItem
	Breakdown pricing.Breakdown

	ClientName   string
	ProviderName string
	VenueName    string
	Note         string

	CreatedAt time.Time
}

// TotalDurationMinutes sums the snapshot durations.
func (b *Booking) TotalDurationMinutes() int {
	var total int
	for _, item := range b.Services {
		total += item.DurationMinutes
	}
	return total
}

// Filter defines parameters for listing bookings.
type Filter struct {
	ClientID   string
	ProviderID string
	Date       *time.Time
	Status     Status
	Page       int
	PageSize   int
}
