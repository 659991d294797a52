package membership

import (
	"errors"
	"net/http"
	"time"

	"github.com/trimslot/barber-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound = errors.New("membership not found")

	// ErrContextInvalid means the requested venue/independent context does not
	// match the provider's records. Recoverable: the client should redirect
	// the user to context re-selection.
	ErrContextInvalid = apperror.New(http.StatusConflict, "requested booking context does not match provider records")

	// ErrNoBookableContext means the provider has neither a shop membership
	// nor the independent flag. Terminal until back-office changes.
	ErrNoBookableContext = apperror.New(http.StatusUnprocessableEntity, "provider has no bookable context")
)

// Role of a provider within a venue.
type Role string

const (
	RoleOwner   Role = "owner"
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
)

// Membership links a provider to a venue. A provider may hold any number of
// memberships; only active, booking-enabled ones participate in context
// resolution.
type Membership struct {
	ID             string // UUID
	ProviderID     string
	VenueID        string
	VenueName      string
	Role           Role
	BookingEnabled bool
	IsActive       bool
	CreatedAt      time.Time
}
