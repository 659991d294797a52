package http

import (
	"time"

	"github.com/trimslot/barber-booking-backend/internal/membership"
)

// MembershipResponse is the API shape of a membership.
type MembershipResponse struct {
	ID             string    `json:"id"`
	ProviderID     string    `json:"provider_id"`
	VenueID        string    `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	Role           string    `json:"role"`
	BookingEnabled bool      `json:"booking_enabled"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewMembershipResponse(m *membership.Membership) MembershipResponse {
	return MembershipResponse{
		ID:             m.ID,
		ProviderID:     m.ProviderID,
		VenueID:        m.VenueID,
		VenueName:      m.VenueName,
		Role:           string(m.Role),
		BookingEnabled: m.BookingEnabled,
		CreatedAt:      m.CreatedAt,
	}
}

// ContextQuery carries the navigation parameters handed to the resolver.
type ContextQuery struct {
	VenueID     string `form:"venue_id" binding:"omitempty,uuid"`
	Independent bool   `form:"independent"`
}

// ContextResponse is the resolved booking anchor. Choices is populated only
// when the context is ambiguous and the user has to pick.
type ContextResponse struct {
	Kind         string              `json:"kind"`
	VenueID      string              `json:"venue_id,omitempty"`
	VenueName    string              `json:"venue_name,omitempty"`
	MembershipID string              `json:"membership_id,omitempty"`
	Choices      []membership.Choice `json:"choices,omitempty"`
}

func NewContextResponse(c *membership.Context) ContextResponse {
	return ContextResponse{
		Kind:         string(c.Kind),
		VenueID:      c.VenueID,
		VenueName:    c.VenueName,
		MembershipID: c.MembershipID,
		Choices:      c.Choices,
	}
}

// CreateMembershipBody is the admin payload for linking a provider to a venue.
type CreateMembershipBody struct {
	ProviderID     string `json:"provider_id" binding:"required,uuid"`
	VenueID        string `json:"venue_id" binding:"required,uuid"`
	Role           string `json:"role" binding:"omitempty,oneof=owner manager staff"`
	BookingEnabled bool   `json:"booking_enabled"`
}
