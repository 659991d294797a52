package http

import (
	"github.com/trimslot/barber-booking-backend/internal/offering"
)

// BrowseOfferingsRequest defines query parameters for the generic catalog
// browse (no capability filtering).
type BrowseOfferingsRequest struct {
	ProviderID   string `form:"provider_id" binding:"omitempty,uuid"`
	VenueID      string `form:"venue_id" binding:"omitempty,uuid"`
	Category     string `form:"category"`
	MembershipID string `form:"membership_id" binding:"omitempty,uuid"`
}

// EffectiveOfferingsQuery carries navigation parameters for the targeted,
// context-aware offering list.
type EffectiveOfferingsQuery struct {
	VenueID     string `form:"venue_id" binding:"omitempty,uuid"`
	Independent bool   `form:"independent"`
}

// OfferingResponse is the API shape of an offering with effective values.
type OfferingResponse struct {
	ID              string  `json:"id"`
	ProviderID      *string `json:"provider_id,omitempty"`
	VenueID         *string `json:"venue_id,omitempty"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	PriceCents      int64   `json:"price_cents"`
	DurationMinutes int     `json:"duration_minutes"`
}

func NewOfferingResponse(o *offering.Offering) OfferingResponse {
	return OfferingResponse{
		ID:              o.ID,
		ProviderID:      o.ProviderID,
		VenueID:         o.VenueID,
		Name:            o.Name,
		Category:        o.Category,
		PriceCents:      o.PriceCents,
		DurationMinutes: o.DurationMinutes,
	}
}

// CreateOfferingBody is the payload for creating an offering.
type CreateOfferingBody struct {
	ProviderID      *string `json:"provider_id" binding:"omitempty,uuid"`
	VenueID         *string `json:"venue_id" binding:"omitempty,uuid"`
	Name            string  `json:"name" binding:"required"`
	Category        string  `json:"category"`
	PriceCents      int64   `json:"price_cents" binding:"required,min=0"`
	DurationMinutes int     `json:"duration_minutes" binding:"required,min=5"`
}

// SetOverrideBody customizes or disables a venue-owned offering for one membership.
type SetOverrideBody struct {
	MembershipID    string `json:"membership_id" binding:"required,uuid"`
	OfferingID      string `json:"offering_id" binding:"required,uuid"`
	Enabled         bool   `json:"enabled"`
	PriceCents      *int64 `json:"price_cents" binding:"omitempty,min=0"`
	DurationMinutes *int   `json:"duration_minutes" binding:"omitempty,min=5"`
}
