package http

import (
	"time"

	"github.com/trimslot/barber-booking-backend/internal/pkg/request"
	"github.com/trimslot/barber-booking-backend/internal/provider"
)

// ListProvidersRequest defines query parameters for browsing providers.
type ListProvidersRequest struct {
	request.ListParams
	Keyword string `form:"keyword"`
	VenueID string `form:"venue_id" binding:"omitempty,uuid"`
}

// ProviderResponse is the API shape of a provider.
type ProviderResponse struct {
	ID              string    `json:"id"`
	DisplayName     string    `json:"display_name"`
	Bio             string    `json:"bio"`
	IsIndependent   bool      `json:"is_independent"`
	DefaultLocation *string   `json:"default_location"`
	CreatedAt       time.Time `json:"created_at"`
}

func NewProviderResponse(p *provider.Provider) ProviderResponse {
	return ProviderResponse{
		ID:              p.ID,
		DisplayName:     p.DisplayName,
		Bio:             p.Bio,
		IsIndependent:   p.IsIndependent,
		DefaultLocation: p.DefaultLocation,
		CreatedAt:       p.CreatedAt,
	}
}

// CreateProviderBody is the admin payload for creating a provider profile.
type CreateProviderBody struct {
	DisplayName     string  `json:"display_name" binding:"required"`
	Bio             string  `json:"bio"`
	IsIndependent   bool    `json:"is_independent"`
	DefaultLocation *string `json:"default_location"`
}
