package http

import (
	"time"

	"github.com/trimslot/barber-booking-backend/internal/pkg/request"
	"github.com/trimslot/barber-booking-backend/internal/venue"
)

// ListVenuesRequest defines query parameters for browsing venues.
type ListVenuesRequest struct {
	request.ListParams
	Keyword string `form:"keyword"`
}

// VenueResponse is the API shape of a venue.
type VenueResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

func NewVenueResponse(v *venue.Venue) VenueResponse {
	return VenueResponse{
		ID:        v.ID,
		Name:      v.Name,
		Address:   v.Address,
		Phone:     v.Phone,
		CreatedAt: v.CreatedAt,
	}
}

// CreateVenueBody is the admin payload for creating a venue.
type CreateVenueBody struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}
