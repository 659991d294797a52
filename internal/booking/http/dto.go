package http

import (
	"time"

	"github.com/trimslot/barber-booking-backend/internal/booking"
	"github.com/trimslot/barber-booking-backend/internal/pricing"
)

// CreateBookingBody carries the wizard's confirmed selections.
type CreateBookingBody struct {
	ProviderID    string   `json:"provider_id" binding:"required,uuid"`
	VenueID       string   `json:"venue_id" binding:"omitempty,uuid"`
	Independent   bool     `json:"independent"`
	OfferingIDs   []string `json:"offering_ids" binding:"required,min=1,dive,uuid"`
	PromotionCode string   `json:"promotion_code"`
	Date          string   `json:"date" binding:"required,datetime=2006-01-02"`
	SlotLabel     string   `json:"slot_label" binding:"required"`
	Note          string   `json:"note" binding:"max=500"`
}

// ListBookingsQuery filters the caller's booking history.
type ListBookingsQuery struct {
	Date     string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	Status   string `form:"status" binding:"omitempty,oneof=pending confirmed cancelled completed no_show"`
	Page     int    `form:"page,default=1" binding:"min=1"`
	PageSize int    `form:"page_size,default=20" binding:"min=1,max=100"`
}

// BookingResponse is the API shape of a booking, snapshot fields included.
type BookingResponse struct {
	ID            string             `json:"id"`
	ProviderID    string             `json:"provider_id"`
	ProviderName  string             `json:"provider_name"`
	VenueID       *string            `json:"venue_id,omitempty"`
	VenueName     string             `json:"venue_name,omitempty"`
	ClientName    string             `json:"client_name"`
	Date          string             `json:"date"`
	SlotLabel     string             `json:"slot_label"`
	Status        string             `json:"status"`
	PaymentStatus string             `json:"payment_status"`
	Services      []pricing.LineItem `json:"services"`
	Breakdown     pricing.Breakdown  `json:"breakdown"`
	Note          string             `json:"note,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		ProviderID:    b.ProviderID,
		ProviderName:  b.ProviderName,
		VenueID:       b.VenueID,
		VenueName:     b.VenueName,
		ClientName:    b.ClientName,
		Date:          b.BookingDate.Format("2006-01-02"),
		SlotLabel:     b.SlotLabel,
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		Services:      b.Services,
		Breakdown:     b.Breakdown,
		Note:          b.Note,
		CreatedAt:     b.CreatedAt,
	}
}
