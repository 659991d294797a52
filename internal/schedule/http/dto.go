package http

import (
	"time"

	"github.com/trimslot/barber-booking-backend/internal/pkg/timeofday"
	"github.com/trimslot/barber-booking-backend/internal/schedule"
)

// SlotsQuery carries the navigation parameters for a slot computation.
type SlotsQuery struct {
	Date        string `form:"date" binding:"required,datetime=2006-01-02"`
	VenueID     string `form:"venue_id" binding:"omitempty,uuid"`
	Independent bool   `form:"independent"`
	Duration    int    `form:"duration" binding:"omitempty,min=5"`
}

// SlotsResponse is the ordered slot ladder for one date.
type SlotsResponse struct {
	Date    string   `json:"date"`
	Context string   `json:"context"`
	Slots   []string `json:"slots"`
}

// NextSlotResponse is the ASAP shortcut result.
type NextSlotResponse struct {
	Date string `json:"date"`
	Slot string `json:"slot"`
}

// ShiftResponse is the API shape of a recurring availability window.
type ShiftResponse struct {
	ID         string  `json:"id"`
	ProviderID string  `json:"provider_id"`
	VenueID    *string `json:"venue_id,omitempty"`
	Weekday    int     `json:"weekday"`
	Start      string  `json:"start_time"`
	End        string  `json:"end_time"`
}

func NewShiftResponse(s *schedule.Shift) ShiftResponse {
	return ShiftResponse{
		ID:         s.ID,
		ProviderID: s.ProviderID,
		VenueID:    s.VenueID,
		Weekday:    int(s.Weekday),
		Start:      s.Start.String(),
		End:        s.End.String(),
	}
}

// CreateShiftBody adds a recurring availability window.
type CreateShiftBody struct {
	VenueID *string `json:"venue_id" binding:"omitempty,uuid"`
	Weekday int     `json:"weekday" binding:"min=0,max=6"`
	Start   string  `json:"start_time" binding:"required"`
	End     string  `json:"end_time" binding:"required"`
}

// BlockResponse is the API shape of an unavailability window.
type BlockResponse struct {
	ID         string    `json:"id"`
	ProviderID string    `json:"provider_id"`
	VenueID    *string   `json:"venue_id,omitempty"`
	Start      time.Time `json:"start_time"`
	End        time.Time `json:"end_time"`
	Reason     string    `json:"reason,omitempty"`
}

func NewBlockResponse(b *schedule.TimeBlock) BlockResponse {
	return BlockResponse{
		ID:         b.ID,
		ProviderID: b.ProviderID,
		VenueID:    b.VenueID,
		Start:      b.Start,
		End:        b.End,
		Reason:     b.Reason,
	}
}

// CreateBlockBody adds an unavailability window.
type CreateBlockBody struct {
	VenueID *string   `json:"venue_id" binding:"omitempty,uuid"`
	Start   time.Time `json:"start_time" binding:"required"`
	End     time.Time `json:"end_time" binding:"required"`
	Reason  string    `json:"reason"`
}

func slotLabels(slots []timeofday.TimeOfDay) []string {
	labels := make([]string, len(slots))
	for i, s := range slots {
		labels[i] = s.Label()
	}
	return labels
}
