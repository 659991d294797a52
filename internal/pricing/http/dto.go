package http

import (
	"github.com/trimslot/barber-booking-backend/internal/pricing"
)

// QuoteBody asks for a price breakdown for a selection of offerings in a
// resolved booking context.
type QuoteBody struct {
	ProviderID    string   `json:"provider_id" binding:"required,uuid"`
	VenueID       string   `json:"venue_id" binding:"omitempty,uuid"`
	Independent   bool     `json:"independent"`
	OfferingIDs   []string `json:"offering_ids" binding:"required,min=1,dive,uuid"`
	PromotionCode string   `json:"promotion_code"`
}

// QuoteResponse mirrors the snapshot persisted on a booking.
type QuoteResponse struct {
	Items     []pricing.LineItem `json:"items"`
	Breakdown pricing.Breakdown  `json:"breakdown"`
}

// PromotionResponse is the public shape of a promotion code.
type PromotionResponse struct {
	Code           string  `json:"code"`
	Type           string  `json:"type"`
	PercentOff     float64 `json:"percent_off,omitempty"`
	AmountOffCents int64   `json:"amount_off_cents,omitempty"`
}

func NewPromotionResponse(p *pricing.Promotion) PromotionResponse {
	return PromotionResponse{
		Code:           p.Code,
		Type:           string(p.Type),
		PercentOff:     p.PercentOff,
		AmountOffCents: p.AmountOffCents,
	}
}

// RuleResponse exposes the active commission rates.
type RuleResponse struct {
	FreelancerRate float64 `json:"freelancer_rate"`
	ShopRate       float64 `json:"shop_rate"`
}
