package pricing

import (
	"errors"
	"time"
)

var (
	ErrRuleNotFound = errors.New("pricing rule not found")

	// ErrPromotionInvalid is non-blocking by policy: a booking proceeds
	// without the discount when the code doesn't validate.
	ErrPromotionInvalid = errors.New("promotion code is not valid")
)

// Default commission rates applied when no active rule is configured.
const (
	DefaultFreelancerRate = 0.10
	DefaultShopRate       = 0.05
)

// Rule holds the platform commission rates. At most one active rule is
// authoritative at any time.
type Rule struct {
	ID             string // UUID
	FreelancerRate float64
	ShopRate       float64
	IsActive       bool
	CreatedAt      time.Time
}

// DiscountType distinguishes percentage promotions from flat-amount ones.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFlat       DiscountType = "flat"
)

// Promotion is a discount code.
type Promotion struct {
	ID             string // UUID
	Code           string
	Type           DiscountType
	PercentOff     float64 // used when Type is percentage, e.g. 20 for 20%
	AmountOffCents int64   // used when Type is flat
	IsActive       bool
	CreatedAt      time.Time
}

// LineItem is one selected offering at its effective (override-adjusted) price.
type LineItem struct {
	OfferingID      string `json:"offering_id"`
	Name            string `json:"name"`
	PriceCents      int64  `json:"price_cents"`
	DurationMinutes int    `json:"duration_minutes"`
}

// Breakdown is the immutable financial summary attached to a booking at
// confirmation time. It is computed once and persisted verbatim, never
// recalculated from live catalog state.
type Breakdown struct {
	BasePriceCents      int64   `json:"base_price_cents"`
	DiscountCents       int64   `json:"discount_cents"`
	FinalPriceCents     int64   `json:"final_price_cents"`
	PlatformFeeCents    int64   `json:"platform_fee_cents"`
	TaxCents            int64   `json:"tax_cents"`
	ProviderPayoutCents int64   `json:"provider_payout_cents"`
	CommissionRate      float64 `json:"commission_rate"`
	Currency            string  `json:"currency"`
}
