package pricing

import (
	"testing"
)

func items(prices ...int64) []LineItem {
	out := make([]LineItem, len(prices))
	for i, p := range prices {
		out[i] = LineItem{OfferingID: "o", Name: "Service", PriceCents: p, DurationMinutes: 30}
	}
	return out
}

func TestQuotePercentagePromotion(t *testing.T) {
	// 20% off a 100.00 base yields a 20.00 discount.
	promo := &Promotion{Code: "SAVE20", Type: DiscountPercentage, PercentOff: 20, IsActive: true}

	got := Quote(items(10000), promo, false, nil, "USD")

	if got.BasePriceCents != 10000 {
		t.Errorf("base = %d, want 10000", got.BasePriceCents)
	}
	if got.DiscountCents != 2000 {
		t.Errorf("discount = %d, want 2000", got.DiscountCents)
	}
	if got.FinalPriceCents != 8000 {
		t.Errorf("final = %d, want 8000", got.FinalPriceCents)
	}
}

func TestQuoteFlatPromotionFloorsAtZero(t *testing.T) {
	promo := &Promotion{Code: "BIG", Type: DiscountFlat, AmountOffCents: 5000, IsActive: true}

	got := Quote(items(3000), promo, false, nil, "USD")

	if got.DiscountCents != 3000 {
		t.Errorf("discount = %d, want clamped to 3000", got.DiscountCents)
	}
	if got.FinalPriceCents != 0 {
		t.Errorf("final = %d, want 0", got.FinalPriceCents)
	}
	if got.ProviderPayoutCents != 0 {
		t.Errorf("payout = %d, want 0", got.ProviderPayoutCents)
	}
}

func TestQuoteCommissionRates(t *testing.T) {
	rule := &Rule{FreelancerRate: 0.12, ShopRate: 0.07, IsActive: true}

	tests := []struct {
		name     string
		shop     bool
		rule     *Rule
		wantRate float64
	}{
		{name: "configured freelancer rate", shop: false, rule: rule, wantRate: 0.12},
		{name: "configured shop rate", shop: true, rule: rule, wantRate: 0.07},
		{name: "default freelancer rate", shop: false, rule: nil, wantRate: 0.10},
		{name: "default shop rate", shop: true, rule: nil, wantRate: 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Quote(items(10000), nil, tt.shop, tt.rule, "USD")
			if got.CommissionRate != tt.wantRate {
				t.Errorf("rate = %v, want %v", got.CommissionRate, tt.wantRate)
			}
			wantFee := int64(tt.wantRate * 10000)
			if got.PlatformFeeCents != wantFee {
				t.Errorf("fee = %d, want %d", got.PlatformFeeCents, wantFee)
			}
		})
	}
}

func TestQuoteBreakdownBalances(t *testing.T) {
	promo := &Promotion{Code: "SAVE10", Type: DiscountPercentage, PercentOff: 10, IsActive: true}
	rule := &Rule{FreelancerRate: 0.10, ShopRate: 0.05, IsActive: true}

	cases := [][]int64{
		{3000},
		{3000, 1500},
		{9999},
		{1, 1, 1},
	}

	for _, prices := range cases {
		got := Quote(items(prices...), promo, true, rule, "USD")

		// fee + tax + payout must reconstruct final exactly.
		if got.PlatformFeeCents+got.TaxCents+got.ProviderPayoutCents != got.FinalPriceCents {
			t.Errorf("breakdown does not balance: %+v", got)
		}
		if got.FinalPriceCents > got.BasePriceCents {
			t.Errorf("final exceeds base: %+v", got)
		}
	}
}

func TestQuoteEmptySelection(t *testing.T) {
	got := Quote(nil, nil, false, nil, "USD")
	if got.BasePriceCents != 0 || got.FinalPriceCents != 0 || got.ProviderPayoutCents != 0 {
		t.Errorf("empty selection should be all zeros: %+v", got)
	}
}
