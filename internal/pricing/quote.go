package pricing

import "math"

// Quote computes the financial breakdown for a selection of line items.
//
// The promotion may be nil (no discount). The rule may be nil, in which
// case the default commission rates apply. shopContext selects the shop
// rate over the freelancer rate.
//
// Tax is always zero for now; the field exists so the persisted shape
// doesn't change when real tax integration lands.
func Quote(items []LineItem, promo *Promotion, shopContext bool, rule *Rule, currency string) Breakdown {
	var base int64
	for _, item := range items {
		base += item.PriceCents
	}

	var discount int64
	if promo != nil {
		switch promo.Type {
		case DiscountPercentage:
			discount = int64(math.Round(float64(base) * promo.PercentOff / 100))
		case DiscountFlat:
			discount = promo.AmountOffCents
		}
		if discount > base {
			discount = base
		}
	}

	final := base - discount

	rate := DefaultFreelancerRate
	switch {
	case rule != nil && shopContext:
		rate = rule.ShopRate
	case rule != nil:
		rate = rule.FreelancerRate
	case shopContext:
		rate = DefaultShopRate
	}

	fee := int64(math.Round(float64(final) * rate))
	tax := int64(0)
	payout := final - fee - tax
	if payout < 0 {
		payout = 0
	}

	return Breakdown{
		BasePriceCents:      base,
		DiscountCents:       discount,
		FinalPriceCents:     final,
		PlatformFeeCents:    fee,
		TaxCents:            tax,
		ProviderPayoutCents: payout,
		CommissionRate:      rate,
		Currency:            currency,
	}
}
