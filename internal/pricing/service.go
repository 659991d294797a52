package pricing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/trimslot/barber-booking-backend/internal/membership"
	"github.com/trimslot/barber-booking-backend/internal/offering"
)

type QuoteRequest struct {
	OfferingIDs   []string
	PromotionCode string
	Context       *membership.Context
}

type Service interface {
	// ActiveRule returns the current commission rule, or nil when none is
	// configured and the defaults apply.
	ActiveRule(ctx context.Context) (*Rule, error)

	// PromotionByCode validates a promotion code. A missing or inactive
	// code yields ErrPromotionInvalid, which callers treat as non-blocking.
	PromotionByCode(ctx context.Context, code string) (*Promotion, error)

	ListPromotions(ctx context.Context) ([]*Promotion, error)

	// QuoteSelection freezes the effective prices for the selected
	// offerings and computes the full breakdown for the given context.
	QuoteSelection(ctx context.Context, req QuoteRequest) ([]LineItem, Breakdown, error)
}

type service struct {
	repo      Repository
	offerings offering.Service
	currency  string
}

func NewService(repo Repository, offerings offering.Service, currency string) Service {
	return &service{repo: repo, offerings: offerings, currency: currency}
}

func (s *service) ActiveRule(ctx context.Context) (*Rule, error) {
	rule, err := s.repo.GetActiveRule(ctx)
	if err != nil {
		if errors.Is(err, ErrRuleNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rule, nil
}

func (s *service) PromotionByCode(ctx context.Context, code string) (*Promotion, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrPromotionInvalid
	}
	return s.repo.GetPromotionByCode(ctx, code)
}

func (s *service) ListPromotions(ctx context.Context) ([]*Promotion, error) {
	return s.repo.ListPromotions(ctx)
}

func (s *service) QuoteSelection(ctx context.Context, req QuoteRequest) ([]LineItem, Breakdown, error) {
	selected, err := s.offerings.EffectiveSelection(ctx, req.OfferingIDs, req.Context)
	if err != nil {
		return nil, Breakdown{}, fmt.Errorf("failed to resolve selection: %w", err)
	}

	items := make([]LineItem, 0, len(selected))
	for _, o := range selected {
		items = append(items, LineItem{
			OfferingID:      o.ID,
			Name:            o.Name,
			PriceCents:      o.PriceCents,
			DurationMinutes: o.DurationMinutes,
		})
	}

	// An invalid code never blocks the quote, the discount is just skipped.
	var promo *Promotion
	if req.PromotionCode != "" {
		promo, err = s.PromotionByCode(ctx, req.PromotionCode)
		if err != nil && !errors.Is(err, ErrPromotionInvalid) {
			return nil, Breakdown{}, err
		}
	}

	rule, err := s.ActiveRule(ctx)
	if err != nil {
		return nil, Breakdown{}, err
	}

	breakdown := Quote(items, promo, req.Context.IsShop(), rule, s.currency)
	return items, breakdown, nil
}
