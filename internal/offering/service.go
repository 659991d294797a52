package offering

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/trimslot/barber-booking-backend/internal/membership"
)

var (
	ErrUnresolvedContext = errors.New("booking context must be resolved before filtering offerings")
	ErrOwnerRequired     = errors.New("offering needs exactly one owner (provider or venue)")
)

type CreateRequest struct {
	ProviderID      *string
	VenueID         *string
	Name            string
	Category        string
	PriceCents      int64
	DurationMinutes int
}

type OverrideRequest struct {
	MembershipID    string
	OfferingID      string
	Enabled         bool
	PriceCents      *int64
	DurationMinutes *int
}

type Service interface {
	// EffectiveForProvider returns the offerings a targeted provider may
	// perform in the resolved context, with per-membership overrides applied
	// in shop context. The context must not be ambiguous.
	EffectiveForProvider(ctx context.Context, providerID string, bctx *membership.Context) ([]*Offering, error)

	// EffectiveSelection resolves a set of selected offering IDs to their
	// effective price/duration in the given context. Used to freeze the
	// service snapshot at booking time.
	EffectiveSelection(ctx context.Context, ids []string, bctx *membership.Context) ([]*Offering, error)

	// Browse lists offerings without capability filtering, for the generic
	// "any professional" flow.
	Browse(ctx context.Context, filter Filter) ([]*Offering, error)

	Create(ctx context.Context, req CreateRequest) (*Offering, error)
	SetOverride(ctx context.Context, req OverrideRequest) (*Override, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) EffectiveForProvider(ctx context.Context, providerID string, bctx *membership.Context) ([]*Offering, error) {
	if bctx == nil || bctx.Kind == membership.ContextAmbiguous {
		return nil, ErrUnresolvedContext
	}

	// Independent context: the provider owns the offerings outright, no
	// override filtering applies.
	if bctx.IsIndependent() {
		return s.repo.List(ctx, Filter{ProviderID: providerID})
	}

	// Shop context: venue-owned catalog filtered through the membership's
	// overrides.
	offerings, err := s.repo.List(ctx, Filter{VenueID: bctx.VenueID})
	if err != nil {
		return nil, err
	}

	overrides, err := s.repo.ListOverrides(ctx, bctx.MembershipID)
	if err != nil {
		return nil, fmt.Errorf("failed to list capability overrides: %w", err)
	}

	return ApplyOverrides(offerings, overrides), nil
}

func (s *service) EffectiveSelection(ctx context.Context, ids []string, bctx *membership.Context) ([]*Offering, error) {
	if bctx == nil || bctx.Kind == membership.ContextAmbiguous {
		return nil, ErrUnresolvedContext
	}

	offerings, err := s.repo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(offerings) != len(ids) {
		return nil, ErrNotFound
	}

	if bctx.IsShop() {
		overrides, err := s.repo.ListOverrides(ctx, bctx.MembershipID)
		if err != nil {
			return nil, fmt.Errorf("failed to list capability overrides: %w", err)
		}
		offerings = ApplyOverrides(offerings, overrides)
		// A selection containing a disabled offering is not bookable.
		if len(offerings) != len(ids) {
			return nil, ErrNotFound
		}
	}

	return offerings, nil
}

func (s *service) Browse(ctx context.Context, filter Filter) ([]*Offering, error) {
	offerings, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if filter.MembershipID != "" {
		overrides, err := s.repo.ListOverrides(ctx, filter.MembershipID)
		if err != nil {
			return nil, fmt.Errorf("failed to list capability overrides: %w", err)
		}
		offerings = ApplyOverrides(offerings, overrides)
	}
	return offerings, nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Offering, error) {
	hasProvider := req.ProviderID != nil && *req.ProviderID != ""
	hasVenue := req.VenueID != nil && *req.VenueID != ""
	if hasProvider == hasVenue {
		return nil, ErrOwnerRequired
	}

	o := &Offering{
		ProviderID:      req.ProviderID,
		VenueID:         req.VenueID,
		Name:            strings.TrimSpace(req.Name),
		Category:        strings.TrimSpace(req.Category),
		PriceCents:      req.PriceCents,
		DurationMinutes: req.DurationMinutes,
		IsActive:        true,
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *service) SetOverride(ctx context.Context, req OverrideRequest) (*Override, error) {
	ov := &Override{
		MembershipID:    req.MembershipID,
		OfferingID:      req.OfferingID,
		Enabled:         req.Enabled,
		PriceCents:      req.PriceCents,
		DurationMinutes: req.DurationMinutes,
	}
	if err := s.repo.UpsertOverride(ctx, ov); err != nil {
		return nil, err
	}
	return ov, nil
}
