package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/trimslot/barber-booking-backend/internal/membership"
	"github.com/trimslot/barber-booking-backend/internal/pricing"
	"github.com/trimslot/barber-booking-backend/internal/provider"
	"github.com/trimslot/barber-booking-backend/internal/user"
)

// Narrow views of the collaborating services, so tests can fake exactly
// what booking creation consumes.
type (
	ContextResolver interface {
		ResolveContext(ctx context.Context, providerID, venueID string, explicitIndependent bool) (*membership.Context, error)
	}

	Quoter interface {
		QuoteSelection(ctx context.Context, req pricing.QuoteRequest) ([]pricing.LineItem, pricing.Breakdown, error)
	}

	SlotChecker interface {
		IsSlotOpen(ctx context.Context, providerID string, date time.Time, label string, bctx *membership.Context, durationMinutes int) (bool, error)
	}

	ProviderGetter interface {
		GetByID(ctx context.Context, id string) (*provider.Provider, error)
	}

	UserGetter interface {
		GetByID(ctx context.Context, id string) (*user.User, error)
	}
)

type CreateRequest struct {
	ClientID            string
	ProviderID          string
	VenueID             string
	ExplicitIndependent bool
	OfferingIDs         []string
	PromotionCode       string
	Date                time.Time
	SlotLabel           string
	Note                string
}

type Service interface {
	// Create runs the write-time checks in order, short-circuiting on the
	// first failure, then persists the booking with its frozen service
	// snapshot and financial breakdown.
	Create(ctx context.Context, req CreateRequest) (*Booking, error)

	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, error)
}

type service struct {
	repo      Repository
	contexts  ContextResolver
	quotes    Quoter
	slots     SlotChecker
	providers ProviderGetter
	users     UserGetter
}

func NewService(repo Repository, contexts ContextResolver, quotes Quoter, slots SlotChecker, providers ProviderGetter, users UserGetter) Service {
	return &service{
		repo:      repo,
		contexts:  contexts,
		quotes:    quotes,
		slots:     slots,
		providers: providers,
		users:     users,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	// Ordered write-time checks. Nothing is persisted before all pass.
	if req.ClientID == "" {
		return nil, ErrUnauthenticated
	}
	if req.ProviderID == "" {
		return nil, ErrMissingProvider
	}

	bctx, err := s.contexts.ResolveContext(ctx, req.ProviderID, req.VenueID, req.ExplicitIndependent)
	if err != nil {
		if errors.Is(err, membership.ErrContextInvalid) {
			return nil, ErrUnverifiedMembership
		}
		return nil, err
	}
	switch bctx.Kind {
	case membership.ContextAmbiguous:
		return nil, ErrAmbiguousContext
	case membership.ContextShop:
		// A venue-anchored booking must carry the exact provider+venue link.
		if bctx.MembershipID == "" {
			return nil, ErrUnverifiedMembership
		}
	case membership.ContextIndependent:
		// Resolved explicitly or provably implicit (independent, no memberships).
	default:
		return nil, ErrAmbiguousContext
	}

	// Freeze the selection and the money at this instant.
	items, breakdown, err := s.quotes.QuoteSelection(ctx, pricing.QuoteRequest{
		OfferingIDs:   req.OfferingIDs,
		PromotionCode: req.PromotionCode,
		Context:       bctx,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to quote selection: %w", err)
	}

	var duration int
	for _, item := range items {
		duration += item.DurationMinutes
	}

	// Point-in-time recheck only; the uniqueness index on the bookings
	// table is what actually prevents a concurrent double write.
	open, err := s.slots.IsSlotOpen(ctx, req.ProviderID, req.Date, req.SlotLabel, bctx, duration)
	if err != nil {
		return nil, fmt.Errorf("failed to recheck slot: %w", err)
	}
	if !open {
		return nil, ErrSlotTaken
	}

	p, err := s.providers.GetByID(ctx, req.ProviderID)
	if err != nil {
		return nil, err
	}
	client, err := s.users.GetByID(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}

	b := &Booking{
		ClientID:      req.ClientID,
		ProviderID:    req.ProviderID,
		BookingDate:   truncateToDate(req.Date),
		SlotLabel:     req.SlotLabel,
		Status:        StatusPending,
		PaymentStatus: PaymentUnpaid,
		Services:      items,
		Breakdown:     breakdown,
		ClientName:    clientDisplayName(client),
		ProviderName:  p.DisplayName,
		Note:          req.Note,
	}
	if bctx.IsShop() {
		venueID := bctx.VenueID
		membershipID := bctx.MembershipID
		b.VenueID = &venueID
		b.MembershipID = &membershipID
		b.VenueName = bctx.VenueName
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, error) {
	return s.repo.List(ctx, filter)
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func clientDisplayName(u *user.User) string {
	if u.DisplayName != nil && *u.DisplayName != "" {
		return *u.DisplayName
	}
	return u.Email
}
