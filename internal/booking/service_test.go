package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trimslot/barber-booking-backend/internal/membership"
	"github.com/trimslot/barber-booking-backend/internal/pricing"
	"github.com/trimslot/barber-booking-backend/internal/provider"
	"github.com/trimslot/barber-booking-backend/internal/user"
)

type fakeRepo struct {
	created *Booking
	err     error
}

func (f *fakeRepo) Create(_ context.Context, b *Booking) error {
	if f.err != nil {
		return f.err
	}
	b.ID = "bk-1"
	b.CreatedAt = time.Now()
	f.created = b
	return nil
}

func (f *fakeRepo) GetByID(context.Context, string) (*Booking, error) { return nil, ErrNotFound }
func (f *fakeRepo) List(context.Context, Filter) ([]*Booking, error)  { return nil, nil }

type fakeResolver struct {
	bctx  *membership.Context
	err   error
	calls int
}

func (f *fakeResolver) ResolveContext(context.Context, string, string, bool) (*membership.Context, error) {
	f.calls++
	return f.bctx, f.err
}

type fakeQuoter struct {
	items     []pricing.LineItem
	breakdown pricing.Breakdown
	err       error
}

func (f *fakeQuoter) QuoteSelection(context.Context, pricing.QuoteRequest) ([]pricing.LineItem, pricing.Breakdown, error) {
	return f.items, f.breakdown, f.err
}

type fakeSlots struct {
	open     bool
	err      error
	duration int
}

func (f *fakeSlots) IsSlotOpen(_ context.Context, _ string, _ time.Time, _ string, _ *membership.Context, durationMinutes int) (bool, error) {
	f.duration = durationMinutes
	return f.open, f.err
}

type fakeProviders struct{ p *provider.Provider }

func (f *fakeProviders) GetByID(context.Context, string) (*provider.Provider, error) {
	return f.p, nil
}

type fakeUsers struct{ u *user.User }

func (f *fakeUsers) GetByID(context.Context, string) (*user.User, error) { return f.u, nil }

func validRequest() CreateRequest {
	return CreateRequest{
		ClientID:    "u-1",
		ProviderID:  "p-1",
		VenueID:     "v-1",
		OfferingIDs: []string{"o-1", "o-2"},
		Date:        time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		SlotLabel:   "9:30 AM",
	}
}

func newTestService(repo *fakeRepo, resolver *fakeResolver, slots *fakeSlots) Service {
	name := "Ada"
	return NewService(
		repo,
		resolver,
		&fakeQuoter{
			items: []pricing.LineItem{
				{OfferingID: "o-1", Name: "Fade", PriceCents: 3500, DurationMinutes: 30},
				{OfferingID: "o-2", Name: "Beard trim", PriceCents: 1500, DurationMinutes: 30},
			},
			breakdown: pricing.Breakdown{
				BasePriceCents:      5000,
				FinalPriceCents:     5000,
				PlatformFeeCents:    250,
				ProviderPayoutCents: 4750,
				CommissionRate:      0.05,
				Currency:            "USD",
			},
		},
		slots,
		&fakeProviders{p: &provider.Provider{ID: "p-1", DisplayName: "Marcus"}},
		&fakeUsers{u: &user.User{ID: "u-1", Email: "ada@example.com", DisplayName: &name}},
	)
}

func shopContext() *membership.Context {
	return &membership.Context{
		Kind:         membership.ContextShop,
		VenueID:      "v-1",
		VenueName:    "Sharp Cuts",
		MembershipID: "m-1",
	}
}

func TestCreateRequiresAuthentication(t *testing.T) {
	repo := &fakeRepo{}
	resolver := &fakeResolver{bctx: shopContext()}
	svc := newTestService(repo, resolver, &fakeSlots{open: true})

	req := validRequest()
	req.ClientID = ""
	_, err := svc.Create(context.Background(), req)

	require.ErrorIs(t, err, ErrUnauthenticated)
	assert.Zero(t, resolver.calls, "no resolution should run for unauthenticated callers")
	assert.Nil(t, repo.created)
}

func TestCreateRequiresProvider(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, &fakeResolver{bctx: shopContext()}, &fakeSlots{open: true})

	req := validRequest()
	req.ProviderID = ""
	_, err := svc.Create(context.Background(), req)

	require.ErrorIs(t, err, ErrMissingProvider)
	assert.Nil(t, repo.created)
}

func TestCreateRejectsAmbiguousContext(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, &fakeResolver{bctx: &membership.Context{Kind: membership.ContextAmbiguous}}, &fakeSlots{open: true})

	_, err := svc.Create(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrAmbiguousContext)
	assert.Nil(t, repo.created, "no write may be attempted for ambiguous contexts")
}

func TestCreateMapsInvalidContextToUnverifiedMembership(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, &fakeResolver{err: membership.ErrContextInvalid}, &fakeSlots{open: true})

	_, err := svc.Create(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrUnverifiedMembership)
	assert.Nil(t, repo.created)
}

func TestCreateShopBooking(t *testing.T) {
	repo := &fakeRepo{}
	slots := &fakeSlots{open: true}
	svc := newTestService(repo, &fakeResolver{bctx: shopContext()}, slots)

	b, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	require.NotNil(t, repo.created)
	assert.Equal(t, StatusPending, b.Status)
	assert.Equal(t, PaymentUnpaid, b.PaymentStatus)
	require.NotNil(t, b.VenueID)
	require.NotNil(t, b.MembershipID)
	assert.Equal(t, "v-1", *b.VenueID)
	assert.Equal(t, "m-1", *b.MembershipID)
	assert.Equal(t, "Sharp Cuts", b.VenueName)
	assert.Equal(t, "Marcus", b.ProviderName)
	assert.Equal(t, "Ada", b.ClientName)
	assert.Equal(t, "9:30 AM", b.SlotLabel)

	// The recheck uses the snapshot's total duration.
	assert.Equal(t, 60, slots.duration)

	// Snapshot and breakdown come from the quote, frozen verbatim.
	assert.Len(t, b.Services, 2)
	assert.Equal(t, int64(5000), b.Breakdown.FinalPriceCents)
	assert.Equal(t, 0.05, b.Breakdown.CommissionRate)
}

func TestCreateIndependentBooking(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, &fakeResolver{bctx: &membership.Context{Kind: membership.ContextIndependent}}, &fakeSlots{open: true})

	req := validRequest()
	req.VenueID = ""
	req.ExplicitIndependent = true
	b, err := svc.Create(context.Background(), req)

	require.NoError(t, err)
	assert.Nil(t, b.VenueID)
	assert.Nil(t, b.MembershipID)
	assert.Empty(t, b.VenueName)
}

func TestCreateRejectsTakenSlot(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, &fakeResolver{bctx: shopContext()}, &fakeSlots{open: false})

	_, err := svc.Create(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrSlotTaken)
	assert.Nil(t, repo.created)
}

func TestCreateSurfacesUniquenessViolation(t *testing.T) {
	repo := &fakeRepo{err: ErrSlotTaken}
	svc := newTestService(repo, &fakeResolver{bctx: shopContext()}, &fakeSlots{open: true})

	_, err := svc.Create(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrSlotTaken)
}
