package membership

import (
	"context"
	"fmt"

	"github.com/trimslot/barber-booking-backend/internal/provider"
)

type CreateRequest struct {
	ProviderID     string
	VenueID        string
	Role           Role
	BookingEnabled bool
}

type Service interface {
	// ResolveContext resolves where a booking for the provider is anchored.
	// venueID and explicitIndependent come straight from navigation
	// parameters and may both be empty/false.
	ResolveContext(ctx context.Context, providerID, venueID string, explicitIndependent bool) (*Context, error)

	ListBookable(ctx context.Context, providerID string) ([]*Membership, error)
	GetByProviderAndVenue(ctx context.Context, providerID, venueID string) (*Membership, error)
	Create(ctx context.Context, req CreateRequest) (*Membership, error)
}

type service struct {
	repo        Repository
	provService provider.Service
}

func NewService(repo Repository, provService provider.Service) Service {
	return &service{
		repo:        repo,
		provService: provService,
	}
}

func (s *service) ResolveContext(ctx context.Context, providerID, venueID string, explicitIndependent bool) (*Context, error) {
	p, err := s.provService.GetByID(ctx, providerID)
	if err != nil {
		return nil, err
	}

	memberships, err := s.repo.ListBookable(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}

	return Resolve(ResolveInput{
		ProviderIsIndependent: p.IsIndependent,
		RequestedVenueID:      venueID,
		ExplicitIndependent:   explicitIndependent,
		Memberships:           memberships,
	})
}

func (s *service) ListBookable(ctx context.Context, providerID string) ([]*Membership, error) {
	return s.repo.ListBookable(ctx, providerID)
}

func (s *service) GetByProviderAndVenue(ctx context.Context, providerID, venueID string) (*Membership, error) {
	return s.repo.GetByProviderAndVenue(ctx, providerID, venueID)
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Membership, error) {
	role := req.Role
	if role == "" {
		role = RoleStaff
	}

	m := &Membership{
		ProviderID:     req.ProviderID,
		VenueID:        req.VenueID,
		Role:           role,
		BookingEnabled: req.BookingEnabled,
		IsActive:       true,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}
