package provider

import (
	"context"
	"strings"
)

type CreateRequest struct {
	DisplayName     string
	Bio             string
	IsIndependent   bool
	DefaultLocation *string
}

type Service interface {
	GetByID(ctx context.Context, id string) (*Provider, error)
	List(ctx context.Context, filter Filter) ([]*Provider, int, error)
	Create(ctx context.Context, req CreateRequest) (*Provider, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetByID(ctx context.Context, id string) (*Provider, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Provider, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Provider, error) {
	p := &Provider{
		DisplayName:     strings.TrimSpace(req.DisplayName),
		Bio:             strings.TrimSpace(req.Bio),
		IsIndependent:   req.IsIndependent,
		DefaultLocation: req.DefaultLocation,
		IsActive:        true,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
