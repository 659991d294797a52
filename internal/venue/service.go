package venue

import (
	"context"
	"errors"
	"strings"
)

var ErrNameRequired = errors.New("name is required")

type CreateRequest struct {
	Name    string
	Address string
	Phone   string
}

type Service interface {
	GetByID(ctx context.Context, id string) (*Venue, error)
	List(ctx context.Context, filter Filter) ([]*Venue, int, error)
	Create(ctx context.Context, req CreateRequest) (*Venue, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetByID(ctx context.Context, id string) (*Venue, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Venue, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Venue, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	v := &Venue{
		Name:     name,
		Address:  strings.TrimSpace(req.Address),
		Phone:    strings.TrimSpace(req.Phone),
		IsActive: true,
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}
