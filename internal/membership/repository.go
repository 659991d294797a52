package membership

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// ListBookable returns the provider's active, booking-enabled memberships.
	ListBookable(ctx context.Context, providerID string) ([]*Membership, error)
	// GetByProviderAndVenue finds the active membership linking the exact
	// provider+venue pair, or ErrNotFound.
	GetByProviderAndVenue(ctx context.Context, providerID, venueID string) (*Membership, error)
	GetByID(ctx context.Context, id string) (*Membership, error)
	Create(ctx context.Context, m *Membership) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func selectMemberships() squirrel.SelectBuilder {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	return psql.Select(
		"m.id", "m.provider_id", "m.venue_id", "v.name",
		"m.role", "m.booking_enabled", "m.is_active", "m.created_at",
	).
		From("public.memberships m").
		Join("public.venues v ON m.venue_id = v.id")
}

func scanMembership(row pgx.Row) (*Membership, error) {
	var m Membership
	err := row.Scan(
		&m.ID, &m.ProviderID, &m.VenueID, &m.VenueName,
		&m.Role, &m.BookingEnabled, &m.IsActive, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan membership failed: %w", err)
	}
	return &m, nil
}

func (r *pgxRepository) ListBookable(ctx context.Context, providerID string) ([]*Membership, error) {
	query, args, err := selectMemberships().
		Where(squirrel.Eq{
			"m.provider_id":     providerID,
			"m.is_active":       true,
			"m.booking_enabled": true,
		}).
		OrderBy("m.created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list memberships query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list memberships failed: %w", err)
	}
	defer rows.Close()

	var memberships []*Membership
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, err
		}
		memberships = append(memberships, m)
	}
	return memberships, nil
}

func (r *pgxRepository) GetByProviderAndVenue(ctx context.Context, providerID, venueID string) (*Membership, error) {
	query, args, err := selectMemberships().
		Where(squirrel.Eq{
			"m.provider_id": providerID,
			"m.venue_id":    venueID,
			"m.is_active":   true,
		}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get membership query failed: %w", err)
	}

	return scanMembership(r.pool.QueryRow(ctx, query, args...))
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Membership, error) {
	query, args, err := selectMemberships().
		Where(squirrel.Eq{"m.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get membership query failed: %w", err)
	}

	return scanMembership(r.pool.QueryRow(ctx, query, args...))
}

func (r *pgxRepository) Create(ctx context.Context, m *Membership) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.memberships").
		Columns("provider_id", "venue_id", "role", "booking_enabled", "is_active").
		Values(m.ProviderID, m.VenueID, m.Role, m.BookingEnabled, m.IsActive).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create membership query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&m.ID, &m.CreatedAt)
}
