package offering

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*Offering, error)
	// ListByIDs fetches a batch of offerings, preserving input order.
	ListByIDs(ctx context.Context, ids []string) ([]*Offering, error)
	List(ctx context.Context, filter Filter) ([]*Offering, error)
	ListOverrides(ctx context.Context, membershipID string) ([]*Override, error)
	Create(ctx context.Context, o *Offering) error
	UpsertOverride(ctx context.Context, ov *Override) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func selectOfferings() squirrel.SelectBuilder {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	return psql.Select(
		"id", "provider_id", "venue_id", "name", "category",
		"price_cents", "duration_minutes", "is_active", "created_at",
	).From("public.offerings")
}

func scanOffering(row pgx.Row) (*Offering, error) {
	var o Offering
	err := row.Scan(
		&o.ID, &o.ProviderID, &o.VenueID, &o.Name, &o.Category,
		&o.PriceCents, &o.DurationMinutes, &o.IsActive, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan offering failed: %w", err)
	}
	return &o, nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Offering, error) {
	query, args, err := selectOfferings().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get offering query failed: %w", err)
	}
	return scanOffering(r.pool.QueryRow(ctx, query, args...))
}

func (r *pgxRepository) ListByIDs(ctx context.Context, ids []string) ([]*Offering, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := selectOfferings().Where(squirrel.Eq{"id": ids}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list offerings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list offerings failed: %w", err)
	}
	defer rows.Close()

	byID := make(map[string]*Offering, len(ids))
	for rows.Next() {
		o, err := scanOffering(rows)
		if err != nil {
			return nil, err
		}
		byID[o.ID] = o
	}

	// Preserve the caller's selection order.
	var offerings []*Offering
	for _, id := range ids {
		if o, ok := byID[id]; ok {
			offerings = append(offerings, o)
		}
	}
	return offerings, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Offering, error) {
	query := selectOfferings().Where(squirrel.Eq{"is_active": true})

	if filter.ProviderID != "" {
		query = query.Where(squirrel.Eq{"provider_id": filter.ProviderID})
	}
	if filter.VenueID != "" {
		query = query.Where(squirrel.Eq{"venue_id": filter.VenueID})
	}
	if filter.Category != "" {
		query = query.Where(squirrel.Eq{"category": filter.Category})
	}

	sql, args, err := query.OrderBy("name ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list offerings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list offerings failed: %w", err)
	}
	defer rows.Close()

	var offerings []*Offering
	for rows.Next() {
		o, err := scanOffering(rows)
		if err != nil {
			return nil, err
		}
		offerings = append(offerings, o)
	}
	return offerings, nil
}

func (r *pgxRepository) ListOverrides(ctx context.Context, membershipID string) ([]*Override, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "membership_id", "offering_id", "enabled", "price_cents", "duration_minutes",
	).
		From("public.capability_overrides").
		Where(squirrel.Eq{"membership_id": membershipID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list overrides query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list overrides failed: %w", err)
	}
	defer rows.Close()

	var overrides []*Override
	for rows.Next() {
		var ov Override
		if err := rows.Scan(
			&ov.ID, &ov.MembershipID, &ov.OfferingID, &ov.Enabled, &ov.PriceCents, &ov.DurationMinutes,
		); err != nil {
			return nil, fmt.Errorf("scan override failed: %w", err)
		}
		overrides = append(overrides, &ov)
	}
	return overrides, nil
}

func (r *pgxRepository) Create(ctx context.Context, o *Offering) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.offerings").
		Columns("provider_id", "venue_id", "name", "category", "price_cents", "duration_minutes", "is_active").
		Values(o.ProviderID, o.VenueID, o.Name, o.Category, o.PriceCents, o.DurationMinutes, o.IsActive).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create offering query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&o.ID, &o.CreatedAt)
}

func (r *pgxRepository) UpsertOverride(ctx context.Context, ov *Override) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.capability_overrides").
		Columns("membership_id", "offering_id", "enabled", "price_cents", "duration_minutes").
		Values(ov.MembershipID, ov.OfferingID, ov.Enabled, ov.PriceCents, ov.DurationMinutes).
		Suffix(`ON CONFLICT (membership_id, offering_id) DO UPDATE
			SET enabled = EXCLUDED.enabled,
			    price_cents = EXCLUDED.price_cents,
			    duration_minutes = EXCLUDED.duration_minutes
			RETURNING id`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert override query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&ov.ID)
}
