package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*Provider, error)
	List(ctx context.Context, filter Filter) ([]*Provider, int, error)
	Create(ctx context.Context, p *Provider) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Provider, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "display_name", "bio", "is_independent", "default_location", "is_active", "created_at",
	).
		From("public.providers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get provider query failed: %w", err)
	}

	var p Provider
	err = r.pool.QueryRow(ctx, query, args...).Scan(
		&p.ID, &p.DisplayName, &p.Bio, &p.IsIndependent, &p.DefaultLocation, &p.IsActive, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get provider failed: %w", err)
	}
	return &p, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Provider, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"p.id", "p.display_name", "p.bio", "p.is_independent", "p.default_location",
		"p.is_active", "p.created_at",
		"count(*) OVER() as total_count",
	).
		From("public.providers p").
		Where(squirrel.Eq{"p.is_active": true})

	if filter.Keyword != "" {
		query = query.Where(squirrel.ILike{"p.display_name": "%" + filter.Keyword + "%"})
	}
	if filter.VenueID != "" {
		query = query.
			Join("public.memberships m ON m.provider_id = p.id").
			Where(squirrel.Eq{"m.venue_id": filter.VenueID, "m.is_active": true})
	}

	query = query.OrderBy("p.display_name ASC")

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list providers query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list providers failed: %w", err)
	}
	defer rows.Close()

	var providers []*Provider
	var total int

	for rows.Next() {
		var p Provider
		if err := rows.Scan(
			&p.ID, &p.DisplayName, &p.Bio, &p.IsIndependent, &p.DefaultLocation,
			&p.IsActive, &p.CreatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan provider failed: %w", err)
		}
		providers = append(providers, &p)
	}

	return providers, total, nil
}

func (r *pgxRepository) Create(ctx context.Context, p *Provider) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.providers").
		Columns("display_name", "bio", "is_independent", "default_location", "is_active").
		Values(p.DisplayName, p.Bio, p.IsIndependent, p.DefaultLocation, p.IsActive).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create provider query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&p.ID, &p.CreatedAt)
}
