package venue

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*Venue, error)
	List(ctx context.Context, filter Filter) ([]*Venue, int, error)
	Create(ctx context.Context, v *Venue) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Venue, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "name", "address", "phone", "is_active", "created_at").
		From("public.venues").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get venue query failed: %w", err)
	}

	var v Venue
	err = r.pool.QueryRow(ctx, query, args...).Scan(
		&v.ID, &v.Name, &v.Address, &v.Phone, &v.IsActive, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get venue failed: %w", err)
	}
	return &v, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Venue, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"id", "name", "address", "phone", "is_active", "created_at",
		"count(*) OVER() as total_count",
	).
		From("public.venues").
		Where(squirrel.Eq{"is_active": true})

	if filter.Keyword != "" {
		pattern := "%" + filter.Keyword + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"address": pattern},
		})
	}

	query = query.OrderBy("name ASC")

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
		return nil, 0, fmt.Errorf("build list venues query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list venues failed: %w", err)
	}
	defer rows.Close()

	var venues []*Venue
	var total int

	for rows.Next() {
		var v Venue
		if err := rows.Scan(&v.ID, &v.Name, &v.Address, &v.Phone, &v.IsActive, &v.CreatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan venue failed: %w", err)
		}
		venues = append(venues, &v)
	}

	return venues, total, nil
}

func (r *pgxRepository) Create(ctx context.Context, v *Venue) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.venues").
		Columns("name", "address", "phone", "is_active").
		Values(v.Name, v.Address, v.Phone, v.IsActive).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create venue query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&v.ID, &v.CreatedAt)
}
