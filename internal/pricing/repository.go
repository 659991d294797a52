package pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// GetActiveRule returns the single authoritative pricing rule, or
	// ErrRuleNotFound when none is configured.
	GetActiveRule(ctx context.Context) (*Rule, error)
	GetPromotionByCode(ctx context.Context, code string) (*Promotion, error)
	ListPromotions(ctx context.Context) ([]*Promotion, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) GetActiveRule(ctx context.Context) (*Rule, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "freelancer_rate", "shop_rate", "is_active", "created_at",
	).
		From("public.pricing_rules").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get active rule query failed: %w", err)
	}

	var rule Rule
	err = r.pool.QueryRow(ctx, query, args...).Scan(
		&rule.ID, &rule.FreelancerRate, &rule.ShopRate, &rule.IsActive, &rule.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRuleNotFound
		}
		return nil, fmt.Errorf("get active rule failed: %w", err)
	}
	return &rule, nil
}

func (r *pgxRepository) GetPromotionByCode(ctx context.Context, code string) (*Promotion, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "code", "discount_type", "percent_off", "amount_off_cents", "is_active", "created_at",
	).
		From("public.promotions").
		Where(squirrel.Eq{"code": code, "is_active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get promotion query failed: %w", err)
	}

	var p Promotion
	err = r.pool.QueryRow(ctx, query, args...).Scan(
		&p.ID, &p.Code, &p.Type, &p.PercentOff, &p.AmountOffCents, &p.IsActive, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPromotionInvalid
		}
		return nil, fmt.Errorf("get promotion failed: %w", err)
	}
	return &p, nil
}

func (r *pgxRepository) ListPromotions(ctx context.Context) ([]*Promotion, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "code", "discount_type", "percent_off", "amount_off_cents", "is_active", "created_at",
	).
		From("public.promotions").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list promotions query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list promotions failed: %w", err)
	}
	defer rows.Close()

	var promotions []*Promotion
	for rows.Next() {
		var p Promotion
		if err := rows.Scan(&p.ID, &p.Code, &p.Type, &p.PercentOff, &p.AmountOffCents, &p.IsActive, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan promotion failed: %w", err)
		}
		promotions = append(promotions, &p)
	}
	return promotions, nil
}
