package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines methods for accessing user data from storage.
type Repository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, u *User) error
	UpdateLastLogin(ctx context.Context, id string, t time.Time) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new Repository implementation using pgxpool.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const userColumns = "id, email, password_hash, display_name, provider_id, created_at, last_login_at, is_active, is_system_admin"

func scanUser(row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.DisplayName, &u.ProviderID,
		&u.CreatedAt, &u.LastLoginAt, &u.IsActive, &u.IsSystemAdmin,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan user failed: %w", err)
	}
	return &u, nil
}

func (r *pgxRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	query := "SELECT " + userColumns + " FROM public.users WHERE email = $1"
	return scanUser(r.pool.QueryRow(ctx, query, email))
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*User, error) {
	query := "SELECT " + userColumns + " FROM public.users WHERE id = $1"
	return scanUser(r.pool.QueryRow(ctx, query, id))
}

func (r *pgxRepository) Create(ctx context.Context, u *User) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.users").
		Columns("email", "password_hash", "display_name", "provider_id", "is_active", "is_system_admin").
		Values(u.Email, u.PasswordHash, u.DisplayName, u.ProviderID, u.IsActive, u.IsSystemAdmin).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create user query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&u.ID, &u.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrEmailAlreadyUsed
		}
		return fmt.Errorf("create user failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) UpdateLastLogin(ctx context.Context, id string, t time.Time) error {
	_, err := r.pool.Exec(ctx, "UPDATE public.users SET last_login_at = $1 WHERE id = $2", t, id)
	if err != nil {
		return fmt.Errorf("update last login failed: %w", err)
	}
	return nil
}
