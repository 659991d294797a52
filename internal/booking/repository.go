package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// Create inserts the booking. The provider+date+slot uniqueness index
	// is the server-side double-booking boundary; a violation surfaces as
	// ErrSlotTaken.
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var bookingColumns = []string{
	"id", "client_id", "provider_id", "venue_id", "membership_id",
	"booking_date", "slot_label", "status", "payment_status",
	"services", "breakdown",
	"client_name", "provider_name", "venue_name", "note", "created_at",
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	services, err := json.Marshal(b.Services)
	if err != nil {
		return fmt.Errorf("marshal service snapshot failed: %w", err)
	}
	breakdown, err := json.Marshal(b.Breakdown)
	if err != nil {
		return fmt.Errorf("marshal breakdown failed: %w", err)
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns(
			"client_id", "provider_id", "venue_id", "membership_id",
			"booking_date", "slot_label", "status", "payment_status",
			"services", "breakdown",
			"client_name", "provider_name", "venue_name", "note",
		).
		Values(
			b.ClientID, b.ProviderID, b.VenueID, b.MembershipID,
			b.BookingDate, b.SlotLabel, b.Status, b.PaymentStatus,
			services, breakdown,
			b.ClientName, b.ProviderName, b.VenueName, b.Note,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrSlotTaken
		}
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var (
		b         Booking
		services  []byte
		breakdown []byte
	)
	err := row.Scan(
		&b.ID, &b.ClientID, &b.ProviderID, &b.VenueID, &b.MembershipID,
		&b.BookingDate, &b.SlotLabel, &b.Status, &b.PaymentStatus,
		&services, &breakdown,
		&b.ClientName, &b.ProviderName, &b.VenueName, &b.Note, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan booking failed: %w", err)
	}

	if err := json.Unmarshal(services, &b.Services); err != nil {
		return nil, fmt.Errorf("unmarshal service snapshot failed: %w", err)
	}
	if err := json.Unmarshal(breakdown, &b.Breakdown); err != nil {
		return nil, fmt.Errorf("unmarshal breakdown failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(bookingColumns...).
		From("public.bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	return scanBooking(r.pool.QueryRow(ctx, query, args...))
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	builder := psql.Select(bookingColumns...).
		From("public.bookings").
		OrderBy("booking_date DESC", "created_at DESC")

	if filter.ClientID != "" {
		builder = builder.Where(squirrel.Eq{"client_id": filter.ClientID})
	}
	if filter.ProviderID != "" {
		builder = builder.Where(squirrel.Eq{"provider_id": filter.ProviderID})
	}
	if filter.Date != nil {
		builder = builder.Where(squirrel.Eq{"booking_date": *filter.Date})
	}
	if filter.Status != "" {
		builder = builder.Where(squirrel.Eq{"status": filter.Status})
	}
	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		builder = builder.Limit(uint64(filter.PageSize)).Offset(uint64((page - 1) * filter.PageSize))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}
