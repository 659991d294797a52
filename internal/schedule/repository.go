package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/trimslot/barber-booking-backend/internal/pkg/timeofday"
)

type Repository interface {
	ListShifts(ctx context.Context, providerID string) ([]*Shift, error)
	ListShiftsByVenue(ctx context.Context, venueID string) ([]*Shift, error)
	CreateShift(ctx context.Context, s *Shift) error
	DeleteShift(ctx context.Context, id, providerID string) error

	ListBlocks(ctx context.Context, providerID string) ([]*TimeBlock, error)
	CreateBlock(ctx context.Context, b *TimeBlock) error
	DeleteBlock(ctx context.Context, id, providerID string) error

	// ListBookedLabels returns the slot labels of the provider's
	// non-cancelled, non-no-show bookings on the given date.
	ListBookedLabels(ctx context.Context, providerID string, date time.Time) ([]string, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func scanShift(row pgx.Row) (*Shift, error) {
	var (
		s          Shift
		weekday    int
		start, end string
	)
	if err := row.Scan(&s.ID, &s.ProviderID, &s.VenueID, &weekday, &start, &end, &s.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan shift failed: %w", err)
	}

	// Normalize the stored HH:MM:SS text into the time-of-day value type
	// once, at the storage boundary.
	s.Weekday = time.Weekday(weekday)
	var err error
	if s.Start, err = timeofday.Parse(start); err != nil {
		return nil, fmt.Errorf("invalid shift start %q: %w", start, err)
	}
	if s.End, err = timeofday.Parse(end); err != nil {
		return nil, fmt.Errorf("invalid shift end %q: %w", end, err)
	}
	return &s, nil
}

func (r *pgxRepository) listShifts(ctx context.Context, pred squirrel.Eq) ([]*Shift, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "provider_id", "venue_id", "weekday", "start_time::text", "end_time::text", "created_at",
	).
		From("public.shifts").
		Where(pred).
		OrderBy("weekday ASC", "start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list shifts query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list shifts failed: %w", err)
	}
	defer rows.Close()

	var shifts []*Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	return shifts, nil
}

func (r *pgxRepository) ListShifts(ctx context.Context, providerID string) ([]*Shift, error) {
	return r.listShifts(ctx, squirrel.Eq{"provider_id": providerID})
}

func (r *pgxRepository) ListShiftsByVenue(ctx context.Context, venueID string) ([]*Shift, error) {
	return r.listShifts(ctx, squirrel.Eq{"venue_id": venueID})
}

func (r *pgxRepository) CreateShift(ctx context.Context, s *Shift) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.shifts").
		Columns("provider_id", "venue_id", "weekday", "start_time", "end_time").
		Values(s.ProviderID, s.VenueID, int(s.Weekday), s.Start.String(), s.End.String()).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create shift query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&s.ID, &s.CreatedAt)
}

func (r *pgxRepository) DeleteShift(ctx context.Context, id, providerID string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.shifts").
		Where(squirrel.Eq{"id": id, "provider_id": providerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete shift query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete shift failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) ListBlocks(ctx context.Context, providerID string) ([]*TimeBlock, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "provider_id", "venue_id", "start_time", "end_time", "reason", "created_at",
	).
		From("public.time_blocks").
		Where(squirrel.Eq{"provider_id": providerID}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list blocks query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list blocks failed: %w", err)
	}
	defer rows.Close()

	var blocks []*TimeBlock
	for rows.Next() {
		var b TimeBlock
		if err := rows.Scan(&b.ID, &b.ProviderID, &b.VenueID, &b.Start, &b.End, &b.Reason, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan block failed: %w", err)
		}
		blocks = append(blocks, &b)
	}
	return blocks, nil
}

func (r *pgxRepository) CreateBlock(ctx context.Context, b *TimeBlock) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.time_blocks").
		Columns("provider_id", "venue_id", "start_time", "end_time", "reason").
		Values(b.ProviderID, b.VenueID, b.Start, b.End, b.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create block query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&b.ID, &b.CreatedAt)
}

func (r *pgxRepository) DeleteBlock(ctx context.Context, id, providerID string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.time_blocks").
		Where(squirrel.Eq{"id": id, "provider_id": providerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete block query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete block failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) ListBookedLabels(ctx context.Context, providerID string, date time.Time) ([]string, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("slot_label").
		From("public.bookings").
		Where(squirrel.Eq{
			"provider_id":  providerID,
			"booking_date": date.Format("2006-01-02"),
		}).
		Where(squirrel.NotEq{"status": []string{"cancelled", "no_show"}}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build booked labels query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list booked labels failed: %w", err)
	}
	defer rows.Close()

	var labels []string
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, fmt.Errorf("scan booked label failed: %w", err)
		}
		labels = append(labels, label)
	}
	return labels, nil
}
