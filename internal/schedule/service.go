package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/trimslot/barber-booking-backend/internal/membership"
	"github.com/trimslot/barber-booking-backend/internal/pkg/timeofday"
)

type CreateShiftRequest struct {
	ProviderID string
	VenueID    *string
	Weekday    time.Weekday
	Start      timeofday.TimeOfDay
	End        timeofday.TimeOfDay
}

type CreateBlockRequest struct {
	ProviderID string
	VenueID    *string
	Start      time.Time
	End        time.Time
	Reason     string
}

// NextSlot is the ASAP shortcut result.
type NextSlot struct {
	Date time.Time
	Slot timeofday.TimeOfDay
}

type Service interface {
	// SlotsForProvider computes the bookable slot ladder for a targeted
	// provider on a date, in an already-resolved context. The ladder is
	// recomputed per query, never cached across dates.
	SlotsForProvider(ctx context.Context, providerID string, date time.Time, bctx *membership.Context, durationMinutes int) ([]timeofday.TimeOfDay, error)

	// SlotsForVenue computes the aggregate ladder for the generic "any
	// professional" flow at a venue.
	SlotsForVenue(ctx context.Context, venueID string, date time.Time, durationMinutes int) ([]timeofday.TimeOfDay, error)

	// NextAvailable picks today's first slot strictly later than the
	// current hour, falling back to tomorrow's first slot.
	NextAvailable(ctx context.Context, providerID string, bctx *membership.Context, durationMinutes int, now time.Time) (*NextSlot, error)

	// IsSlotOpen re-checks a single slot at write time. This is a
	// point-in-time read with no atomicity guarantee; the bookings table's
	// uniqueness constraint remains the real boundary.
	IsSlotOpen(ctx context.Context, providerID string, date time.Time, label string, bctx *membership.Context, durationMinutes int) (bool, error)

	ListShifts(ctx context.Context, providerID string) ([]*Shift, error)
	CreateShift(ctx context.Context, req CreateShiftRequest) (*Shift, error)
	DeleteShift(ctx context.Context, id, providerID string) error

	ListBlocks(ctx context.Context, providerID string) ([]*TimeBlock, error)
	CreateBlock(ctx context.Context, req CreateBlockRequest) (*TimeBlock, error)
	DeleteBlock(ctx context.Context, id, providerID string) error
}

type service struct {
	repo Repository

	stepMinutes            int
	defaultDurationMinutes int
}

func NewService(repo Repository, stepMinutes, defaultDurationMinutes int) Service {
	return &service{
		repo:                   repo,
		stepMinutes:            stepMinutes,
		defaultDurationMinutes: defaultDurationMinutes,
	}
}

func (s *service) gather(ctx context.Context, providerID string, date time.Time) ([]*Shift, []*TimeBlock, []string, error) {
	shifts, err := s.repo.ListShifts(ctx, providerID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	blocks, err := s.repo.ListBlocks(ctx, providerID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to list time blocks: %w", err)
	}
	booked, err := s.repo.ListBookedLabels(ctx, providerID, date)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to list booked labels: %w", err)
	}
	return shifts, blocks, booked, nil
}

func (s *service) SlotsForProvider(ctx context.Context, providerID string, date time.Time, bctx *membership.Context, durationMinutes int) ([]timeofday.TimeOfDay, error) {
	if bctx == nil || bctx.Kind == membership.ContextAmbiguous {
		return nil, membership.ErrContextInvalid
	}
	if durationMinutes <= 0 {
		durationMinutes = s.defaultDurationMinutes
	}

	shifts, blocks, booked, err := s.gather(ctx, providerID, date)
	if err != nil {
		return nil, err
	}

	return ComputeSlots(SlotInput{
		Date:            date,
		VenueID:         bctx.VenueID,
		Shifts:          shifts,
		Blocks:          blocks,
		BookedLabels:    booked,
		DurationMinutes: durationMinutes,
		StepMinutes:     s.stepMinutes,
	}), nil
}

func (s *service) SlotsForVenue(ctx context.Context, venueID string, date time.Time, durationMinutes int) ([]timeofday.TimeOfDay, error) {
	if durationMinutes <= 0 {
		durationMinutes = s.defaultDurationMinutes
	}

	shifts, err := s.repo.ListShiftsByVenue(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list venue shifts: %w", err)
	}

	return ComputeVenueSlots(date, shifts, durationMinutes, s.stepMinutes), nil
}

func (s *service) NextAvailable(ctx context.Context, providerID string, bctx *membership.Context, durationMinutes int, now time.Time) (*NextSlot, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	slots, err := s.SlotsForProvider(ctx, providerID, today, bctx, durationMinutes)
	if err != nil {
		return nil, err
	}
	if slot, ok := FirstAfterHour(slots, now); ok {
		return &NextSlot{Date: today, Slot: slot}, nil
	}

	tomorrow := today.Add(24 * time.Hour)
	slots, err = s.SlotsForProvider(ctx, providerID, tomorrow, bctx, durationMinutes)
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		return nil, ErrNotFound
	}
	return &NextSlot{Date: tomorrow, Slot: slots[0]}, nil
}

func (s *service) IsSlotOpen(ctx context.Context, providerID string, date time.Time, label string, bctx *membership.Context, durationMinutes int) (bool, error) {
	slots, err := s.SlotsForProvider(ctx, providerID, date, bctx, durationMinutes)
	if err != nil {
		return false, err
	}
	for _, slot := range slots {
		if slot.Label() == label {
			return true, nil
		}
	}
	return false, nil
}

func (s *service) ListShifts(ctx context.Context, providerID string) ([]*Shift, error) {
	return s.repo.ListShifts(ctx, providerID)
}

func (s *service) CreateShift(ctx context.Context, req CreateShiftRequest) (*Shift, error) {
	if !req.Start.Before(req.End) {
		return nil, ErrInvalidWindow
	}

	shift := &Shift{
		ProviderID: req.ProviderID,
		VenueID:    req.VenueID,
		Weekday:    req.Weekday,
		Start:      req.Start,
		End:        req.End,
	}
	if err := s.repo.CreateShift(ctx, shift); err != nil {
		return nil, err
	}
	return shift, nil
}

func (s *service) DeleteShift(ctx context.Context, id, providerID string) error {
	return s.repo.DeleteShift(ctx, id, providerID)
}

func (s *service) ListBlocks(ctx context.Context, providerID string) ([]*TimeBlock, error) {
	return s.repo.ListBlocks(ctx, providerID)
}

func (s *service) CreateBlock(ctx context.Context, req CreateBlockRequest) (*TimeBlock, error) {
	if !req.Start.Before(req.End) {
		return nil, ErrInvalidWindow
	}

	block := &TimeBlock{
		ProviderID: req.ProviderID,
		VenueID:    req.VenueID,
		Start:      req.Start,
		End:        req.End,
		Reason:     req.Reason,
	}
	if err := s.repo.CreateBlock(ctx, block); err != nil {
		return nil, err
	}
	return block, nil
}

func (s *service) DeleteBlock(ctx context.Context, id, providerID string) error {
	return s.repo.DeleteBlock(ctx, id, providerID)
}
