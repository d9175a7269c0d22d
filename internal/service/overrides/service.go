package overrides

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/caninecompadre/booking-service/internal/domain"
	settingsRepoPkg "github.com/caninecompadre/booking-service/internal/infra/storage/settings"

	overrideRepo "github.com/caninecompadre/booking-service/internal/infra/storage/override"
)

// DateDetail is the staff view of one calendar date: the override (nil
// when the date runs on global settings), the effective per-slot
// capacities, and the bookings taken for the date.
type DateDetail struct {
	Date       time.Time
	Override   *domain.DateOverride
	Capacities map[domain.Slot]int
	Bookings   []*domain.GroupBooking
}

// Service covers override reads and removal. Storing an override (with
// its cancellation cascade) goes through its own usecase.
type Service struct {
	overrideRepo OverrideRepository
	settingsRepo SettingsRepository
	bookingRepo  BookingRepository
	logger       Logger
}

// NewService creates the overrides service.
func NewService(
	overrideRepo OverrideRepository,
	settingsRepo SettingsRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *Service {
	return &Service{
		overrideRepo: overrideRepo,
		settingsRepo: settingsRepo,
		bookingRepo:  bookingRepo,
		logger:       logger,
	}
}

// GetDate returns the staff detail of one date.
func (s *Service) GetDate(ctx context.Context, date time.Time) (*DateDetail, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	override, err := s.overrideRepo.GetByDate(ctx, date)
	if err != nil && !errors.Is(err, overrideRepo.ErrOverrideNotFound) {
		s.logger.Error("GetDate: failed to get override for %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetDate - repository error: %v", ErrInternal, err)
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepoPkg.ErrSettingsNotFound) {
			defaults := domain.DefaultSettings()
			settings = &defaults
		} else {
			s.logger.Error("GetDate: failed to get settings: %v", err)
			return nil, fmt.Errorf("%w: GetDate - failed to get settings: %v", ErrInternal, err)
		}
	}

	capacities := make(map[domain.Slot]int, len(domain.AllSlots))
	for _, slot := range domain.AllSlots {
		capacities[slot] = domain.ResolveCapacity(*settings, override, slot)
	}

	bookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{Date: &date})
	if err != nil {
		s.logger.Error("GetDate: failed to list bookings for %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetDate - failed to list bookings: %v", ErrInternal, err)
	}

	return &DateDetail{
		Date:       date,
		Override:   override,
		Capacities: capacities,
		Bookings:   bookings,
	}, nil
}

// Delete removes the override of a date, returning it to the global
// settings. Removal never cancels bookings: it can only open slots.
func (s *Service) Delete(ctx context.Context, date time.Time) error {
	if date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := s.overrideRepo.Delete(ctx, date); err != nil {
		if errors.Is(err, overrideRepo.ErrOverrideNotFound) {
			s.logger.Warn("DeleteOverride: no override for %s", date.Format(domain.DateFormat))
			return ErrOverrideNotFound
		}
		s.logger.Error("DeleteOverride: repository error for %s: %v", date.Format(domain.DateFormat), err)
		return fmt.Errorf("%w: DeleteOverride - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteOverride: override for %s removed", date.Format(domain.DateFormat))
	return nil
}
