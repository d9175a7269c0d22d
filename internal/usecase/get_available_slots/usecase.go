package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/caninecompadre/booking-service/internal/domain"
)

// UseCase computes the availability projection: for every day of the
// horizon, the open slots and their remaining spots.
type UseCase struct {
	settingsRepo SettingsRepository
	overrideRepo OverrideRepository
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the availability usecase.
func NewUseCase(
	settingsRepo SettingsRepository,
	overrideRepo OverrideRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		settingsRepo: settingsRepo,
		overrideRepo: overrideRepo,
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute builds the projection. The projection is advisory: it reads
// committed state without locks, so a concurrent booking can invalidate
// it; the reservation flow re-checks capacity transactionally.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	days := req.Days
	if days == 0 {
		days = domain.DefaultProjectionDays
	}
	if days < 1 || days > domain.MaxProjectionDays {
		return nil, fmt.Errorf("%w: days must be between 1 and %d", ErrInvalidInput, domain.MaxProjectionDays)
	}

	required := req.RequiredDogs
	if required == 0 {
		required = 1
	}
	if required < 1 || required > domain.MaxDogsPerSlotSetting {
		return nil, fmt.Errorf("%w: dogs must be between 1 and %d", ErrInvalidInput, domain.MaxDogsPerSlotSetting)
	}

	// The projection never includes today: walks are booked for future
	// dates only, so today's slots are not bookable.
	now := uc.timeProvider.Now()
	tomorrow := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)

	from := req.FromDate
	if from.IsZero() {
		from = tomorrow
	} else if from.Before(tomorrow) {
		return nil, fmt.Errorf("%w: projection starts tomorrow at the earliest", ErrInvalidInput)
	}
	to := from.AddDate(0, 0, days-1)

	uc.logger.Info("GetAvailableSlots: projecting %d days from %s for %d dog(s)",
		days, from.Format(domain.DateFormat), required)

	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	overrides, err := uc.overrideRepo.GetByDateRange(ctx, from, to)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get overrides: %v", err)
		return nil, fmt.Errorf("%w: failed to get overrides: %v", ErrInternal, err)
	}
	overrideByDate := make(map[string]*domain.DateOverride, len(overrides))
	for _, o := range overrides {
		overrideByDate[o.Date.Format(domain.DateFormat)] = o
	}

	committed, err := uc.bookingRepo.CountCommittedDogs(ctx, from, to)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to count committed dogs: %v", err)
		return nil, fmt.Errorf("%w: failed to count committed dogs: %v", ErrInternal, err)
	}
	committedByDate := make(map[string]map[domain.Slot]int, len(committed))
	for date, slots := range committed {
		committedByDate[date.Format(domain.DateFormat)] = slots
	}

	dates := make([]DayAvailability, 0, days)
	for i := 0; i < days; i++ {
		date := from.AddDate(0, 0, i)
		key := date.Format(domain.DateFormat)

		day := projectDay(*settings, overrideByDate[key], committedByDate[key], date, required)
		if len(day.Slots) > 0 {
			dates = append(dates, day)
		}
	}

	return &Response{
		FromDate: from,
		Days:     days,
		Dates:    dates,
	}, nil
}

// projectDay resolves the slots of one day that can still take required
// more dogs. A day a weekend policy or overrides close entirely, or
// whose slots are all too full, comes back with no slots.
func projectDay(settings domain.Settings, override *domain.DateOverride, committed map[domain.Slot]int, date time.Time, required int) DayAvailability {
	day := DayAvailability{Date: date}

	if !settings.DateAllowed(date) {
		return day
	}

	for _, slot := range domain.AllSlots {
		capacity := domain.ResolveCapacity(settings, override, slot)
		if capacity == 0 {
			continue
		}

		available := domain.AvailableSpots(capacity, committed[slot])
		if available < required {
			continue
		}
		day.Slots = append(day.Slots, SlotAvailability{
			Slot:           slot,
			Name:           slot.Name(),
			Display:        slot.Display(),
			TotalSpots:     capacity,
			AvailableSpots: available,
		})
	}

	return day
}
