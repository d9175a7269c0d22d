package apply_date_override

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/caninecompadre/booking-service/internal/domain"
	overrideRepo "github.com/caninecompadre/booking-service/internal/infra/storage/override"
)

const defaultCancellationReason = "Date marked unavailable"

// UseCase replaces the override of a date and cancels the confirmed
// bookings in any slot the new override closes.
type UseCase struct {
	overrideRepo OverrideRepository
	bookingRepo  BookingRepository
	dogRepo      DogRepository
	calendar     CalendarClient
	mailer       Mailer
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the override usecase.
func NewUseCase(
	overrideRepo OverrideRepository,
	bookingRepo BookingRepository,
	dogRepo DogRepository,
	calendar CalendarClient,
	mailer Mailer,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		overrideRepo: overrideRepo,
		bookingRepo:  bookingRepo,
		dogRepo:      dogRepo,
		calendar:     calendar,
		mailer:       mailer,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute stores the override and runs the cascade. The override write
// and every cancellation commit atomically; calendar removals and emails
// run after commit, and a failed notification never resurrects a booking.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if isDateInPast(req.Date, uc.timeProvider.Now()) {
		return nil, ErrPastDate
	}

	next := req.toDomain()
	if err := next.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	reason := req.Reason
	if reason == "" {
		reason = defaultCancellationReason
	}

	uc.logger.Info("ApplyDateOverride: date=%s", req.Date.Format(domain.DateFormat))

	var stored *domain.DateOverride
	var closedSlots []domain.Slot
	var cancelled []*domain.GroupBooking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		cancelled = cancelled[:0]

		// Locks the override row for the date, serializing staff edits
		prev, err := uc.overrideRepo.GetByDate(txCtx, req.Date)
		if err != nil && !errors.Is(err, overrideRepo.ErrOverrideNotFound) {
			uc.logger.Error("ApplyDateOverride: failed to get current override: %v", err)
			return fmt.Errorf("%w: failed to get current override: %v", ErrInternal, err)
		}

		stored, err = uc.overrideRepo.Upsert(txCtx, next)
		if err != nil {
			uc.logger.Error("ApplyDateOverride: failed to store override: %v", err)
			return fmt.Errorf("%w: failed to store override: %v", ErrInternal, err)
		}

		closedSlots = stored.ClosedSince(prev)

		for _, slot := range closedSlots {
			bookings, err := uc.bookingRepo.GetConfirmedBySlot(txCtx, req.Date, slot)
			if err != nil {
				uc.logger.Error("ApplyDateOverride: failed to get bookings for slot %s: %v", slot, err)
				return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
			}

			for _, b := range bookings {
				if err := uc.bookingRepo.Cancel(txCtx, b.ID, reason); err != nil {
					uc.logger.Error("ApplyDateOverride: failed to cancel booking %d: %v", b.ID, err)
					return fmt.Errorf("%w: failed to cancel booking %d: %v", ErrInternal, b.ID, err)
				}
				b.Cancel(reason, uc.timeProvider.Now())
				cancelled = append(cancelled, b)
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ApplyDateOverride: date=%s stored, %d slot(s) closed, %d booking(s) cancelled",
		req.Date.Format(domain.DateFormat), len(closedSlots), len(cancelled))

	notifyFailures := uc.notifyCancelled(ctx, cancelled, reason)

	return &Response{
		Override:       stored,
		ClosedSlots:    closedSlots,
		CancelledCount: len(cancelled),
		NotifyFailures: notifyFailures,
	}, nil
}

// notifyCancelled removes calendar events and emails customers for every
// cancelled booking. Failures are isolated per booking: one bad address
// must not stop the other notifications.
func (uc *UseCase) notifyCancelled(ctx context.Context, cancelled []*domain.GroupBooking, reason string) int {
	failures := 0
	for _, b := range cancelled {
		if b.CalendarEventID != nil {
			if err := uc.calendar.DeleteEvent(ctx, *b.CalendarEventID); err != nil {
				uc.logger.Error("ApplyDateOverride: failed to delete calendar event for booking %d: %v", b.ID, err)
			}
		}

		dogs, err := uc.dogRepo.GetByOwner(ctx, domain.GroupBookingOwner(b.ID))
		if err != nil {
			uc.logger.Error("ApplyDateOverride: failed to load dogs for booking %d: %v", b.ID, err)
			dogs = nil
		}

		if err := uc.mailer.SendBookingCancellation(b, dogs, reason); err != nil {
			uc.logger.Error("ApplyDateOverride: cancellation email failed for booking %d: %v", b.ID, err)
			failures++
		}
	}
	return failures
}

// isDateInPast reports whether the date is today or earlier, ignoring
// the time of day. Overrides apply to future dates only.
func isDateInPast(date, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	return !dateOnly.After(today)
}
