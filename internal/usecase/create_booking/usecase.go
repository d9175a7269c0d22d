package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/caninecompadre/booking-service/internal/domain"
	overrideRepo "github.com/caninecompadre/booking-service/internal/infra/storage/override"
)

// UseCase reserves group walk spots.
type UseCase struct {
	settingsRepo SettingsRepository
	overrideRepo OverrideRepository
	bookingRepo  BookingRepository
	dogRepo      DogRepository
	calendar     CalendarClient
	mailer       Mailer
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the booking usecase.
func NewUseCase(
	settingsRepo SettingsRepository,
	overrideRepo OverrideRepository,
	bookingRepo BookingRepository,
	dogRepo DogRepository,
	calendar CalendarClient,
	mailer Mailer,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		settingsRepo: settingsRepo,
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

// Execute reserves the requested spots on every date in one serializable
// transaction: either every date fits and every dog row is written, or
// nothing is. Calendar and email side effects run after commit and never
// undo the reservation.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%s, slot=%s, dates=%d, dogs=%d",
		req.CustomerEmail, req.TimeSlot, len(req.Dates), req.DogCount)

	// 1. Stateless validation
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	for _, date := range req.Dates {
		if isDateInPast(date, now) {
			uc.logger.Warn("CreateBooking: date %s is in the past", date.Format(domain.DateFormat))
			return nil, ErrPastDate
		}
	}

	customer := domain.Customer{
		Name:     req.CustomerName,
		Email:    req.CustomerEmail,
		Phone:    req.CustomerPhone,
		Address:  req.CustomerAddress,
		Postcode: req.CustomerPostcode,
	}

	var batchID *string
	if len(req.Dates) > 1 {
		id := uuid.NewString()
		batchID = &id
	}

	var created []*domain.GroupBooking
	var dogs []*domain.Dog

	// 2. Capacity checks and inserts under one serializable transaction
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		created = created[:0]
		dogs = nil

		settings, err := uc.settingsRepo.Get(txCtx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get settings: %v", err)
			return fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}

		if req.DogCount > settings.MaxDogsPerSlot {
			uc.logger.Warn("CreateBooking: %d dogs exceed the per-slot limit %d", req.DogCount, settings.MaxDogsPerSlot)
			return ErrTooManyDogs
		}

		for _, date := range req.Dates {
			if !settings.DateAllowed(date) {
				uc.logger.Warn("CreateBooking: weekend bookings disabled, rejecting %s", date.Format(domain.DateFormat))
				return ErrWeekendClosed
			}

			override, err := uc.overrideRepo.GetByDate(txCtx, date)
			if err != nil && !errors.Is(err, overrideRepo.ErrOverrideNotFound) {
				uc.logger.Error("CreateBooking: failed to get override for %s: %v", date.Format(domain.DateFormat), err)
				return fmt.Errorf("%w: failed to get override: %v", ErrInternal, err)
			}

			capacity := domain.ResolveCapacity(*settings, override, req.TimeSlot)
			if capacity == 0 {
				uc.logger.Warn("CreateBooking: slot %s closed on %s", req.TimeSlot, date.Format(domain.DateFormat))
				return ErrSlotClosed
			}

			// Locks the confirmed rows of this (date, slot) until commit
			existing, err := uc.bookingRepo.GetConfirmedBySlot(txCtx, date, req.TimeSlot)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to get confirmed bookings: %v", err)
				return fmt.Errorf("%w: failed to get confirmed bookings: %v", ErrInternal, err)
			}

			committed := 0
			for _, b := range existing {
				committed += b.DogCount
			}

			available := domain.AvailableSpots(capacity, committed)
			if req.DogCount > available {
				uc.logger.Warn("CreateBooking: slot %s on %s has %d spots, requested %d",
					req.TimeSlot, date.Format(domain.DateFormat), available, req.DogCount)
				return &NotEnoughSpaceError{Date: date, Slot: req.TimeSlot, Available: available}
			}

			booking := &domain.GroupBooking{
				Customer:    customer,
				BookingDate: date,
				TimeSlot:    req.TimeSlot,
				DogCount:    req.DogCount,
				Status:      domain.StatusConfirmed,
				BatchID:     batchID,
			}

			if _, err := uc.bookingRepo.Create(txCtx, booking); err != nil {
				uc.logger.Error("CreateBooking: failed to create booking: %v", err)
				return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
			}

			bookingDogs := make([]*domain.Dog, 0, len(req.Dogs))
			for i := range req.Dogs {
				bookingDogs = append(bookingDogs, req.Dogs[i].toDomain())
			}
			if err := uc.dogRepo.CreateBatch(txCtx, domain.GroupBookingOwner(booking.ID), bookingDogs); err != nil {
				uc.logger.Error("CreateBooking: failed to create dogs for booking %d: %v", booking.ID, err)
				return fmt.Errorf("%w: failed to create dogs: %v", ErrInternal, err)
			}

			created = append(created, booking)
			if dogs == nil {
				dogs = bookingDogs
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: reserved %d booking(s) for %s", len(created), req.CustomerEmail)

	// 3. Post-commit side effects
	results := uc.syncCalendar(ctx, created)
	emailSent := uc.notify(created, dogs)

	return &Response{
		Bookings:  results,
		BatchID:   batchID,
		DogCount:  req.DogCount,
		EmailSent: emailSent,
		CreatedAt: created[0].CreatedAt,
	}, nil
}

// syncCalendar publishes one event per booking. A failed event leaves
// the booking intact and unsynced.
func (uc *UseCase) syncCalendar(ctx context.Context, bookings []*domain.GroupBooking) []BookingResult {
	results := make([]BookingResult, 0, len(bookings))
	for _, b := range bookings {
		synced := false
		eventID, err := uc.calendar.CreateGroupWalkEvent(ctx, b)
		if err != nil {
			uc.logger.Error("CreateBooking: calendar sync failed for booking %d: %v", b.ID, err)
		} else if err := uc.bookingRepo.SetCalendarEventID(ctx, b.ID, &eventID); err != nil {
			uc.logger.Error("CreateBooking: failed to store calendar event id for booking %d: %v", b.ID, err)
		} else {
			b.CalendarEventID = &eventID
			synced = true
		}

		results = append(results, BookingResult{
			ID:             b.ID,
			BookingDate:    b.BookingDate,
			TimeSlot:       b.TimeSlot,
			Status:         string(b.Status),
			CalendarSynced: synced,
		})
	}
	return results
}

func (uc *UseCase) notify(bookings []*domain.GroupBooking, dogs []*domain.Dog) bool {
	emailSent := true
	if err := uc.mailer.SendBookingConfirmation(bookings, dogs); err != nil {
		uc.logger.Error("CreateBooking: confirmation email failed: %v", err)
		emailSent = false
	}
	if err := uc.mailer.SendAdminNewBooking(bookings, dogs); err != nil {
		uc.logger.Error("CreateBooking: admin notification failed: %v", err)
	}
	return emailSent
}
