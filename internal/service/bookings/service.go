package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/caninecompadre/booking-service/internal/domain"
	bookingRepo "github.com/caninecompadre/booking-service/internal/infra/storage/booking"
)

// Service covers the lifecycle of existing bookings: lookup, staff
// cancellation and completion. Creation goes through its own usecase.
type Service struct {
	bookingRepo  BookingRepository
	dogRepo      DogRepository
	calendar     CalendarClient
	mailer       Mailer
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates the bookings service.
func NewService(
	bookingRepo BookingRepository,
	dogRepo DogRepository,
	calendar CalendarClient,
	mailer Mailer,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		dogRepo:      dogRepo,
		calendar:     calendar,
		mailer:       mailer,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID returns a booking with its dogs.
func (s *Service) GetByID(ctx context.Context, id int64) (*BookingResponse, error) {
	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	dogs, err := s.dogRepo.GetByOwner(ctx, domain.GroupBookingOwner(id))
	if err != nil {
		s.logger.Error("GetByID: failed to load dogs for booking %d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - failed to load dogs: %v", ErrInternal, err)
	}

	return &BookingResponse{Booking: booking, Dogs: dogs}, nil
}

// List returns bookings matching the filter.
func (s *Service) List(ctx context.Context, req *ListRequest) ([]*domain.GroupBooking, error) {
	filter, err := req.toDomainFilter()
	if err != nil {
		s.logger.Warn("ListBookings: invalid filter: %v", err)
		return nil, err
	}

	result, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBookings: fetched %d booking(s)", len(result))
	return result, nil
}

// GetByBatchID returns all walks of one multi-date reservation.
func (s *Service) GetByBatchID(ctx context.Context, batchID string) ([]*domain.GroupBooking, error) {
	if batchID == "" {
		return nil, fmt.Errorf("%w: batch id is required", ErrInvalidInput)
	}

	result, err := s.bookingRepo.GetByBatchID(ctx, batchID)
	if err != nil {
		s.logger.Error("GetByBatchID: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetByBatchID - repository error: %v", ErrInternal, err)
	}
	return result, nil
}

// Cancel cancels a confirmed booking, removes its calendar event and
// emails the customer. The cancellation itself succeeds even when the
// notifications fail; the result reports which side effects ran.
func (s *Service) Cancel(ctx context.Context, id int64, reason string) (*CancelResult, error) {
	if reason == "" {
		return nil, fmt.Errorf("%w: cancellation reason is required", ErrInvalidInput)
	}
	if len(reason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellation reason too long", ErrInvalidInput)
	}

	booking, err := s.getBooking(ctx, "CancelBooking", id)
	if err != nil {
		return nil, err
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("CancelBooking: booking %d has status %s", id, booking.Status)
		return nil, ErrCannotCancel
	}

	// The repository only cancels a booking still in confirmed status,
	// so a concurrent complete or cancel cannot be overwritten here.
	if err := s.bookingRepo.Cancel(ctx, id, reason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotUpdatable) {
			s.logger.Warn("CancelBooking: booking %d changed status concurrently", id)
			return nil, ErrCannotCancel
		}
		s.logger.Error("CancelBooking: repository error for booking %d: %v", id, err)
		return nil, fmt.Errorf("%w: CancelBooking - repository error: %v", ErrInternal, err)
	}
	booking.Cancel(reason, s.timeProvider.Now())

	result := &CancelResult{Booking: booking}

	if booking.CalendarEventID != nil {
		if err := s.calendar.DeleteEvent(ctx, *booking.CalendarEventID); err != nil {
			s.logger.Error("CancelBooking: failed to delete calendar event for booking %d: %v", id, err)
		} else {
			result.CalendarPurged = true
		}
	}

	dogs, err := s.dogRepo.GetByOwner(ctx, domain.GroupBookingOwner(id))
	if err != nil {
		s.logger.Error("CancelBooking: failed to load dogs for booking %d: %v", id, err)
		dogs = nil
	}
	if err := s.mailer.SendBookingCancellation(booking, dogs, reason); err != nil {
		s.logger.Error("CancelBooking: cancellation email failed for booking %d: %v", id, err)
	} else {
		result.EmailSent = true
	}

	s.logger.Info("CancelBooking: booking %d cancelled", id)
	return result, nil
}

// Complete marks a confirmed booking as walked.
func (s *Service) Complete(ctx context.Context, id int64) (*domain.GroupBooking, error) {
	booking, err := s.getBooking(ctx, "CompleteBooking", id)
	if err != nil {
		return nil, err
	}

	if !booking.CanBeCompleted() {
		s.logger.Warn("CompleteBooking: booking %d has status %s", id, booking.Status)
		return nil, ErrCannotComplete
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, domain.StatusCompleted); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotUpdatable) {
			s.logger.Warn("CompleteBooking: booking %d changed status concurrently", id)
			return nil, ErrCannotComplete
		}
		s.logger.Error("CompleteBooking: repository error for booking %d: %v", id, err)
		return nil, fmt.Errorf("%w: CompleteBooking - repository error: %v", ErrInternal, err)
	}
	booking.Status = domain.StatusCompleted

	s.logger.Info("CompleteBooking: booking %d completed", id)
	return booking, nil
}

func (s *Service) getBooking(ctx context.Context, op string, id int64) (*domain.GroupBooking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking %d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking %d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}
