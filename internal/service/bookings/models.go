package bookings

import (
	"time"

	"github.com/caninecompadre/booking-service/internal/domain"
)

// BookingResponse is a booking with its dogs attached.
type BookingResponse struct {
	Booking *domain.GroupBooking
	Dogs    []*domain.Dog
}

// ListRequest narrows the booking list.
type ListRequest struct {
	Date     *time.Time
	FromDate *time.Time
	ToDate   *time.Time
	Slot     *string
	Status   *string
	Email    *string
}

// CancelResult reports a cancellation and the outcome of its side effects.
type CancelResult struct {
	Booking        *domain.GroupBooking
	CalendarPurged bool
	EmailSent      bool
}

// toDomainFilter converts the list request, rejecting unknown slot and
// status values.
func (r *ListRequest) toDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		Date:     r.Date,
		FromDate: r.FromDate,
		ToDate:   r.ToDate,
		Email:    r.Email,
	}

	if r.Slot != nil {
		slot, ok := domain.ParseSlot(*r.Slot)
		if !ok {
			return filter, ErrInvalidInput
		}
		filter.Slot = &slot
	}

	if r.Status != nil {
		status := domain.BookingStatus(*r.Status)
		switch status {
		case domain.StatusConfirmed, domain.StatusCompleted, domain.StatusCancelled:
			filter.Status = &status
		default:
			return filter, ErrInvalidInput
		}
	}

	return filter, nil
}
