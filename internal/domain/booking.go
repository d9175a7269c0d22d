package domain

import "time"

// BookingStatus represents the status of a group walk booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Customer holds the contact details attached to a booking or request.
type Customer struct {
	Name     string
	Email    string
	Phone    string
	Address  string
	Postcode string
}

// GroupBooking represents a reservation of spots in one group walk slot.
// A multi-date booking produces one GroupBooking per date, linked by BatchID.
type GroupBooking struct {
	ID          int64
	Customer    Customer
	BookingDate time.Time
	TimeSlot    Slot
	DogCount    int
	Status      BookingStatus

	CalendarEventID    *string
	BatchID            *string
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies slot capacity.
func (b *GroupBooking) IsActive() bool {
	return b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking can be cancelled.
func (b *GroupBooking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// CanBeCompleted returns true if the booking can be marked completed.
func (b *GroupBooking) CanBeCompleted() bool {
	return b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled.
func (b *GroupBooking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// Cancel moves the booking to the cancelled state. The caller is
// responsible for releasing the calendar event and notifying the customer.
func (b *GroupBooking) Cancel(reason string, at time.Time) {
	b.Status = StatusCancelled
	b.CancellationReason = &reason
	b.CancelledAt = &at
}

// BookingsFilter narrows booking list queries.
type BookingsFilter struct {
	Date     *time.Time
	Slot     *Slot
	Status   *BookingStatus
	Email    *string
	FromDate *time.Time
	ToDate   *time.Time
}
