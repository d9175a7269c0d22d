package bookings

import (
	"context"
	"time"

	"github.com/caninecompadre/booking-service/internal/domain"
)

// BookingRepository stores group walk bookings.
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.GroupBooking, error)
	GetByBatchID(ctx context.Context, batchID string) ([]*domain.GroupBooking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.GroupBooking, error)
	Cancel(ctx context.Context, id int64, reason string) error
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

// DogRepository reads dog profiles.
type DogRepository interface {
	GetByOwner(ctx context.Context, owner domain.DogOwner) ([]*domain.Dog, error)
}

// CalendarClient removes events of cancelled walks.
type CalendarClient interface {
	DeleteEvent(ctx context.Context, uid string) error
}

// Mailer sends booking notifications.
type Mailer interface {
	SendBookingCancellation(booking *domain.GroupBooking, dogs []*domain.Dog, reason string) error
}

// TimeProvider returns the current time (for testing).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the minimal logging surface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
