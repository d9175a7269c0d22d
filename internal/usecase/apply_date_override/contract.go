package apply_date_override

import (
	"context"
	"time"

	"github.com/caninecompadre/booking-service/internal/domain"
)

// OverrideRepository reads and writes per-date availability overrides.
type OverrideRepository interface {
	GetByDate(ctx context.Context, date time.Time) (*domain.DateOverride, error)
	Upsert(ctx context.Context, o *domain.DateOverride) (*domain.DateOverride, error)
}

// BookingRepository reads and cancels group walk bookings.
type BookingRepository interface {
	GetConfirmedBySlot(ctx context.Context, date time.Time, slot domain.Slot) ([]*domain.GroupBooking, error)
	Cancel(ctx context.Context, id int64, reason string) error
}

// DogRepository reads dog profiles for cancellation emails.
type DogRepository interface {
	GetByOwner(ctx context.Context, owner domain.DogOwner) ([]*domain.Dog, error)
}

// CalendarClient removes events of cancelled walks.
type CalendarClient interface {
	DeleteEvent(ctx context.Context, uid string) error
}

// Mailer sends cancellation notifications.
type Mailer interface {
	SendBookingCancellation(booking *domain.GroupBooking, dogs []*domain.Dog, reason string) error
}

// TransactionManager runs functions inside database transactions.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider returns the current time (for testing).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the minimal logging surface the usecase needs.
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
