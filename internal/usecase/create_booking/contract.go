package create_booking

import (
	"context"
	"time"

	"github.com/caninecompadre/booking-service/internal/domain"
)

// SettingsRepository reads the global booking settings.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.Settings, error)
}

// OverrideRepository reads per-date availability overrides.
type OverrideRepository interface {
	GetByDate(ctx context.Context, date time.Time) (*domain.DateOverride, error)
}

// BookingRepository writes group walk bookings.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.GroupBooking) (*domain.GroupBooking, error)
	GetConfirmedBySlot(ctx context.Context, date time.Time, slot domain.Slot) ([]*domain.GroupBooking, error)
	SetCalendarEventID(ctx context.Context, id int64, eventID *string) error
}

// DogRepository writes dog profiles.
type DogRepository interface {
	CreateBatch(ctx context.Context, owner domain.DogOwner, dogs []*domain.Dog) error
}

// CalendarClient publishes walk events.
type CalendarClient interface {
	CreateGroupWalkEvent(ctx context.Context, b *domain.GroupBooking) (string, error)
}

// Mailer sends booking notifications.
type Mailer interface {
	SendBookingConfirmation(bookings []*domain.GroupBooking, dogs []*domain.Dog) error
	SendAdminNewBooking(bookings []*domain.GroupBooking, dogs []*domain.Dog) error
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
