package overrides

import (
	"context"
	"time"

	"github.com/caninecompadre/booking-service/internal/domain"
)

// OverrideRepository stores per-date availability overrides.
type OverrideRepository interface {
	GetByDate(ctx context.Context, date time.Time) (*domain.DateOverride, error)
	Delete(ctx context.Context, date time.Time) error
}

// SettingsRepository reads the global booking settings.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.Settings, error)
}

// BookingRepository lists bookings of a date.
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.GroupBooking, error)
}

// Logger is the minimal logging surface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
