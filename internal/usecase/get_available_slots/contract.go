package get_available_slots

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
	GetByDateRange(ctx context.Context, from, to time.Time) ([]*domain.DateOverride, error)
}

// BookingRepository reads committed dog counts.
type BookingRepository interface {
	CountCommittedDogs(ctx context.Context, from, to time.Time) (map[time.Time]map[domain.Slot]int, error)
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
