package settings

import (
	"context"

	"github.com/caninecompadre/booking-service/internal/domain"
)

// SettingsRepository stores the global settings row.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, s domain.Settings) (*domain.Settings, error)
}

// Logger is the minimal logging surface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
