package update_settings

import (
	"context"

	"github.com/caninecompadre/booking-service/internal/domain"
)

type SettingsService interface {
	Update(ctx context.Context, next domain.Settings) (*domain.Settings, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
