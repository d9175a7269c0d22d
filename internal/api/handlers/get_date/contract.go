package get_date

import (
	"context"
	"time"

	"github.com/caninecompadre/booking-service/internal/service/overrides"
)

type OverridesService interface {
	GetDate(ctx context.Context, date time.Time) (*overrides.DateDetail, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
