package delete_date_override

import (
	"context"
	"time"
)

type OverridesService interface {
	Delete(ctx context.Context, date time.Time) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
