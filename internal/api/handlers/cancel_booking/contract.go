package cancel_booking

import (
	"context"

	"github.com/caninecompadre/booking-service/internal/service/bookings"
)

type BookingsService interface {
	Cancel(ctx context.Context, id int64, reason string) (*bookings.CancelResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
