package get_booking

import (
	"context"

	"github.com/caninecompadre/booking-service/internal/service/bookings"
)

type BookingsService interface {
	GetByID(ctx context.Context, id int64) (*bookings.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
