package list_bookings

import (
	"context"

	"github.com/caninecompadre/booking-service/internal/domain"
	"github.com/caninecompadre/booking-service/internal/service/bookings"
)

type BookingsService interface {
	List(ctx context.Context, req *bookings.ListRequest) ([]*domain.GroupBooking, error)
	GetByBatchID(ctx context.Context, batchID string) ([]*domain.GroupBooking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
