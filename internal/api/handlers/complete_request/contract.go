package complete_request

import (
	"context"

	"github.com/caninecompadre/booking-service/internal/domain"
)

type RequestsService interface {
	Complete(ctx context.Context, id int64) (*domain.IndividualRequest, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
