package get_request

import (
	"context"

	"github.com/caninecompadre/booking-service/internal/service/requests"
)

type RequestsService interface {
	GetByID(ctx context.Context, id int64) (*requests.RequestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
