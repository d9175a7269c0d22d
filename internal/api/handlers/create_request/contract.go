package create_request

import (
	"context"

	"github.com/caninecompadre/booking-service/internal/service/requests"
)

type RequestsService interface {
	Create(ctx context.Context, req *requests.CreateRequest) (*requests.CreateResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
