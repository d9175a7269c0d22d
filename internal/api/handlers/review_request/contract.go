package review_request

import (
	"context"

	"github.com/caninecompadre/booking-service/internal/service/requests"
)

type RequestsService interface {
	Review(ctx context.Context, req *requests.ReviewRequest) (*requests.ReviewResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
