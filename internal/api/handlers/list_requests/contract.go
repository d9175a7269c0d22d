package list_requests

import (
	"context"

	"github.com/caninecompadre/booking-service/internal/domain"
	"github.com/caninecompadre/booking-service/internal/service/requests"
)

type RequestsService interface {
	List(ctx context.Context, req *requests.ListRequest) ([]*domain.IndividualRequest, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
