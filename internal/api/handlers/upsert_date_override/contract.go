package upsert_date_override

import (
	"context"

	applyOverride "github.com/caninecompadre/booking-service/internal/usecase/apply_date_override"
)

type ApplyDateOverrideUseCase interface {
	Execute(ctx context.Context, req *applyOverride.Request) (*applyOverride.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
