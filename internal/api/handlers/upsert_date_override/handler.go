package upsert_date_override

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/caninecompadre/booking-service/internal/api/handlers"
	"github.com/caninecompadre/booking-service/internal/domain"
	applyOverride "github.com/caninecompadre/booking-service/internal/usecase/apply_date_override"
)

const (
	msgInvalidDate        = "invalid date, expected YYYY-MM-DD"
	msgInvalidRequestBody = "invalid request body"
	msgPastDate           = "cannot override a past date"
	msgInvalidOverride    = "override values are out of range"
)

type Handler struct {
	useCase ApplyDateOverrideUseCase
	logger  Logger
}

func NewHandler(useCase ApplyDateOverrideUseCase, logger Logger) *Handler {
	return &Handler{useCase: useCase, logger: logger}
}

// Handle PUT /api/v1/dates/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["date"]
	date, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var req UpsertOverrideRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /dates/%s - invalid request body: %v", raw, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(date))
	if err != nil {
		switch {
		case errors.Is(err, applyOverride.ErrPastDate):
			handlers.RespondBadRequest(w, msgPastDate)
		case errors.Is(err, applyOverride.ErrInvalidInput):
			h.logger.Warn("PUT /dates/%s - invalid override: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidOverride)
		default:
			h.logger.Error("PUT /dates/%s - failed: %v", raw, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
