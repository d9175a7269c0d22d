package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/caninecompadre/booking-service/internal/api/handlers"
	"github.com/caninecompadre/booking-service/internal/domain"
	getAvailableSlots "github.com/caninecompadre/booking-service/internal/usecase/get_available_slots"
)

const (
	msgInvalidFrom   = "invalid from date, expected YYYY-MM-DD"
	msgInvalidDays   = "invalid days parameter"
	msgInvalidDogs   = "invalid dogs parameter"
	msgInvalidWindow = "projection window is out of range"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{useCase: useCase, logger: logger}
}

// Handle GET /api/v1/available-slots?from=YYYY-MM-DD&days=N&dogs=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req getAvailableSlots.Request

	if from := r.URL.Query().Get("from"); from != "" {
		parsed, err := time.Parse(domain.DateFormat, from)
		if err != nil {
			h.logger.Warn("GET /available-slots - invalid from=%q", from)
			handlers.RespondBadRequest(w, msgInvalidFrom)
			return
		}
		req.FromDate = parsed
	}

	if days := r.URL.Query().Get("days"); days != "" {
		parsed, err := strconv.Atoi(days)
		if err != nil {
			h.logger.Warn("GET /available-slots - invalid days=%q", days)
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
		req.Days = parsed
	}

	if dogs := r.URL.Query().Get("dogs"); dogs != "" {
		parsed, err := strconv.Atoi(dogs)
		if err != nil {
			h.logger.Warn("GET /available-slots - invalid dogs=%q", dogs)
			handlers.RespondBadRequest(w, msgInvalidDogs)
			return
		}
		req.RequiredDogs = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWindow)
		default:
			h.logger.Error("GET /available-slots - failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
