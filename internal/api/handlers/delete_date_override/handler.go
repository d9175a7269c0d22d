package delete_date_override

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/caninecompadre/booking-service/internal/api/handlers"
	"github.com/caninecompadre/booking-service/internal/domain"
	"github.com/caninecompadre/booking-service/internal/service/overrides"
)

const (
	msgInvalidDate      = "invalid date, expected YYYY-MM-DD"
	msgOverrideNotFound = "no override for this date"
)

type Handler struct {
	service OverridesService
	logger  Logger
}

func NewHandler(service OverridesService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle DELETE /api/v1/dates/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["date"]
	date, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if err := h.service.Delete(r.Context(), date); err != nil {
		switch {
		case errors.Is(err, overrides.ErrOverrideNotFound):
			handlers.RespondNotFound(w, msgOverrideNotFound)
		default:
			h.logger.Error("DELETE /dates/%s - failed: %v", raw, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
