package list_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/caninecompadre/booking-service/internal/api/handlers"
	"github.com/caninecompadre/booking-service/internal/domain"
	"github.com/caninecompadre/booking-service/internal/service/bookings"
)

const (
	msgInvalidDate   = "invalid date, expected YYYY-MM-DD"
	msgInvalidFilter = "invalid slot or status filter"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle GET /api/v1/bookings?date=&from=&to=&slot=&status=&email=&batch=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if batch := query.Get("batch"); batch != "" {
		list, err := h.service.GetByBatchID(r.Context(), batch)
		if err != nil {
			h.logger.Error("GET /bookings - batch lookup failed: %v", err)
			handlers.RespondInternalError(w)
			return
		}
		handlers.RespondJSON(w, http.StatusOK, FromBookings(list))
		return
	}

	req := &bookings.ListRequest{}

	var parseErr error
	req.Date = parseDateParam(query.Get("date"), &parseErr)
	req.FromDate = parseDateParam(query.Get("from"), &parseErr)
	req.ToDate = parseDateParam(query.Get("to"), &parseErr)
	if parseErr != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if slot := query.Get("slot"); slot != "" {
		req.Slot = &slot
	}
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if email := query.Get("email"); email != "" {
		req.Email = &email
	}

	list, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidFilter)
		default:
			h.logger.Error("GET /bookings - failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromBookings(list))
}

func parseDateParam(raw string, parseErr *error) *time.Time {
	if raw == "" || *parseErr != nil {
		return nil
	}
	date, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		*parseErr = err
		return nil
	}
	return &date
}
