package complete_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/caninecompadre/booking-service/internal/api/handlers"
	"github.com/caninecompadre/booking-service/internal/domain"
	"github.com/caninecompadre/booking-service/internal/service/bookings"
)

const (
	msgInvalidID       = "invalid booking id"
	msgBookingNotFound = "booking not found"
	msgCannotComplete  = "booking cannot be completed in its current state"
)

// CompleteBookingResponse is the HTTP response model.
type CompleteBookingResponse struct {
	ID          int64  `json:"id"`
	BookingDate string `json:"bookingDate"`
	TimeSlot    string `json:"timeSlot"`
	Status      string `json:"status"`
}

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle POST /api/v1/bookings/{id}/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	booking, err := h.service.Complete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)
		case errors.Is(err, bookings.ErrCannotComplete):
			handlers.RespondConflict(w, msgCannotComplete)
		default:
			h.logger.Error("POST /bookings/%d/complete - failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &CompleteBookingResponse{
		ID:          booking.ID,
		BookingDate: booking.BookingDate.Format(domain.DateFormat),
		TimeSlot:    string(booking.TimeSlot),
		Status:      string(booking.Status),
	})
}
