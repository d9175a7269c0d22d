package create_booking

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/caninecompadre/booking-service/internal/api/handlers"
	"github.com/caninecompadre/booking-service/internal/domain"
	createBooking "github.com/caninecompadre/booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid booking date, expected YYYY-MM-DD"
	msgPastDate           = "booking date is in the past"
	msgWeekendClosed      = "weekend bookings are not available"
	msgSlotClosed         = "the selected slot is not available on this date"
	msgPostcodeNotServed  = "sorry, we do not cover this postcode area"
	msgTooManyDogs        = "too many dogs for one booking"
	msgDogCountMismatch   = "dog profiles do not match the dog count"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var noSpace *createBooking.NotEnoughSpaceError

		switch {
		case errors.As(err, &noSpace):
			h.logger.Warn("POST /bookings - not enough space: slot=%s date=%s available=%d",
				noSpace.Slot, noSpace.Date.Format(domain.DateFormat), noSpace.Available)
			handlers.RespondConflict(w, fmt.Sprintf("not enough space on %s: %d spot(s) left",
				noSpace.Date.Format(domain.DateFormat), noSpace.Available))

		case errors.Is(err, createBooking.ErrPastDate):
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createBooking.ErrWeekendClosed):
			handlers.RespondBadRequest(w, msgWeekendClosed)

		case errors.Is(err, createBooking.ErrSlotClosed):
			handlers.RespondConflict(w, msgSlotClosed)

		case errors.Is(err, createBooking.ErrPostcodeNotServed):
			handlers.RespondBadRequest(w, msgPostcodeNotServed)

		case errors.Is(err, createBooking.ErrTooManyDogs):
			handlers.RespondBadRequest(w, msgTooManyDogs)

		case errors.Is(err, createBooking.ErrDogCountMismatch):
			handlers.RespondBadRequest(w, msgDogCountMismatch)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - failed to create booking: customer=%s, error=%v",
				req.CustomerEmail, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
