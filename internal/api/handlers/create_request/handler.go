package create_request

import (
	"errors"
	"net/http"

	"github.com/caninecompadre/booking-service/internal/api/handlers"
	"github.com/caninecompadre/booking-service/internal/service/requests"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid preferred date, expected YYYY-MM-DD"
	msgPastDate           = "preferred date is in the past"
	msgPostcodeNotServed  = "sorry, we do not cover this postcode area"
	msgDogCountMismatch   = "dog profiles do not match the dog count"
)

// restrictedTimeResponse carries the colliding group walk windows so the
// customer can pick a time outside them.
type restrictedTimeResponse struct {
	Code      int      `json:"code"`
	Message   string   `json:"message"`
	Conflicts []string `json:"conflicts"`
}

type Handler struct {
	service RequestsService
	logger  Logger
}

func NewHandler(service RequestsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle POST /api/v1/individual-requests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateRequestRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /individual-requests - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /individual-requests - invalid date=%q: %v", req.PreferredDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		var restricted *requests.RestrictedTimeError

		switch {
		case errors.As(err, &restricted):
			h.logger.Warn("POST /individual-requests - restricted time %q: %v", req.PreferredTimeText, err)
			handlers.RespondJSON(w, http.StatusBadRequest, restrictedTimeResponse{
				Code:      http.StatusBadRequest,
				Message:   "preferred time falls within group walk hours, please choose another time",
				Conflicts: restricted.Conflicts,
			})

		case errors.Is(err, requests.ErrPastDate):
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, requests.ErrPostcodeNotServed):
			handlers.RespondBadRequest(w, msgPostcodeNotServed)

		case errors.Is(err, requests.ErrDogCountMismatch):
			handlers.RespondBadRequest(w, msgDogCountMismatch)

		case errors.Is(err, requests.ErrInvalidInput):
			h.logger.Warn("POST /individual-requests - invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /individual-requests - failed: customer=%s, error=%v",
				req.CustomerEmail, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, FromServiceResult(result))
}
