package review_request

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/caninecompadre/booking-service/internal/api/handlers"
	"github.com/caninecompadre/booking-service/internal/service/requests"
)

const (
	msgInvalidID          = "invalid request id"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid confirmed date, expected YYYY-MM-DD"
	msgRequestNotFound    = "request not found"
	msgCannotReview       = "request has already been reviewed"
	msgPastDate           = "confirmed date is in the past"
)

type Handler struct {
	service RequestsService
	logger  Logger
}

func NewHandler(service RequestsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle POST /api/v1/individual-requests/{id}/review
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req ReviewRequestRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /individual-requests/%d/review - invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(id)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Review(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, requests.ErrRequestNotFound):
			handlers.RespondNotFound(w, msgRequestNotFound)
		case errors.Is(err, requests.ErrCannotReview):
			handlers.RespondConflict(w, msgCannotReview)
		case errors.Is(err, requests.ErrPastDate):
			handlers.RespondBadRequest(w, msgPastDate)
		case errors.Is(err, requests.ErrInvalidInput):
			h.logger.Warn("POST /individual-requests/%d/review - invalid input: %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
		default:
			h.logger.Error("POST /individual-requests/%d/review - failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResult(result))
}
