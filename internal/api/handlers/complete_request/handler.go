package complete_request

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/caninecompadre/booking-service/internal/api/handlers"
	"github.com/caninecompadre/booking-service/internal/domain"
	"github.com/caninecompadre/booking-service/internal/service/requests"
)

const (
	msgInvalidID       = "invalid request id"
	msgRequestNotFound = "request not found"
	msgCannotComplete  = "request cannot be completed in its current state"
)

// CompleteRequestResponse is the HTTP response model.
type CompleteRequestResponse struct {
	ID            int64   `json:"id"`
	Status        string  `json:"status"`
	ConfirmedDate *string `json:"confirmedDate,omitempty"`
}

type Handler struct {
	service RequestsService
	logger  Logger
}

func NewHandler(service RequestsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle POST /api/v1/individual-requests/{id}/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	request, err := h.service.Complete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, requests.ErrRequestNotFound):
			handlers.RespondNotFound(w, msgRequestNotFound)
		case errors.Is(err, requests.ErrCannotComplete):
			handlers.RespondConflict(w, msgCannotComplete)
		default:
			h.logger.Error("POST /individual-requests/%d/complete - failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := &CompleteRequestResponse{
		ID:     request.ID,
		Status: string(request.Status),
	}
	if request.ConfirmedDate != nil {
		confirmed := request.ConfirmedDate.Format(domain.DateFormat)
		response.ConfirmedDate = &confirmed
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
