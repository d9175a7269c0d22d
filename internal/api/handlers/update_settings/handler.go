package update_settings

import (
	"errors"
	"net/http"
	"time"

	"github.com/caninecompadre/booking-service/internal/api/handlers"
	"github.com/caninecompadre/booking-service/internal/domain"
	"github.com/caninecompadre/booking-service/internal/service/settings"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidSettings    = "settings are out of range"
)

// UpdateSettingsRequest is the HTTP request model. All fields are
// required; the settings row is replaced whole.
type UpdateSettingsRequest struct {
	AllowWeekendBookings bool `json:"allowWeekendBookings"`
	MaxDogsPerSlot       int  `json:"maxDogsPerSlot"`
	AllowEveningSlot     bool `json:"allowEveningSlot"`
}

// UpdateSettingsResponse is the HTTP response model.
type UpdateSettingsResponse struct {
	AllowWeekendBookings bool   `json:"allowWeekendBookings"`
	MaxDogsPerSlot       int    `json:"maxDogsPerSlot"`
	AllowEveningSlot     bool   `json:"allowEveningSlot"`
	UpdatedAt            string `json:"updatedAt"`
}

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle PUT /api/v1/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.Update(r.Context(), domain.Settings{
		AllowWeekendBookings: req.AllowWeekendBookings,
		MaxDogsPerSlot:       req.MaxDogsPerSlot,
		AllowEveningSlot:     req.AllowEveningSlot,
	})
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidSettings)
		default:
			h.logger.Error("PUT /settings - failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &UpdateSettingsResponse{
		AllowWeekendBookings: updated.AllowWeekendBookings,
		MaxDogsPerSlot:       updated.MaxDogsPerSlot,
		AllowEveningSlot:     updated.AllowEveningSlot,
		UpdatedAt:            updated.UpdatedAt.Format(time.RFC3339),
	})
}
