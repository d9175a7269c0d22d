package get_settings

import (
	"net/http"
	"time"

	"github.com/caninecompadre/booking-service/internal/api/handlers"
	"github.com/caninecompadre/booking-service/internal/domain"
)

// SettingsResponse is the HTTP response model.
type SettingsResponse struct {
	AllowWeekendBookings bool   `json:"allowWeekendBookings"`
	MaxDogsPerSlot       int    `json:"maxDogsPerSlot"`
	AllowEveningSlot     bool   `json:"allowEveningSlot"`
	UpdatedAt            string `json:"updatedAt,omitempty"`
}

// FromSettings converts the settings to the HTTP payload.
func FromSettings(s *domain.Settings) *SettingsResponse {
	response := &SettingsResponse{
		AllowWeekendBookings: s.AllowWeekendBookings,
		MaxDogsPerSlot:       s.MaxDogsPerSlot,
		AllowEveningSlot:     s.AllowEveningSlot,
	}
	if !s.UpdatedAt.IsZero() {
		response.UpdatedAt = s.UpdatedAt.Format(time.RFC3339)
	}
	return response
}

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle GET /api/v1/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.Get(r.Context())
	if err != nil {
		h.logger.Error("GET /settings - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSettings(settings))
}
