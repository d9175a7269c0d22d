package health

import (
	"context"
	"net/http"
	"time"

	"github.com/caninecompadre/booking-service/internal/api/handlers"
)

const pingTimeout = 2 * time.Second

type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse is the HTTP response model.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

type Handler struct {
	db Pinger
}

func NewHandler(db Pinger) *Handler {
	return &Handler{db: db}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		handlers.RespondJSON(w, http.StatusServiceUnavailable, &HealthResponse{
			Status:   "unavailable",
			Database: "down",
		})
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &HealthResponse{
		Status:   "ok",
		Database: "up",
	})
}
