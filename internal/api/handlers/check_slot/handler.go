package check_slot

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/caninecompadre/booking-service/internal/api/handlers"
	"github.com/caninecompadre/booking-service/internal/domain"
	getAvailableSlots "github.com/caninecompadre/booking-service/internal/usecase/get_available_slots"
)

const (
	msgMissingParams = "date and slot query parameters are required"
	msgInvalidDate   = "invalid date, expected YYYY-MM-DD"
	msgInvalidSlot   = "unknown slot"
	msgInvalidDogs   = "invalid dogs parameter"
	msgDateNotOpen   = "date is not open for booking"
)

// CheckSlotResponse reports whether one slot of one date can take the
// requested dogs.
type CheckSlotResponse struct {
	Date           string `json:"date"`
	Slot           string `json:"slot"`
	Dogs           int    `json:"dogs"`
	Available      bool   `json:"available"`
	TotalSpots     int    `json:"totalSpots"`
	AvailableSpots int    `json:"availableSpots"`
}

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{useCase: useCase, logger: logger}
}

// Handle GET /api/v1/slots/check?date=YYYY-MM-DD&slot=morning&dogs=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateParam := r.URL.Query().Get("date")
	slotParam := r.URL.Query().Get("slot")
	if dateParam == "" || slotParam == "" {
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateParam)
	if err != nil {
		h.logger.Warn("GET /slots/check - invalid date=%q", dateParam)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	slot, ok := domain.ParseSlot(slotParam)
	if !ok {
		h.logger.Warn("GET /slots/check - invalid slot=%q", slotParam)
		handlers.RespondBadRequest(w, msgInvalidSlot)
		return
	}

	dogs := 1
	if dogsParam := r.URL.Query().Get("dogs"); dogsParam != "" {
		dogs, err = strconv.Atoi(dogsParam)
		if err != nil || dogs < 1 || dogs > domain.MaxDogsPerSlotSetting {
			h.logger.Warn("GET /slots/check - invalid dogs=%q", dogsParam)
			handlers.RespondBadRequest(w, msgInvalidDogs)
			return
		}
	}

	// Projected for one dog so the true spot counts come back; the
	// requested party size is compared against them below.
	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{FromDate: date, Days: 1, RequiredDogs: 1})
	if err != nil {
		if errors.Is(err, getAvailableSlots.ErrInvalidInput) {
			h.logger.Warn("GET /slots/check - date not bookable: %v", err)
			handlers.RespondBadRequest(w, msgDateNotOpen)
			return
		}
		h.logger.Error("GET /slots/check - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := CheckSlotResponse{
		Date: date.Format(domain.DateFormat),
		Slot: string(slot),
		Dogs: dogs,
	}
	for _, day := range result.Dates {
		for _, s := range day.Slots {
			if s.Slot == slot {
				response.Available = s.AvailableSpots >= dogs
				response.TotalSpots = s.TotalSpots
				response.AvailableSpots = s.AvailableSpots
			}
		}
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
