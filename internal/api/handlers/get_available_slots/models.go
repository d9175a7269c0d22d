package get_available_slots

import (
	"github.com/caninecompadre/booking-service/internal/domain"
	getAvailableSlots "github.com/caninecompadre/booking-service/internal/usecase/get_available_slots"
)

// SlotResponse is one open slot of one day.
type SlotResponse struct {
	Slot           string `json:"slot"`
	Name           string `json:"name"`
	Display        string `json:"display"`
	TotalSpots     int    `json:"totalSpots"`
	AvailableSpots int    `json:"availableSpots"`
}

// DayResponse lists the open slots of one day.
type DayResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// AvailableSlotsResponse is the projection payload.
type AvailableSlotsResponse struct {
	FromDate string        `json:"fromDate"`
	Days     int           `json:"days"`
	Dates    []DayResponse `json:"dates"`
}

// FromUseCaseResponse converts the usecase response to the HTTP payload.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	dates := make([]DayResponse, 0, len(resp.Dates))
	for _, day := range resp.Dates {
		slots := make([]SlotResponse, 0, len(day.Slots))
		for _, slot := range day.Slots {
			slots = append(slots, SlotResponse{
				Slot:           string(slot.Slot),
				Name:           slot.Name,
				Display:        slot.Display,
				TotalSpots:     slot.TotalSpots,
				AvailableSpots: slot.AvailableSpots,
			})
		}
		dates = append(dates, DayResponse{
			Date:  day.Date.Format(domain.DateFormat),
			Slots: slots,
		})
	}

	return &AvailableSlotsResponse{
		FromDate: resp.FromDate.Format(domain.DateFormat),
		Days:     resp.Days,
		Dates:    dates,
	}
}
