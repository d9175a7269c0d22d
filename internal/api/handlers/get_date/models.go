package get_date

import (
	"github.com/caninecompadre/booking-service/internal/domain"
	"github.com/caninecompadre/booking-service/internal/service/overrides"
)

// SlotRuleView is the per-slot portion of the override in the payload.
type SlotRuleView struct {
	Available bool `json:"available"`
	Capacity  int  `json:"capacity"`
}

// OverrideView is the stored override, present only when the date has one.
type OverrideView struct {
	Morning   SlotRuleView `json:"morning"`
	Afternoon SlotRuleView `json:"afternoon"`
	Evening   SlotRuleView `json:"evening"`
	Notes     *string      `json:"notes,omitempty"`
}

// BookingView is one booking taken for the date.
type BookingView struct {
	ID            int64  `json:"id"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	TimeSlot      string `json:"timeSlot"`
	DogCount      int    `json:"dogCount"`
	Status        string `json:"status"`
}

// GetDateResponse is the staff view of one calendar date.
type GetDateResponse struct {
	Date       string         `json:"date"`
	Override   *OverrideView  `json:"override,omitempty"`
	Capacities map[string]int `json:"capacities"`
	Bookings   []BookingView  `json:"bookings"`
}

// FromDateDetail converts the service result to the HTTP payload.
func FromDateDetail(detail *overrides.DateDetail) *GetDateResponse {
	capacities := make(map[string]int, len(detail.Capacities))
	for slot, capacity := range detail.Capacities {
		capacities[slot.Name()] = capacity
	}

	bookings := make([]BookingView, 0, len(detail.Bookings))
	for _, b := range detail.Bookings {
		bookings = append(bookings, BookingView{
			ID:            b.ID,
			CustomerName:  b.Customer.Name,
			CustomerEmail: b.Customer.Email,
			TimeSlot:      string(b.TimeSlot),
			DogCount:      b.DogCount,
			Status:        string(b.Status),
		})
	}

	response := &GetDateResponse{
		Date:       detail.Date.Format(domain.DateFormat),
		Capacities: capacities,
		Bookings:   bookings,
	}

	if detail.Override != nil {
		response.Override = &OverrideView{
			Morning:   SlotRuleView(detail.Override.Morning),
			Afternoon: SlotRuleView(detail.Override.Afternoon),
			Evening:   SlotRuleView(detail.Override.Evening),
			Notes:     detail.Override.Notes,
		}
	}

	return response
}
