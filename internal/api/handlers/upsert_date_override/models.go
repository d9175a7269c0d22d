package upsert_date_override

import (
	"time"

	"github.com/caninecompadre/booking-service/internal/domain"
	applyOverride "github.com/caninecompadre/booking-service/internal/usecase/apply_date_override"
)

// SlotRuleRequest is the per-slot portion of the override payload.
type SlotRuleRequest struct {
	Available bool `json:"available"`
	Capacity  int  `json:"capacity"`
}

// UpsertOverrideRequest is the HTTP request model. Reason is included in
// the cancellation emails when closing a slot cancels bookings.
type UpsertOverrideRequest struct {
	Morning   SlotRuleRequest `json:"morning"`
	Afternoon SlotRuleRequest `json:"afternoon"`
	Evening   SlotRuleRequest `json:"evening"`
	Notes     *string         `json:"notes,omitempty"`
	Reason    string          `json:"reason,omitempty"`
}

// UpsertOverrideResponse reports the stored override and the cascade outcome.
type UpsertOverrideResponse struct {
	Date              string          `json:"date"`
	Morning           SlotRuleRequest `json:"morning"`
	Afternoon         SlotRuleRequest `json:"afternoon"`
	Evening           SlotRuleRequest `json:"evening"`
	Notes             *string         `json:"notes,omitempty"`
	ClosedSlots       []string        `json:"closedSlots"`
	CancelledBookings int             `json:"cancelledBookings"`
	NotifyFailures    int             `json:"notifyFailures"`
}

// ToUseCaseRequest converts the HTTP request for the given date.
func (r *UpsertOverrideRequest) ToUseCaseRequest(date time.Time) *applyOverride.Request {
	return &applyOverride.Request{
		Date:      date,
		Morning:   applyOverride.SlotRule(r.Morning),
		Afternoon: applyOverride.SlotRule(r.Afternoon),
		Evening:   applyOverride.SlotRule(r.Evening),
		Notes:     r.Notes,
		Reason:    r.Reason,
	}
}

// FromUseCaseResponse converts the usecase response to the HTTP payload.
func FromUseCaseResponse(resp *applyOverride.Response) *UpsertOverrideResponse {
	o := resp.Override

	closed := make([]string, 0, len(resp.ClosedSlots))
	for _, slot := range resp.ClosedSlots {
		closed = append(closed, slot.Name())
	}

	return &UpsertOverrideResponse{
		Date:              o.Date.Format(domain.DateFormat),
		Morning:           SlotRuleRequest(o.Morning),
		Afternoon:         SlotRuleRequest(o.Afternoon),
		Evening:           SlotRuleRequest(o.Evening),
		Notes:             o.Notes,
		ClosedSlots:       closed,
		CancelledBookings: resp.CancelledCount,
		NotifyFailures:    resp.NotifyFailures,
	}
}
