package apply_date_override

import (
	"time"

	"github.com/caninecompadre/booking-service/internal/domain"
)

// SlotRule is the requested per-slot state of the override.
type SlotRule struct {
	Available bool
	Capacity  int
}

// Request replaces the override of one date.
type Request struct {
	Date      time.Time
	Morning   SlotRule
	Afternoon SlotRule
	Evening   SlotRule
	Notes     *string

	// Reason goes into the cancellation emails when the override closes
	// slots with confirmed bookings. Empty uses a default wording.
	Reason string
}

// Response reports the stored override and the cascade outcome.
type Response struct {
	Override       *domain.DateOverride
	ClosedSlots    []domain.Slot
	CancelledCount int
	NotifyFailures int
}

func (r *Request) toDomain() *domain.DateOverride {
	return &domain.DateOverride{
		Date:      r.Date,
		Morning:   domain.SlotRule(r.Morning),
		Afternoon: domain.SlotRule(r.Afternoon),
		Evening:   domain.SlotRule(r.Evening),
		Notes:     r.Notes,
	}
}
