package requests

import (
	"fmt"
	"strings"
	"time"

	"github.com/caninecompadre/booking-service/internal/domain"
)

func validateCreateRequest(req *CreateRequest, now time.Time) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.CustomerEmail) == "" {
		return fmt.Errorf("%w: customer email is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.CustomerPhone) == "" {
		return fmt.Errorf("%w: customer phone is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.CustomerAddress) == "" {
		return fmt.Errorf("%w: customer address is required", ErrInvalidInput)
	}

	if !domain.PostcodeServed(req.CustomerPostcode) {
		return ErrPostcodeNotServed
	}

	if req.PreferredDate.IsZero() {
		return fmt.Errorf("%w: preferred date is required", ErrInvalidInput)
	}
	if isDateInPast(req.PreferredDate, now) {
		return ErrPastDate
	}

	if strings.TrimSpace(req.PreferredTimeText) == "" {
		return fmt.Errorf("%w: preferred time is required", ErrInvalidInput)
	}
	if conflicts := domain.CheckPreferredTime(req.PreferredTimeText); len(conflicts) > 0 {
		return &RestrictedTimeError{Conflicts: conflicts}
	}

	if strings.TrimSpace(req.Reason) == "" {
		return fmt.Errorf("%w: reason for an individual walk is required", ErrInvalidInput)
	}

	if req.DogCount < domain.MinDogsPerBooking {
		return fmt.Errorf("%w: dog count must be at least %d", ErrInvalidInput, domain.MinDogsPerBooking)
	}
	if len(req.Dogs) != req.DogCount {
		return fmt.Errorf("%w: got %d profiles for %d dogs", ErrDogCountMismatch, len(req.Dogs), req.DogCount)
	}

	for i := range req.Dogs {
		d := req.Dogs[i].toDomain()
		if err := d.Validate(); err != nil {
			return fmt.Errorf("%w: dog %d: %v", ErrInvalidInput, i+1, err)
		}
	}

	return nil
}

func validateReviewRequest(req *ReviewRequest, now time.Time) error {
	if req.ID <= 0 {
		return fmt.Errorf("%w: request id is required", ErrInvalidInput)
	}

	if !req.Approve {
		return nil
	}

	if req.ConfirmedDate == nil || req.ConfirmedDate.IsZero() {
		return fmt.Errorf("%w: confirmed date is required for approval", ErrInvalidInput)
	}
	if isDateInPast(*req.ConfirmedDate, now) {
		return ErrPastDate
	}
	if req.ConfirmedTimeText == nil || strings.TrimSpace(*req.ConfirmedTimeText) == "" {
		return fmt.Errorf("%w: confirmed time is required for approval", ErrInvalidInput)
	}

	return nil
}

// isDateInPast reports whether the date is today or earlier, ignoring
// the time of day. Walks are booked for future dates only.
func isDateInPast(date, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	return !dateOnly.After(today)
}
