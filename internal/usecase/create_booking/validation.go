package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/caninecompadre/booking-service/internal/domain"
)

// validateRequest checks the parts of the request that need no database
// state. Date policy (weekend, capacity) is checked inside the transaction.
func validateRequest(req *Request) error {
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

	if len(req.Dates) == 0 {
		return fmt.Errorf("%w: at least one date is required", ErrInvalidInput)
	}
	seen := make(map[string]struct{}, len(req.Dates))
	for _, date := range req.Dates {
		if date.IsZero() {
			return fmt.Errorf("%w: date is required", ErrInvalidInput)
		}
		key := date.Format(domain.DateFormat)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: duplicate date %s", ErrInvalidInput, key)
		}
		seen[key] = struct{}{}
	}

	if !req.TimeSlot.IsValid() {
		return fmt.Errorf("%w: unknown time slot %q", ErrInvalidInput, req.TimeSlot)
	}

	if req.DogCount < domain.MinDogsPerBooking {
		return fmt.Errorf("%w: dog count must be at least %d", ErrInvalidInput, domain.MinDogsPerBooking)
	}
	if req.DogCount > domain.MaxDogsPerSlotSetting {
		return ErrTooManyDogs
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

// isDateInPast reports whether the date is today or earlier, ignoring
// the time of day. Walks are booked for future dates only.
func isDateInPast(date, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	return !dateOnly.After(today)
}
