package create_booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/caninecompadre/booking-service/internal/domain"
)

var (
	// ErrInvalidInput is returned for malformed input data
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrPastDate is returned when a requested date is in the past
	ErrPastDate = errors.New("create_booking: date is in the past")

	// ErrWeekendClosed is returned when weekend bookings are disabled
	ErrWeekendClosed = errors.New("create_booking: weekend bookings are not available")

	// ErrSlotClosed is returned when the slot is switched off for the date
	ErrSlotClosed = errors.New("create_booking: slot is not available on this date")

	// ErrPostcodeNotServed is returned for pickup addresses outside the
	// covered districts
	ErrPostcodeNotServed = errors.New("create_booking: postcode is outside our service area")

	// ErrTooManyDogs is returned when the dog count exceeds the slot capacity limit
	ErrTooManyDogs = errors.New("create_booking: too many dogs for one booking")

	// ErrDogCountMismatch is returned when the dog profiles do not match
	// the declared dog count
	ErrDogCountMismatch = errors.New("create_booking: dog profiles do not match dog count")

	// ErrNotEnoughSpace is returned when the slot cannot take the requested dogs
	ErrNotEnoughSpace = errors.New("create_booking: not enough space in slot")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("create_booking: internal error")
)

// NotEnoughSpaceError reports which date and slot rejected the booking
// and how many spots were still free. errors.Is matches ErrNotEnoughSpace.
type NotEnoughSpaceError struct {
	Date      time.Time
	Slot      domain.Slot
	Available int
}

func (e *NotEnoughSpaceError) Error() string {
	return fmt.Sprintf("create_booking: not enough space in slot %s on %s: %d spots left",
		e.Slot, e.Date.Format(domain.DateFormat), e.Available)
}

func (e *NotEnoughSpaceError) Is(target error) bool {
	return target == ErrNotEnoughSpace
}
