package requests

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrRequestNotFound is returned when the request does not exist
	ErrRequestNotFound = errors.New("request not found")

	// ErrPastDate is returned when the preferred date is in the past
	ErrPastDate = errors.New("preferred date is in the past")

	// ErrPostcodeNotServed is returned for addresses outside the covered districts
	ErrPostcodeNotServed = errors.New("postcode is outside our service area")

	// ErrRestrictedTime is returned when the preferred time collides with
	// the group walk windows
	ErrRestrictedTime = errors.New("preferred time falls within group walk hours")

	// ErrDogCountMismatch is returned when the dog profiles do not match
	// the declared dog count
	ErrDogCountMismatch = errors.New("dog profiles do not match dog count")

	// ErrCannotReview is returned when the request has already been reviewed
	ErrCannotReview = errors.New("request cannot be reviewed")

	// ErrCannotComplete is returned when the request is not in a completable state
	ErrCannotComplete = errors.New("request cannot be completed")

	// ErrInvalidInput is returned for malformed input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("requests service: internal error")
)

// RestrictedTimeError lists the group walk windows the preferred time
// collides with. errors.Is matches ErrRestrictedTime.
type RestrictedTimeError struct {
	Conflicts []string
}

func (e *RestrictedTimeError) Error() string {
	return fmt.Sprintf("preferred time falls within group walk hours (%s)", strings.Join(e.Conflicts, ", "))
}

func (e *RestrictedTimeError) Is(target error) bool {
	return target == ErrRestrictedTime
}
