package types

import (
	"errors"
	"fmt"
	"time"
)

// timeFormat is the wire format for times of day (HH:MM, 24h).
const timeFormat = "15:04"

var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString is a time of day in "HH:MM" form. It compares and serializes as
// a plain string, which keeps it trivial to store and to embed in JSON.
type TimeString string

// NewTimeString builds a TimeString from the clock portion of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeFormat))
}

// NewTimeStringFromString validates and normalizes an "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeFormat, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return TimeString(t.Format(timeFormat)), nil
}

func (ts TimeString) String() string {
	return string(ts)
}

// IsZero reports whether the value is empty.
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// Validate checks the value parses as HH:MM.
func (ts TimeString) Validate() error {
	_, err := time.Parse(timeFormat, string(ts))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return nil
}

// Minutes returns the value as minutes since midnight.
func (ts TimeString) Minutes() (int, error) {
	t, err := time.Parse(timeFormat, string(ts))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return t.Hour()*60 + t.Minute(), nil
}

// AddMinutes returns the time shifted forward by m minutes. The result wraps
// around midnight, which callers never rely on for valid business hours.
func (ts TimeString) AddMinutes(m int) (TimeString, error) {
	t, err := time.Parse(timeFormat, string(ts))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return TimeString(t.Add(time.Duration(m) * time.Minute).Format(timeFormat)), nil
}

// IsBefore reports whether ts is strictly earlier in the day than other.
// Lexicographic comparison is correct for the fixed-width HH:MM format.
func (ts TimeString) IsBefore(other TimeString) bool {
	return string(ts) < string(other)
}

// IsAfter reports whether ts is strictly later in the day than other.
func (ts TimeString) IsAfter(other TimeString) bool {
	return string(ts) > string(other)
}

// At anchors the time of day onto the given date.
func (ts TimeString) At(date time.Time) (time.Time, error) {
	t, err := time.Parse(timeFormat, string(ts))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}
