package domain

import (
	"fmt"
	"time"
)

// Settings is the single global booking configuration row.
type Settings struct {
	AllowWeekendBookings bool
	MaxDogsPerSlot       int
	AllowEveningSlot     bool
	UpdatedAt            time.Time
}

// DefaultSettings returns the configuration a fresh system starts with.
func DefaultSettings() Settings {
	return Settings{
		AllowWeekendBookings: DefaultAllowWeekendBookings,
		MaxDogsPerSlot:       DefaultMaxDogsPerSlot,
		AllowEveningSlot:     DefaultAllowEveningSlot,
	}
}

// Validate checks the settings against business limits.
func (s Settings) Validate() error {
	if s.MaxDogsPerSlot < MinDogsPerSlotSetting || s.MaxDogsPerSlot > MaxDogsPerSlotSetting {
		return fmt.Errorf("max dogs per slot must be between %d and %d, got %d",
			MinDogsPerSlotSetting, MaxDogsPerSlotSetting, s.MaxDogsPerSlot)
	}
	return nil
}

// SlotEnabled returns true if the slot is offered at all under these settings.
// Only the evening slot can be switched off globally.
func (s Settings) SlotEnabled(slot Slot) bool {
	if slot == SlotEvening {
		return s.AllowEveningSlot
	}
	return true
}

// DateAllowed returns true if bookings may be taken on the given date.
func (s Settings) DateAllowed(date time.Time) bool {
	if s.AllowWeekendBookings {
		return true
	}
	return !IsWeekend(date)
}

// IsWeekend returns true for Saturday and Sunday.
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
