package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSettings_Validate(t *testing.T) {
	s := DefaultSettings()
	assert.NoError(t, s.Validate())

	s.MaxDogsPerSlot = MinDogsPerSlotSetting - 1
	assert.Error(t, s.Validate())

	s.MaxDogsPerSlot = MaxDogsPerSlotSetting + 1
	assert.Error(t, s.Validate())

	s.MaxDogsPerSlot = MaxDogsPerSlotSetting
	assert.NoError(t, s.Validate())
}

func TestSettings_DateAllowed(t *testing.T) {
	s := DefaultSettings()
	s.AllowWeekendBookings = false

	saturday := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	assert.False(t, s.DateAllowed(saturday))
	assert.True(t, s.DateAllowed(monday))

	s.AllowWeekendBookings = true
	assert.True(t, s.DateAllowed(saturday))
}

func TestSettings_SlotEnabled(t *testing.T) {
	s := DefaultSettings()
	assert.True(t, s.SlotEnabled(SlotEvening))

	s.AllowEveningSlot = false
	assert.False(t, s.SlotEnabled(SlotEvening))
	assert.True(t, s.SlotEnabled(SlotMorning))
	assert.True(t, s.SlotEnabled(SlotAfternoon))
}
