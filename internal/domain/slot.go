package domain

import (
	"time"

	"github.com/caninecompadre/booking-service/pkg/types"
)

// Slot identifies one of the three daily group walk windows.
// The canonical value is the time range literal stored in the database.
type Slot string

const (
	SlotMorning   Slot = "09:30-11:30"
	SlotAfternoon Slot = "14:00-16:00"
	SlotEvening   Slot = "18:00-20:00"
)

// AllSlots lists the group walk slots in chronological order.
var AllSlots = []Slot{SlotMorning, SlotAfternoon, SlotEvening}

// slotNames maps the short name used in the API to the canonical slot.
var slotNames = map[string]Slot{
	"morning":   SlotMorning,
	"afternoon": SlotAfternoon,
	"evening":   SlotEvening,
}

// ParseSlot accepts either the canonical range literal ("09:30-11:30")
// or the short name ("morning") and returns the canonical slot.
func ParseSlot(s string) (Slot, bool) {
	switch Slot(s) {
	case SlotMorning, SlotAfternoon, SlotEvening:
		return Slot(s), true
	}
	if slot, ok := slotNames[s]; ok {
		return slot, true
	}
	return "", false
}

// IsValid returns true if the slot is one of the three known windows.
func (s Slot) IsValid() bool {
	switch s {
	case SlotMorning, SlotAfternoon, SlotEvening:
		return true
	}
	return false
}

// Name returns the short name used in the API ("morning", "afternoon", "evening").
func (s Slot) Name() string {
	switch s {
	case SlotMorning:
		return "morning"
	case SlotAfternoon:
		return "afternoon"
	case SlotEvening:
		return "evening"
	}
	return string(s)
}

// Display returns the customer-facing 12-hour form, e.g. "9:30 AM - 11:30 AM".
func (s Slot) Display() string {
	format := func(ts types.TimeString) string {
		t, err := time.Parse(TimeFormat, ts.String())
		if err != nil {
			return ts.String()
		}
		return t.Format("3:04 PM")
	}
	return format(s.StartTime()) + " - " + format(s.EndTime())
}

// StartTime returns the start of the slot window.
func (s Slot) StartTime() types.TimeString {
	return types.TimeString(string(s)[:5])
}

// EndTime returns the end of the slot window.
func (s Slot) EndTime() types.TimeString {
	return types.TimeString(string(s)[6:])
}

// StartAt returns the slot start as a wall-clock time on the given date.
func (s Slot) StartAt(date time.Time) time.Time {
	t, _ := s.StartTime().At(date)
	return t
}

// EndAt returns the slot end as a wall-clock time on the given date.
func (s Slot) EndAt(date time.Time) time.Time {
	t, _ := s.EndTime().At(date)
	return t
}

// AvailableSlot represents one slot of one day in the availability projection.
type AvailableSlot struct {
	Date           time.Time
	Slot           Slot
	AvailableSpots int
	TotalSpots     int
}

// IsFull returns true if the slot has no available spots.
func (s *AvailableSlot) IsFull() bool {
	return s.AvailableSpots <= 0
}

// IsPartiallyAvailable returns true if the slot has some but not all spots available.
func (s *AvailableSlot) IsPartiallyAvailable() bool {
	return s.AvailableSpots > 0 && s.AvailableSpots < s.TotalSpots
}

// OccupancyRate returns the occupancy rate as a percentage (0-100).
func (s *AvailableSlot) OccupancyRate() float64 {
	if s.TotalSpots == 0 {
		return 0
	}
	occupied := s.TotalSpots - s.AvailableSpots
	return float64(occupied) / float64(s.TotalSpots) * 100
}
