package domain

import (
	"fmt"
	"time"
)

// SlotRule is the per-slot portion of a date override.
type SlotRule struct {
	Available bool
	Capacity  int
}

// DateOverride adjusts availability and capacity for a single calendar date.
// A date without an override uses the global settings unchanged.
type DateOverride struct {
	ID        int64
	Date      time.Time
	Morning   SlotRule
	Afternoon SlotRule
	Evening   SlotRule
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultOverride returns an override that changes nothing: every slot
// open at the given capacity.
func DefaultOverride(date time.Time, capacity int) DateOverride {
	rule := SlotRule{Available: true, Capacity: capacity}
	return DateOverride{
		Date:      date,
		Morning:   rule,
		Afternoon: rule,
		Evening:   rule,
	}
}

// Rule returns the rule for the given slot.
func (o *DateOverride) Rule(slot Slot) SlotRule {
	switch slot {
	case SlotMorning:
		return o.Morning
	case SlotAfternoon:
		return o.Afternoon
	case SlotEvening:
		return o.Evening
	}
	return SlotRule{}
}

// SetRule replaces the rule for the given slot.
func (o *DateOverride) SetRule(slot Slot, rule SlotRule) {
	switch slot {
	case SlotMorning:
		o.Morning = rule
	case SlotAfternoon:
		o.Afternoon = rule
	case SlotEvening:
		o.Evening = rule
	}
}

// Validate checks the override against business limits.
func (o *DateOverride) Validate() error {
	for _, slot := range AllSlots {
		rule := o.Rule(slot)
		if rule.Capacity < MinOverrideCapacity || rule.Capacity > MaxOverrideCapacity {
			return fmt.Errorf("%s capacity must be between %d and %d, got %d",
				slot.Name(), MinOverrideCapacity, MaxOverrideCapacity, rule.Capacity)
		}
	}
	if o.Notes != nil && len(*o.Notes) > MaxOverrideNotesLength {
		return fmt.Errorf("notes must not exceed %d characters", MaxOverrideNotesLength)
	}
	return nil
}

// ClosedSince returns the slots that were open under prev but are closed
// under o. A nil prev means the date previously had no override, so every
// slot counts as having been open. Confirmed bookings in the returned
// slots must be cancelled.
func (o *DateOverride) ClosedSince(prev *DateOverride) []Slot {
	var closed []Slot
	for _, slot := range AllSlots {
		wasOpen := prev == nil || prev.Rule(slot).Available
		if wasOpen && !o.Rule(slot).Available {
			closed = append(closed, slot)
		}
	}
	return closed
}

// OpenSlots returns the slots the override leaves available.
func (o *DateOverride) OpenSlots() []Slot {
	var open []Slot
	for _, slot := range AllSlots {
		if o.Rule(slot).Available {
			open = append(open, slot)
		}
	}
	return open
}
