package domain

// ResolveCapacity computes the effective capacity of a slot on a date.
// Precedence: a disabled slot is always 0; an override wins over the
// global settings; without an override the global per-slot maximum applies.
// override may be nil when the date has no override.
func ResolveCapacity(settings Settings, override *DateOverride, slot Slot) int {
	if !settings.SlotEnabled(slot) {
		return 0
	}
	if override != nil {
		rule := override.Rule(slot)
		if !rule.Available {
			return 0
		}
		return rule.Capacity
	}
	return settings.MaxDogsPerSlot
}

// AvailableSpots returns capacity minus the committed dog count, floored at zero.
func AvailableSpots(capacity, committed int) int {
	spots := capacity - committed
	if spots < 0 {
		return 0
	}
	return spots
}
