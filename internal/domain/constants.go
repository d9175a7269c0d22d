package domain

// Default configuration values
const (
	DefaultMaxDogsPerSlot       = 4
	DefaultAllowWeekendBookings = true
	DefaultAllowEveningSlot     = true
)

// Business validation constants
const (
	MinDogsPerSlotSetting = 1
	MaxDogsPerSlotSetting = 6

	MinOverrideCapacity = 0
	MaxOverrideCapacity = 6

	MinDogsPerBooking = 1

	MinDogAge = 0
	MaxDogAge = 30

	MaxCancellationReasonLength = 500
	MaxOverrideNotesLength      = 500

	// GroupWalkBufferMinutes pads each group slot on both sides when
	// deciding whether a requested individual-walk time collides with
	// group walks.
	GroupWalkBufferMinutes = 60
)

// Availability projection limits
const (
	DefaultProjectionDays = 30
	MaxProjectionDays     = 90
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// SettingsID is the primary key of the single booking_settings row.
const SettingsID = 1
