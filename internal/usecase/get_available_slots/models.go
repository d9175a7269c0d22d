package get_available_slots

import (
	"time"

	"github.com/caninecompadre/booking-service/internal/domain"
)

// Request asks for the availability projection.
// A zero FromDate means "starting tomorrow"; Days of 0 uses the default
// horizon; RequiredDogs of 0 means one dog.
type Request struct {
	FromDate     time.Time
	Days         int
	RequiredDogs int
}

// SlotAvailability is one open slot of one day.
type SlotAvailability struct {
	Slot           domain.Slot
	Name           string
	Display        string
	TotalSpots     int
	AvailableSpots int
}

// DayAvailability lists the open slots of one day. Days with no open
// slots are omitted from the projection entirely.
type DayAvailability struct {
	Date  time.Time
	Slots []SlotAvailability
}

// Response is the availability projection.
type Response struct {
	FromDate time.Time
	Days     int
	Dates    []DayAvailability
}
