package create_booking

import (
	"time"

	"github.com/caninecompadre/booking-service/internal/domain"
)

// DogProfile describes one dog included in the booking.
type DogProfile struct {
	Name                string
	Breed               string
	Age                 int
	Allergies           *string
	SpecialInstructions *string
	GoodWithOtherDogs   bool
	BehavioralNotes     *string
	VetName             string
	VetPhone            string
	VetAddress          string
}

// Request is the input for reserving group walk spots. Dates holds one
// or more walk dates; all of them share the slot and the dogs.
type Request struct {
	CustomerName     string
	CustomerEmail    string
	CustomerPhone    string
	CustomerAddress  string
	CustomerPostcode string

	Dates    []time.Time
	TimeSlot domain.Slot
	DogCount int
	Dogs     []DogProfile
}

// BookingResult is one created booking in the response.
type BookingResult struct {
	ID             int64
	BookingDate    time.Time
	TimeSlot       domain.Slot
	Status         string
	CalendarSynced bool
}

// Response reports the created bookings and the outcome of the
// non-transactional side effects.
type Response struct {
	Bookings  []BookingResult
	BatchID   *string
	DogCount  int
	EmailSent bool
	CreatedAt time.Time
}

func (p DogProfile) toDomain() *domain.Dog {
	return &domain.Dog{
		Name:                p.Name,
		Breed:               p.Breed,
		Age:                 p.Age,
		Allergies:           p.Allergies,
		SpecialInstructions: p.SpecialInstructions,
		GoodWithOtherDogs:   p.GoodWithOtherDogs,
		BehavioralNotes:     p.BehavioralNotes,
		VetName:             p.VetName,
		VetPhone:            p.VetPhone,
		VetAddress:          p.VetAddress,
	}
}
