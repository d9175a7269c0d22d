package domain

import (
	"fmt"
	"strings"
	"time"
)

// OwnerKind identifies which kind of record a dog belongs to.
type OwnerKind string

const (
	OwnerGroupBooking      OwnerKind = "group_booking"
	OwnerIndividualRequest OwnerKind = "individual_request"
)

// DogOwner ties a dog to exactly one booking or one individual request.
type DogOwner struct {
	Kind OwnerKind
	ID   int64
}

// GroupBookingOwner returns an owner reference for a group booking.
func GroupBookingOwner(bookingID int64) DogOwner {
	return DogOwner{Kind: OwnerGroupBooking, ID: bookingID}
}

// IndividualRequestOwner returns an owner reference for an individual request.
func IndividualRequestOwner(requestID int64) DogOwner {
	return DogOwner{Kind: OwnerIndividualRequest, ID: requestID}
}

// Dog is the per-dog profile attached to a booking or request.
// Vet contact details are mandatory for every dog we take out.
type Dog struct {
	ID    int64
	Owner DogOwner

	Name  string
	Breed string
	Age   int

	Allergies           *string
	SpecialInstructions *string
	GoodWithOtherDogs   bool
	BehavioralNotes     *string

	VetName    string
	VetPhone   string
	VetAddress string

	CreatedAt time.Time
}

// Validate checks the dog profile for required fields and limits.
func (d *Dog) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("dog name is required")
	}
	if strings.TrimSpace(d.Breed) == "" {
		return fmt.Errorf("dog breed is required")
	}
	if d.Age < MinDogAge || d.Age > MaxDogAge {
		return fmt.Errorf("dog age must be between %d and %d, got %d", MinDogAge, MaxDogAge, d.Age)
	}
	if strings.TrimSpace(d.VetName) == "" {
		return fmt.Errorf("vet name is required")
	}
	if strings.TrimSpace(d.VetPhone) == "" {
		return fmt.Errorf("vet phone is required")
	}
	if strings.TrimSpace(d.VetAddress) == "" {
		return fmt.Errorf("vet address is required")
	}
	return nil
}
