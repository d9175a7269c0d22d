package requests

import (
	"time"

	"github.com/caninecompadre/booking-service/internal/domain"
)

// DogProfile describes one dog included in the request.
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

// CreateRequest is the input for submitting an individual walk request.
type CreateRequest struct {
	CustomerName     string
	CustomerEmail    string
	CustomerPhone    string
	CustomerAddress  string
	CustomerPostcode string

	PreferredDate     time.Time
	PreferredTimeText string
	Reason            string
	DogCount          int
	Dogs              []DogProfile
}

// CreateResult reports the stored request and its notification outcome.
type CreateResult struct {
	Request   *domain.IndividualRequest
	Dogs      []*domain.Dog
	EmailSent bool
}

// ReviewRequest is a staff decision on a pending request.
type ReviewRequest struct {
	ID      int64
	Approve bool

	// Required when approving
	ConfirmedDate     *time.Time
	ConfirmedTimeText *string

	AdminResponse string
}

// ReviewResult reports the reviewed request and its side-effect outcome.
type ReviewResult struct {
	Request        *domain.IndividualRequest
	CalendarSynced bool
	EmailSent      bool
}

// RequestResponse is a request with its dogs attached.
type RequestResponse struct {
	Request *domain.IndividualRequest
	Dogs    []*domain.Dog
}

// ListRequest narrows the request list.
type ListRequest struct {
	Status *string
	Email  *string
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

func (r *ListRequest) toDomainFilter() (domain.RequestsFilter, error) {
	filter := domain.RequestsFilter{Email: r.Email}

	if r.Status != nil {
		status := domain.RequestStatus(*r.Status)
		switch status {
		case domain.RequestPending, domain.RequestApproved, domain.RequestRejected, domain.RequestCompleted:
			filter.Status = &status
		default:
			return filter, ErrInvalidInput
		}
	}

	return filter, nil
}
