package create_request

import (
	"time"

	"github.com/caninecompadre/booking-service/internal/domain"
	"github.com/caninecompadre/booking-service/internal/service/requests"
)

// DogRequest is one dog profile in the request payload.
type DogRequest struct {
	Name                string  `json:"name"`
	Breed               string  `json:"breed"`
	Age                 int     `json:"age"`
	Allergies           *string `json:"allergies,omitempty"`
	SpecialInstructions *string `json:"specialInstructions,omitempty"`
	GoodWithOtherDogs   bool    `json:"goodWithOtherDogs"`
	BehavioralNotes     *string `json:"behavioralNotes,omitempty"`
	VetName             string  `json:"vetName"`
	VetPhone            string  `json:"vetPhone"`
	VetAddress          string  `json:"vetAddress"`
}

// CreateRequestRequest is the HTTP request model.
type CreateRequestRequest struct {
	CustomerName     string `json:"customerName"`
	CustomerEmail    string `json:"customerEmail"`
	CustomerPhone    string `json:"customerPhone"`
	CustomerAddress  string `json:"customerAddress"`
	CustomerPostcode string `json:"customerPostcode"`

	PreferredDate     string       `json:"preferredDate"`
	PreferredTimeText string       `json:"preferredTime"`
	Reason            string       `json:"reason"`
	DogCount          int          `json:"dogCount"`
	Dogs              []DogRequest `json:"dogs"`
}

// CreateRequestResponse is the HTTP response model.
type CreateRequestResponse struct {
	ID            int64  `json:"id"`
	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`
	Status        string `json:"status"`
	DogCount      int    `json:"dogCount"`
	EmailSent     bool   `json:"emailSent"`
	CreatedAt     string `json:"createdAt"`
}

// ToServiceRequest converts the HTTP request, parsing the preferred date.
func (r *CreateRequestRequest) ToServiceRequest() (*requests.CreateRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.PreferredDate)
	if err != nil {
		return nil, err
	}

	dogs := make([]requests.DogProfile, 0, len(r.Dogs))
	for _, d := range r.Dogs {
		dogs = append(dogs, requests.DogProfile{
			Name:                d.Name,
			Breed:               d.Breed,
			Age:                 d.Age,
			Allergies:           d.Allergies,
			SpecialInstructions: d.SpecialInstructions,
			GoodWithOtherDogs:   d.GoodWithOtherDogs,
			BehavioralNotes:     d.BehavioralNotes,
			VetName:             d.VetName,
			VetPhone:            d.VetPhone,
			VetAddress:          d.VetAddress,
		})
	}

	return &requests.CreateRequest{
		CustomerName:      r.CustomerName,
		CustomerEmail:     r.CustomerEmail,
		CustomerPhone:     r.CustomerPhone,
		CustomerAddress:   r.CustomerAddress,
		CustomerPostcode:  r.CustomerPostcode,
		PreferredDate:     date,
		PreferredTimeText: r.PreferredTimeText,
		Reason:            r.Reason,
		DogCount:          r.DogCount,
		Dogs:              dogs,
	}, nil
}

// FromServiceResult converts the service result to the HTTP payload.
func FromServiceResult(result *requests.CreateResult) *CreateRequestResponse {
	req := result.Request
	return &CreateRequestResponse{
		ID:            req.ID,
		PreferredDate: req.PreferredDate.Format(domain.DateFormat),
		PreferredTime: req.PreferredTimeText,
		Status:        string(req.Status),
		DogCount:      req.DogCount,
		EmailSent:     result.EmailSent,
		CreatedAt:     req.CreatedAt.Format(time.RFC3339),
	}
}
