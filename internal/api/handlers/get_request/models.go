package get_request

import (
	"time"

	"github.com/caninecompadre/booking-service/internal/domain"
	"github.com/caninecompadre/booking-service/internal/service/requests"
)

// DogView is one dog profile in the request payload.
type DogView struct {
	ID                  int64   `json:"id"`
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

// GetRequestResponse is the HTTP response model.
type GetRequestResponse struct {
	ID               int64  `json:"id"`
	CustomerName     string `json:"customerName"`
	CustomerEmail    string `json:"customerEmail"`
	CustomerPhone    string `json:"customerPhone"`
	CustomerAddress  string `json:"customerAddress"`
	CustomerPostcode string `json:"customerPostcode"`

	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`
	Reason        string `json:"reason"`
	DogCount      int    `json:"dogCount"`
	Status        string `json:"status"`

	ConfirmedDate *string `json:"confirmedDate,omitempty"`
	ConfirmedTime *string `json:"confirmedTime,omitempty"`
	AdminResponse *string `json:"adminResponse,omitempty"`

	Dogs      []DogView `json:"dogs"`
	CreatedAt string    `json:"createdAt"`
	UpdatedAt string    `json:"updatedAt"`
}

// FromServiceResponse converts the service result to the HTTP payload.
func FromServiceResponse(resp *requests.RequestResponse) *GetRequestResponse {
	req := resp.Request

	dogs := make([]DogView, 0, len(resp.Dogs))
	for _, d := range resp.Dogs {
		dogs = append(dogs, DogView{
			ID:                  d.ID,
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

	out := &GetRequestResponse{
		ID:               req.ID,
		CustomerName:     req.Customer.Name,
		CustomerEmail:    req.Customer.Email,
		CustomerPhone:    req.Customer.Phone,
		CustomerAddress:  req.Customer.Address,
		CustomerPostcode: req.Customer.Postcode,
		PreferredDate:    req.PreferredDate.Format(domain.DateFormat),
		PreferredTime:    req.PreferredTimeText,
		Reason:           req.Reason,
		DogCount:         req.DogCount,
		Status:           string(req.Status),
		ConfirmedTime:    req.ConfirmedTimeText,
		AdminResponse:    req.AdminResponse,
		Dogs:             dogs,
		CreatedAt:        req.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        req.UpdatedAt.Format(time.RFC3339),
	}

	if req.ConfirmedDate != nil {
		confirmed := req.ConfirmedDate.Format(domain.DateFormat)
		out.ConfirmedDate = &confirmed
	}

	return out
}
