package get_booking

import (
	"time"

	"github.com/caninecompadre/booking-service/internal/domain"
	"github.com/caninecompadre/booking-service/internal/service/bookings"
)

// DogView is one dog profile in the booking payload.
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

// GetBookingResponse is the HTTP response model.
type GetBookingResponse struct {
	ID                 int64     `json:"id"`
	CustomerName       string    `json:"customerName"`
	CustomerEmail      string    `json:"customerEmail"`
	CustomerPhone      string    `json:"customerPhone"`
	CustomerAddress    string    `json:"customerAddress"`
	CustomerPostcode   string    `json:"customerPostcode"`
	BookingDate        string    `json:"bookingDate"`
	TimeSlot           string    `json:"timeSlot"`
	DogCount           int       `json:"dogCount"`
	Status             string    `json:"status"`
	BatchID            *string   `json:"batchId,omitempty"`
	CancellationReason *string   `json:"cancellationReason,omitempty"`
	Dogs               []DogView `json:"dogs"`
	CreatedAt          string    `json:"createdAt"`
	UpdatedAt          string    `json:"updatedAt"`
}

// FromServiceResponse converts the service result to the HTTP payload.
func FromServiceResponse(resp *bookings.BookingResponse) *GetBookingResponse {
	b := resp.Booking

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

	return &GetBookingResponse{
		ID:                 b.ID,
		CustomerName:       b.Customer.Name,
		CustomerEmail:      b.Customer.Email,
		CustomerPhone:      b.Customer.Phone,
		CustomerAddress:    b.Customer.Address,
		CustomerPostcode:   b.Customer.Postcode,
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		TimeSlot:           string(b.TimeSlot),
		DogCount:           b.DogCount,
		Status:             string(b.Status),
		BatchID:            b.BatchID,
		CancellationReason: b.CancellationReason,
		Dogs:               dogs,
		CreatedAt:          b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          b.UpdatedAt.Format(time.RFC3339),
	}
}
