package create_booking

import (
	"time"

	"github.com/caninecompadre/booking-service/internal/domain"
	createBooking "github.com/caninecompadre/booking-service/internal/usecase/create_booking"
)

// DogRequest is one dog profile in the booking payload.
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

// CreateBookingRequest is the HTTP request model. Dates carries one or
// more walk dates sharing the slot and the dogs.
type CreateBookingRequest struct {
	CustomerName     string       `json:"customerName"`
	CustomerEmail    string       `json:"customerEmail"`
	CustomerPhone    string       `json:"customerPhone"`
	CustomerAddress  string       `json:"customerAddress"`
	CustomerPostcode string       `json:"customerPostcode"`
	Dates            []string     `json:"dates"`
	TimeSlot         string       `json:"timeSlot"`
	DogCount         int          `json:"dogCount"`
	Dogs             []DogRequest `json:"dogs"`
}

// BookingResultResponse is one created booking in the HTTP response.
type BookingResultResponse struct {
	ID             int64  `json:"id"`
	BookingDate    string `json:"bookingDate"`
	TimeSlot       string `json:"timeSlot"`
	Status         string `json:"status"`
	CalendarSynced bool   `json:"calendarSynced"`
}

// CreateBookingResponse is the HTTP response model.
type CreateBookingResponse struct {
	Bookings  []BookingResultResponse `json:"bookings"`
	BatchID   *string                 `json:"batchId,omitempty"`
	DogCount  int                     `json:"dogCount"`
	EmailSent bool                    `json:"emailSent"`
	CreatedAt string                  `json:"createdAt"`
}

// ToUseCaseRequest converts the HTTP request, parsing dates and the slot.
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	dates := make([]time.Time, 0, len(r.Dates))
	for _, raw := range r.Dates {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		dates = append(dates, date)
	}

	dogs := make([]createBooking.DogProfile, 0, len(r.Dogs))
	for _, d := range r.Dogs {
		dogs = append(dogs, createBooking.DogProfile{
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

	return &createBooking.Request{
		CustomerName:     r.CustomerName,
		CustomerEmail:    r.CustomerEmail,
		CustomerPhone:    r.CustomerPhone,
		CustomerAddress:  r.CustomerAddress,
		CustomerPostcode: r.CustomerPostcode,
		Dates:            dates,
		TimeSlot:         domain.Slot(r.TimeSlot),
		DogCount:         r.DogCount,
		Dogs:             dogs,
	}, nil
}

// FromUseCaseResponse converts the usecase response to the HTTP payload.
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	bookings := make([]BookingResultResponse, 0, len(resp.Bookings))
	for _, b := range resp.Bookings {
		bookings = append(bookings, BookingResultResponse{
			ID:             b.ID,
			BookingDate:    b.BookingDate.Format(domain.DateFormat),
			TimeSlot:       string(b.TimeSlot),
			Status:         b.Status,
			CalendarSynced: b.CalendarSynced,
		})
	}

	return &CreateBookingResponse{
		Bookings:  bookings,
		BatchID:   resp.BatchID,
		DogCount:  resp.DogCount,
		EmailSent: resp.EmailSent,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
