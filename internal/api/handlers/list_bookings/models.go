package list_bookings

import (
	"time"

	"github.com/caninecompadre/booking-service/internal/domain"
)

// BookingView is one booking in the list payload. Dog profiles are not
// expanded here; the single booking endpoint carries them.
type BookingView struct {
	ID                 int64   `json:"id"`
	CustomerName       string  `json:"customerName"`
	CustomerEmail      string  `json:"customerEmail"`
	CustomerPhone      string  `json:"customerPhone"`
	CustomerPostcode   string  `json:"customerPostcode"`
	BookingDate        string  `json:"bookingDate"`
	TimeSlot           string  `json:"timeSlot"`
	DogCount           int     `json:"dogCount"`
	Status             string  `json:"status"`
	BatchID            *string `json:"batchId,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CreatedAt          string  `json:"createdAt"`
}

// ListBookingsResponse is the HTTP response model.
type ListBookingsResponse struct {
	Bookings []BookingView `json:"bookings"`
	Total    int           `json:"total"`
}

// FromBookings converts the booking list to the HTTP payload.
func FromBookings(list []*domain.GroupBooking) *ListBookingsResponse {
	views := make([]BookingView, 0, len(list))
	for _, b := range list {
		views = append(views, BookingView{
			ID:                 b.ID,
			CustomerName:       b.Customer.Name,
			CustomerEmail:      b.Customer.Email,
			CustomerPhone:      b.Customer.Phone,
			CustomerPostcode:   b.Customer.Postcode,
			BookingDate:        b.BookingDate.Format(domain.DateFormat),
			TimeSlot:           string(b.TimeSlot),
			DogCount:           b.DogCount,
			Status:             string(b.Status),
			BatchID:            b.BatchID,
			CancellationReason: b.CancellationReason,
			CreatedAt:          b.CreatedAt.Format(time.RFC3339),
		})
	}

	return &ListBookingsResponse{Bookings: views, Total: len(views)}
}
