package cancel_booking

import (
	"github.com/caninecompadre/booking-service/internal/domain"
	"github.com/caninecompadre/booking-service/internal/service/bookings"
)

// CancelBookingRequest is the HTTP request model.
type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

// CancelBookingResponse reports the cancelled booking and which side
// effects ran.
type CancelBookingResponse struct {
	ID             int64  `json:"id"`
	BookingDate    string `json:"bookingDate"`
	TimeSlot       string `json:"timeSlot"`
	Status         string `json:"status"`
	Reason         string `json:"reason"`
	CalendarPurged bool   `json:"calendarPurged"`
	EmailSent      bool   `json:"emailSent"`
}

// FromServiceResult converts the service result to the HTTP payload.
func FromServiceResult(result *bookings.CancelResult, reason string) *CancelBookingResponse {
	b := result.Booking
	return &CancelBookingResponse{
		ID:             b.ID,
		BookingDate:    b.BookingDate.Format(domain.DateFormat),
		TimeSlot:       string(b.TimeSlot),
		Status:         string(b.Status),
		Reason:         reason,
		CalendarPurged: result.CalendarPurged,
		EmailSent:      result.EmailSent,
	}
}
