package review_request

import (
	"time"

	"github.com/caninecompadre/booking-service/internal/domain"
	"github.com/caninecompadre/booking-service/internal/service/requests"
)

// ReviewRequestRequest is the HTTP request model. ConfirmedDate and
// ConfirmedTime are required when approving.
type ReviewRequestRequest struct {
	Approve       bool    `json:"approve"`
	ConfirmedDate *string `json:"confirmedDate,omitempty"`
	ConfirmedTime *string `json:"confirmedTime,omitempty"`
	AdminResponse string  `json:"adminResponse"`
}

// ReviewRequestResponse is the HTTP response model.
type ReviewRequestResponse struct {
	ID             int64   `json:"id"`
	Status         string  `json:"status"`
	ConfirmedDate  *string `json:"confirmedDate,omitempty"`
	ConfirmedTime  *string `json:"confirmedTime,omitempty"`
	AdminResponse  *string `json:"adminResponse,omitempty"`
	CalendarSynced bool    `json:"calendarSynced"`
	EmailSent      bool    `json:"emailSent"`
}

// ToServiceRequest converts the HTTP request, parsing the confirmed date
// when present.
func (r *ReviewRequestRequest) ToServiceRequest(id int64) (*requests.ReviewRequest, error) {
	req := &requests.ReviewRequest{
		ID:                id,
		Approve:           r.Approve,
		ConfirmedTimeText: r.ConfirmedTime,
		AdminResponse:     r.AdminResponse,
	}

	if r.ConfirmedDate != nil {
		date, err := time.Parse(domain.DateFormat, *r.ConfirmedDate)
		if err != nil {
			return nil, err
		}
		req.ConfirmedDate = &date
	}

	return req, nil
}

// FromServiceResult converts the service result to the HTTP payload.
func FromServiceResult(result *requests.ReviewResult) *ReviewRequestResponse {
	req := result.Request

	out := &ReviewRequestResponse{
		ID:             req.ID,
		Status:         string(req.Status),
		ConfirmedTime:  req.ConfirmedTimeText,
		AdminResponse:  req.AdminResponse,
		CalendarSynced: result.CalendarSynced,
		EmailSent:      result.EmailSent,
	}

	if req.ConfirmedDate != nil {
		confirmed := req.ConfirmedDate.Format(domain.DateFormat)
		out.ConfirmedDate = &confirmed
	}

	return out
}
