package list_requests

import (
	"time"

	"github.com/caninecompadre/booking-service/internal/domain"
)

// RequestView is one individual walk request in the list payload.
type RequestView struct {
	ID               int64   `json:"id"`
	CustomerName     string  `json:"customerName"`
	CustomerEmail    string  `json:"customerEmail"`
	CustomerPhone    string  `json:"customerPhone"`
	CustomerPostcode string  `json:"customerPostcode"`
	PreferredDate    string  `json:"preferredDate"`
	PreferredTime    string  `json:"preferredTime"`
	Reason           string  `json:"reason"`
	DogCount         int     `json:"dogCount"`
	Status           string  `json:"status"`
	ConfirmedDate    *string `json:"confirmedDate,omitempty"`
	ConfirmedTime    *string `json:"confirmedTime,omitempty"`
	CreatedAt        string  `json:"createdAt"`
}

// ListRequestsResponse is the HTTP response model.
type ListRequestsResponse struct {
	Requests []RequestView `json:"requests"`
	Total    int           `json:"total"`
}

// FromRequests converts the request list to the HTTP payload.
func FromRequests(list []*domain.IndividualRequest) *ListRequestsResponse {
	views := make([]RequestView, 0, len(list))
	for _, req := range list {
		view := RequestView{
			ID:               req.ID,
			CustomerName:     req.Customer.Name,
			CustomerEmail:    req.Customer.Email,
			CustomerPhone:    req.Customer.Phone,
			CustomerPostcode: req.Customer.Postcode,
			PreferredDate:    req.PreferredDate.Format(domain.DateFormat),
			PreferredTime:    req.PreferredTimeText,
			Reason:           req.Reason,
			DogCount:         req.DogCount,
			Status:           string(req.Status),
			ConfirmedTime:    req.ConfirmedTimeText,
			CreatedAt:        req.CreatedAt.Format(time.RFC3339),
		}
		if req.ConfirmedDate != nil {
			confirmed := req.ConfirmedDate.Format(domain.DateFormat)
			view.ConfirmedDate = &confirmed
		}
		views = append(views, view)
	}

	return &ListRequestsResponse{Requests: views, Total: len(views)}
}
