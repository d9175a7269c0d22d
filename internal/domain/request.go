package domain

import "time"

// RequestStatus represents the status of an individual walk request
type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestApproved  RequestStatus = "approved"
	RequestRejected  RequestStatus = "rejected"
	RequestCompleted RequestStatus = "completed"
)

// IndividualRequest represents a request for a one-to-one walk outside
// the group slots. The preferred time is free text and only recorded;
// the confirmed time is set by staff on approval.
type IndividualRequest struct {
	ID       int64
	Customer Customer

	PreferredDate     time.Time
	PreferredTimeText string
	Reason            string
	DogCount          int
	Status            RequestStatus

	ConfirmedDate     *time.Time
	ConfirmedTimeText *string
	AdminResponse     *string
	CalendarEventID   *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPending returns true if the request is awaiting review.
func (r *IndividualRequest) IsPending() bool {
	return r.Status == RequestPending
}

// CanBeReviewed returns true if the request can still be approved or rejected.
func (r *IndividualRequest) CanBeReviewed() bool {
	return r.Status == RequestPending
}

// CanBeCompleted returns true if the request can be marked completed.
func (r *IndividualRequest) CanBeCompleted() bool {
	return r.Status == RequestApproved
}

// Approve moves the request to the approved state with the confirmed
// date and time chosen by staff.
func (r *IndividualRequest) Approve(date time.Time, timeText, response string) {
	r.Status = RequestApproved
	r.ConfirmedDate = &date
	r.ConfirmedTimeText = &timeText
	r.AdminResponse = &response
}

// Reject moves the request to the rejected state.
func (r *IndividualRequest) Reject(response string) {
	r.Status = RequestRejected
	r.AdminResponse = &response
}

// RequestsFilter narrows individual request list queries.
type RequestsFilter struct {
	Status *RequestStatus
	Email  *string
}
