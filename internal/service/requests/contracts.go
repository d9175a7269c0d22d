package requests

import (
	"context"
	"time"

	"github.com/caninecompadre/booking-service/internal/domain"
)

// RequestRepository stores individual walk requests.
type RequestRepository interface {
	Create(ctx context.Context, req *domain.IndividualRequest) (*domain.IndividualRequest, error)
	GetByID(ctx context.Context, id int64) (*domain.IndividualRequest, error)
	List(ctx context.Context, filter domain.RequestsFilter) ([]*domain.IndividualRequest, error)
	SaveReview(ctx context.Context, req *domain.IndividualRequest) error
	UpdateStatus(ctx context.Context, id int64, status domain.RequestStatus) error
	SetCalendarEventID(ctx context.Context, id int64, eventID *string) error
}

// DogRepository stores dog profiles.
type DogRepository interface {
	CreateBatch(ctx context.Context, owner domain.DogOwner, dogs []*domain.Dog) error
	GetByOwner(ctx context.Context, owner domain.DogOwner) ([]*domain.Dog, error)
}

// CalendarClient publishes approved individual walks.
type CalendarClient interface {
	CreateIndividualWalkEvent(ctx context.Context, req *domain.IndividualRequest) (string, error)
	DeleteEvent(ctx context.Context, uid string) error
}

// Mailer sends request notifications.
type Mailer interface {
	SendRequestReceived(req *domain.IndividualRequest, dogs []*domain.Dog) error
	SendRequestDecision(req *domain.IndividualRequest, dogs []*domain.Dog) error
	SendAdminNewRequest(req *domain.IndividualRequest, dogs []*domain.Dog) error
}

// TransactionManager runs functions inside database transactions.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider returns the current time (for testing).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the minimal logging surface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
