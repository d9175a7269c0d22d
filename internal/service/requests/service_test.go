package requests

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caninecompadre/booking-service/internal/domain"
	requestRepo "github.com/caninecompadre/booking-service/internal/infra/storage/request"
	"github.com/caninecompadre/booking-service/pkg/ptr"
)

type fakeRequestRepo struct {
	requests map[int64]*domain.IndividualRequest
	nextID   int64
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[int64]*domain.IndividualRequest)}
}

func (f *fakeRequestRepo) Create(_ context.Context, req *domain.IndividualRequest) (*domain.IndividualRequest, error) {
	f.nextID++
	req.ID = f.nextID
	req.CreatedAt = time.Now()
	f.requests[req.ID] = req
	return req, nil
}

func (f *fakeRequestRepo) GetByID(_ context.Context, id int64) (*domain.IndividualRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return nil, requestRepo.ErrRequestNotFound
	}
	copied := *req
	return &copied, nil
}

func (f *fakeRequestRepo) List(_ context.Context, filter domain.RequestsFilter) ([]*domain.IndividualRequest, error) {
	var out []*domain.IndividualRequest
	for _, req := range f.requests {
		if filter.Status != nil && req.Status != *filter.Status {
			continue
		}
		if filter.Email != nil && req.Customer.Email != *filter.Email {
			continue
		}
		out = append(out, req)
	}
	return out, nil
}

func (f *fakeRequestRepo) SaveReview(_ context.Context, req *domain.IndividualRequest) error {
	stored, ok := f.requests[req.ID]
	if !ok {
		return requestRepo.ErrRequestNotFound
	}
	*stored = *req
	return nil
}

func (f *fakeRequestRepo) UpdateStatus(_ context.Context, id int64, status domain.RequestStatus) error {
	stored, ok := f.requests[id]
	if !ok {
		return requestRepo.ErrRequestNotFound
	}
	stored.Status = status
	return nil
}

func (f *fakeRequestRepo) SetCalendarEventID(_ context.Context, id int64, eventID *string) error {
	stored, ok := f.requests[id]
	if !ok {
		return requestRepo.ErrRequestNotFound
	}
	stored.CalendarEventID = eventID
	return nil
}

type fakeDogRepo struct {
	batches map[domain.DogOwner][]*domain.Dog
}

func (f *fakeDogRepo) CreateBatch(_ context.Context, owner domain.DogOwner, dogs []*domain.Dog) error {
	if f.batches == nil {
		f.batches = make(map[domain.DogOwner][]*domain.Dog)
	}
	f.batches[owner] = dogs
	return nil
}

func (f *fakeDogRepo) GetByOwner(_ context.Context, owner domain.DogOwner) ([]*domain.Dog, error) {
	return f.batches[owner], nil
}

type fakeCalendar struct {
	fail    bool
	created int
}

func (f *fakeCalendar) CreateIndividualWalkEvent(_ context.Context, _ *domain.IndividualRequest) (string, error) {
	if f.fail {
		return "", errors.New("calendar down")
	}
	f.created++
	return "event-1", nil
}

func (f *fakeCalendar) DeleteEvent(_ context.Context, _ string) error { return nil }

type fakeMailer struct {
	received  int
	decisions int
	admin     int
}

func (f *fakeMailer) SendRequestReceived(_ *domain.IndividualRequest, _ []*domain.Dog) error {
	f.received++
	return nil
}

func (f *fakeMailer) SendRequestDecision(_ *domain.IndividualRequest, _ []*domain.Dog) error {
	f.decisions++
	return nil
}

func (f *fakeMailer) SendAdminNewRequest(_ *domain.IndividualRequest, _ []*domain.Dog) error {
	f.admin++
	return nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

var testNow = time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

type fixture struct {
	service  *Service
	requests *fakeRequestRepo
	dogs     *fakeDogRepo
	calendar *fakeCalendar
	mailer   *fakeMailer
}

func newFixture() *fixture {
	f := &fixture{
		requests: newFakeRequestRepo(),
		dogs:     &fakeDogRepo{},
		calendar: &fakeCalendar{},
		mailer:   &fakeMailer{},
	}
	f.service = NewService(f.requests, f.dogs, f.calendar, f.mailer, passthroughTxManager{}, nopLogger{})
	f.service.timeProvider = fixedTime{now: testNow}
	return f
}

func validCreate() *CreateRequest {
	return &CreateRequest{
		CustomerName:      "Jamie Carter",
		CustomerEmail:     "jamie@example.com",
		CustomerPhone:     "07700 900000",
		CustomerAddress:   "2 Mill Road",
		CustomerPostcode:  "EX32 7AA",
		PreferredDate:     time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		PreferredTimeText: "Early morning would be ideal",
		Reason:            "Bella is nervous around other dogs",
		DogCount:          1,
		Dogs: []DogProfile{{
			Name:       "Bella",
			Breed:      "Collie",
			Age:        5,
			VetName:    "Barnstaple Vets",
			VetPhone:   "01271 000000",
			VetAddress: "1 High Street, Barnstaple",
		}},
	}
}

func (f *fixture) createPending(t *testing.T) int64 {
	t.Helper()
	result, err := f.service.Create(context.Background(), validCreate())
	require.NoError(t, err)
	return result.Request.ID
}

func TestRequests_Create(t *testing.T) {
	f := newFixture()

	result, err := f.service.Create(context.Background(), validCreate())
	require.NoError(t, err)

	assert.Equal(t, domain.RequestPending, result.Request.Status)
	assert.True(t, result.EmailSent)
	assert.Equal(t, 1, f.mailer.received)
	assert.Equal(t, 1, f.mailer.admin)
	assert.Len(t, f.dogs.batches[domain.IndividualRequestOwner(result.Request.ID)], 1)
}

func TestRequests_Create_RestrictedTime(t *testing.T) {
	f := newFixture()

	req := validCreate()
	req.PreferredTimeText = "10:00 AM"

	_, err := f.service.Create(context.Background(), req)
	require.ErrorIs(t, err, ErrRestrictedTime)

	var restricted *RestrictedTimeError
	require.ErrorAs(t, err, &restricted)
	assert.Equal(t, []string{"08:30-12:30"}, restricted.Conflicts)
	assert.Empty(t, f.requests.requests)
}

func TestRequests_Create_PostcodeNotServed(t *testing.T) {
	f := newFixture()

	req := validCreate()
	req.CustomerPostcode = "PL1 1AA"

	_, err := f.service.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrPostcodeNotServed)
}

func TestRequests_Create_PastDate(t *testing.T) {
	f := newFixture()

	req := validCreate()
	req.PreferredDate = testNow.AddDate(0, 0, -1)

	_, err := f.service.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestRequests_Create_SameDayRejected(t *testing.T) {
	f := newFixture()

	req := validCreate()
	req.PreferredDate = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	_, err := f.service.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestRequests_Review_SameDayConfirmationRejected(t *testing.T) {
	f := newFixture()
	id := f.createPending(t)

	confirmed := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	_, err := f.service.Review(context.Background(), &ReviewRequest{
		ID:                id,
		Approve:           true,
		ConfirmedDate:     &confirmed,
		ConfirmedTimeText: ptr.Ptr("7:30 AM"),
	})
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestRequests_Review_Approve(t *testing.T) {
	f := newFixture()
	id := f.createPending(t)

	confirmed := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	result, err := f.service.Review(context.Background(), &ReviewRequest{
		ID:                id,
		Approve:           true,
		ConfirmedDate:     &confirmed,
		ConfirmedTimeText: ptr.Ptr("7:30 AM"),
		AdminResponse:     "See you then",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.RequestApproved, result.Request.Status)
	assert.True(t, result.CalendarSynced)
	assert.True(t, result.EmailSent)
	assert.Equal(t, 1, f.mailer.decisions)

	stored := f.requests.requests[id]
	assert.Equal(t, domain.RequestApproved, stored.Status)
	require.NotNil(t, stored.CalendarEventID)
}

func TestRequests_Review_Reject(t *testing.T) {
	f := newFixture()
	id := f.createPending(t)

	result, err := f.service.Review(context.Background(), &ReviewRequest{
		ID:            id,
		Approve:       false,
		AdminResponse: "Fully booked that week",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.RequestRejected, result.Request.Status)
	assert.False(t, result.CalendarSynced)
	assert.Zero(t, f.calendar.created)
}

func TestRequests_Review_AlreadyReviewed(t *testing.T) {
	f := newFixture()
	id := f.createPending(t)

	_, err := f.service.Review(context.Background(), &ReviewRequest{ID: id, AdminResponse: "no"})
	require.NoError(t, err)

	_, err = f.service.Review(context.Background(), &ReviewRequest{ID: id, AdminResponse: "no"})
	assert.ErrorIs(t, err, ErrCannotReview)
}

func TestRequests_Review_ApprovalNeedsConfirmedSchedule(t *testing.T) {
	f := newFixture()
	id := f.createPending(t)

	_, err := f.service.Review(context.Background(), &ReviewRequest{ID: id, Approve: true})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRequests_Review_CalendarFailureKeepsApproval(t *testing.T) {
	f := newFixture()
	f.calendar.fail = true
	id := f.createPending(t)

	confirmed := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	result, err := f.service.Review(context.Background(), &ReviewRequest{
		ID:                id,
		Approve:           true,
		ConfirmedDate:     &confirmed,
		ConfirmedTimeText: ptr.Ptr("7:30 AM"),
	})
	require.NoError(t, err)

	assert.False(t, result.CalendarSynced)
	assert.Equal(t, domain.RequestApproved, f.requests.requests[id].Status)
}

func TestRequests_Complete(t *testing.T) {
	f := newFixture()
	id := f.createPending(t)

	// pending requests cannot be completed
	_, err := f.service.Complete(context.Background(), id)
	require.ErrorIs(t, err, ErrCannotComplete)

	confirmed := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	_, err = f.service.Review(context.Background(), &ReviewRequest{
		ID:                id,
		Approve:           true,
		ConfirmedDate:     &confirmed,
		ConfirmedTimeText: ptr.Ptr("7:30 AM"),
	})
	require.NoError(t, err)

	request, err := f.service.Complete(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestCompleted, request.Status)
}

func TestRequests_GetByID_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.service.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestRequests_List_FilterByStatus(t *testing.T) {
	f := newFixture()
	f.createPending(t)
	id := f.createPending(t)

	_, err := f.service.Review(context.Background(), &ReviewRequest{ID: id, AdminResponse: "no"})
	require.NoError(t, err)

	pending := "pending"
	list, err := f.service.List(context.Background(), &ListRequest{Status: &pending})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.RequestPending, list[0].Status)

	bogus := "bogus"
	_, err = f.service.List(context.Background(), &ListRequest{Status: &bogus})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
