package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caninecompadre/booking-service/internal/domain"
	bookingRepo "github.com/caninecompadre/booking-service/internal/infra/storage/booking"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.GroupBooking

	// beforeUpdate runs right before Cancel or UpdateStatus apply,
	// standing in for a write that lands between read and update.
	beforeUpdate func()
}

func newFakeBookingRepo(bookings ...*domain.GroupBooking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: make(map[int64]*domain.GroupBooking)}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.GroupBooking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.GroupBooking, error) {
	var out []*domain.GroupBooking
	for _, b := range f.bookings {
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		if filter.Slot != nil && b.TimeSlot != *filter.Slot {
			continue
		}
		if filter.Email != nil && b.Customer.Email != *filter.Email {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByBatchID(_ context.Context, batchID string) ([]*domain.GroupBooking, error) {
	var out []*domain.GroupBooking
	for _, b := range f.bookings {
		if b.BatchID != nil && *b.BatchID == batchID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, reason string) error {
	if f.beforeUpdate != nil {
		f.beforeUpdate()
	}
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	if b.Status != domain.StatusConfirmed {
		return bookingRepo.ErrBookingNotUpdatable
	}
	b.Cancel(reason, time.Now())
	return nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	if f.beforeUpdate != nil {
		f.beforeUpdate()
	}
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	if b.Status != domain.StatusConfirmed {
		return bookingRepo.ErrBookingNotUpdatable
	}
	b.Status = status
	return nil
}

type fakeDogRepo struct {
	dogs map[domain.DogOwner][]*domain.Dog
}

func (f *fakeDogRepo) GetByOwner(_ context.Context, owner domain.DogOwner) ([]*domain.Dog, error) {
	return f.dogs[owner], nil
}

type fakeCalendar struct {
	fail    bool
	deleted []string
}

func (f *fakeCalendar) DeleteEvent(_ context.Context, uid string) error {
	if f.fail {
		return errors.New("calendar down")
	}
	f.deleted = append(f.deleted, uid)
	return nil
}

type fakeMailer struct {
	fail          bool
	cancellations int
}

func (f *fakeMailer) SendBookingCancellation(_ *domain.GroupBooking, _ []*domain.Dog, _ string) error {
	if f.fail {
		return errors.New("smtp down")
	}
	f.cancellations++
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func confirmedBooking(id int64) *domain.GroupBooking {
	eventID := "event-1"
	return &domain.GroupBooking{
		ID:              id,
		Customer:        domain.Customer{Name: "Jamie Carter", Email: "jamie@example.com"},
		BookingDate:     time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		TimeSlot:        domain.SlotMorning,
		DogCount:        2,
		Status:          domain.StatusConfirmed,
		CalendarEventID: &eventID,
	}
}

type fixture struct {
	service  *Service
	repo     *fakeBookingRepo
	calendar *fakeCalendar
	mailer   *fakeMailer
}

func newFixture(bookings ...*domain.GroupBooking) *fixture {
	f := &fixture{
		repo:     newFakeBookingRepo(bookings...),
		calendar: &fakeCalendar{},
		mailer:   &fakeMailer{},
	}
	f.service = NewService(f.repo, &fakeDogRepo{}, f.calendar, f.mailer, nopLogger{})
	return f
}

func TestBookings_Cancel(t *testing.T) {
	f := newFixture(confirmedBooking(1))

	result, err := f.service.Cancel(context.Background(), 1, "Customer asked to cancel")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCancelled, result.Booking.Status)
	assert.True(t, result.CalendarPurged)
	assert.True(t, result.EmailSent)
	assert.Equal(t, []string{"event-1"}, f.calendar.deleted)
	assert.Equal(t, domain.StatusCancelled, f.repo.bookings[1].Status)
}

func TestBookings_Cancel_RequiresReason(t *testing.T) {
	f := newFixture(confirmedBooking(1))

	_, err := f.service.Cancel(context.Background(), 1, "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBookings_Cancel_AlreadyCancelled(t *testing.T) {
	f := newFixture(confirmedBooking(1))

	_, err := f.service.Cancel(context.Background(), 1, "first")
	require.NoError(t, err)

	_, err = f.service.Cancel(context.Background(), 1, "second")
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestBookings_Cancel_SideEffectFailuresReported(t *testing.T) {
	f := newFixture(confirmedBooking(1))
	f.calendar.fail = true
	f.mailer.fail = true

	result, err := f.service.Cancel(context.Background(), 1, "Storm warning")
	require.NoError(t, err)

	// the cancellation stands, the failed side effects are reported
	assert.Equal(t, domain.StatusCancelled, result.Booking.Status)
	assert.False(t, result.CalendarPurged)
	assert.False(t, result.EmailSent)
}

func TestBookings_Complete(t *testing.T) {
	f := newFixture(confirmedBooking(1))

	booking, err := f.service.Complete(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, booking.Status)

	// a completed booking cannot be completed again or cancelled
	_, err = f.service.Complete(context.Background(), 1)
	assert.ErrorIs(t, err, ErrCannotComplete)

	_, err = f.service.Cancel(context.Background(), 1, "too late")
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestBookings_Cancel_ConcurrentCompleteWins(t *testing.T) {
	f := newFixture(confirmedBooking(1))
	f.repo.beforeUpdate = func() {
		f.repo.bookings[1].Status = domain.StatusCompleted
	}

	_, err := f.service.Cancel(context.Background(), 1, "Customer asked to cancel")

	assert.ErrorIs(t, err, ErrCannotCancel)
	assert.Equal(t, domain.StatusCompleted, f.repo.bookings[1].Status)
	assert.Empty(t, f.calendar.deleted)
	assert.Zero(t, f.mailer.cancellations)
}

func TestBookings_Complete_ConcurrentCancelWins(t *testing.T) {
	f := newFixture(confirmedBooking(1))
	f.repo.beforeUpdate = func() {
		f.repo.bookings[1].Cancel("walker unavailable", time.Now())
	}

	_, err := f.service.Complete(context.Background(), 1)

	assert.ErrorIs(t, err, ErrCannotComplete)
	assert.Equal(t, domain.StatusCancelled, f.repo.bookings[1].Status)
}

func TestBookings_GetByID_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.service.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestBookings_List_RejectsUnknownFilters(t *testing.T) {
	f := newFixture(confirmedBooking(1))

	badSlot := "night"
	_, err := f.service.List(context.Background(), &ListRequest{Slot: &badSlot})
	assert.ErrorIs(t, err, ErrInvalidInput)

	badStatus := "lost"
	_, err = f.service.List(context.Background(), &ListRequest{Status: &badStatus})
	assert.ErrorIs(t, err, ErrInvalidInput)

	slot := "morning"
	status := "confirmed"
	list, err := f.service.List(context.Background(), &ListRequest{Slot: &slot, Status: &status})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestBookings_GetByBatchID(t *testing.T) {
	batch := "0b7f4a1e"
	first := confirmedBooking(1)
	first.BatchID = &batch
	second := confirmedBooking(2)
	second.BatchID = &batch

	f := newFixture(first, second, confirmedBooking(3))

	list, err := f.service.GetByBatchID(context.Background(), batch)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = f.service.GetByBatchID(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
