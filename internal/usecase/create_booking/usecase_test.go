package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caninecompadre/booking-service/internal/domain"
	overrideRepo "github.com/caninecompadre/booking-service/internal/infra/storage/override"
)

// ── fakes ──

type fakeSettingsRepo struct {
	settings domain.Settings
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*domain.Settings, error) {
	s := f.settings
	return &s, nil
}

type fakeOverrideRepo struct {
	overrides map[string]*domain.DateOverride
}

func (f *fakeOverrideRepo) GetByDate(_ context.Context, date time.Time) (*domain.DateOverride, error) {
	if o, ok := f.overrides[date.Format(domain.DateFormat)]; ok {
		return o, nil
	}
	return nil, overrideRepo.ErrOverrideNotFound
}

type fakeBookingRepo struct {
	bookings []*domain.GroupBooking
	nextID   int64
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.GroupBooking) (*domain.GroupBooking, error) {
	f.nextID++
	b.ID = f.nextID
	b.CreatedAt = time.Now()
	f.bookings = append(f.bookings, b)
	return b, nil
}

func (f *fakeBookingRepo) GetConfirmedBySlot(_ context.Context, date time.Time, slot domain.Slot) ([]*domain.GroupBooking, error) {
	var out []*domain.GroupBooking
	for _, b := range f.bookings {
		if b.Status == domain.StatusConfirmed && b.TimeSlot == slot &&
			b.BookingDate.Format(domain.DateFormat) == date.Format(domain.DateFormat) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) SetCalendarEventID(_ context.Context, id int64, eventID *string) error {
	for _, b := range f.bookings {
		if b.ID == id {
			b.CalendarEventID = eventID
		}
	}
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

type fakeCalendar struct {
	fail   bool
	events int
}

func (f *fakeCalendar) CreateGroupWalkEvent(_ context.Context, b *domain.GroupBooking) (string, error) {
	if f.fail {
		return "", errors.New("calendar down")
	}
	f.events++
	return "event-1", nil
}

type fakeMailer struct {
	failCustomer  bool
	confirmations int
	adminNotices  int
}

func (f *fakeMailer) SendBookingConfirmation(_ []*domain.GroupBooking, _ []*domain.Dog) error {
	if f.failCustomer {
		return errors.New("smtp down")
	}
	f.confirmations++
	return nil
}

func (f *fakeMailer) SendAdminNewBooking(_ []*domain.GroupBooking, _ []*domain.Dog) error {
	f.adminNotices++
	return nil
}

// fakeTxManager runs the function directly and restores the booking fake
// on error, imitating a rollback.
type fakeTxManager struct {
	bookingRepo *fakeBookingRepo
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	savedBookings := len(f.bookingRepo.bookings)
	savedID := f.bookingRepo.nextID

	if err := fn(ctx); err != nil {
		f.bookingRepo.bookings = f.bookingRepo.bookings[:savedBookings]
		f.bookingRepo.nextID = savedID
		return err
	}
	return nil
}

// contendedTxManager imitates a serialization conflict: the first
// attempt's writes are discarded, a competing reservation commits, and
// the function runs again, the way the transaction manager retries a
// 40001 failure.
type contendedTxManager struct {
	bookingRepo *fakeBookingRepo
	commit      func()
	attempts    int
}

func (f *contendedTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	for {
		f.attempts++
		savedBookings := len(f.bookingRepo.bookings)
		savedID := f.bookingRepo.nextID

		err := fn(ctx)
		if f.commit != nil {
			f.bookingRepo.bookings = f.bookingRepo.bookings[:savedBookings]
			f.bookingRepo.nextID = savedID
			f.commit()
			f.commit = nil
			continue
		}
		if err != nil {
			f.bookingRepo.bookings = f.bookingRepo.bookings[:savedBookings]
			f.bookingRepo.nextID = savedID
			return err
		}
		return nil
	}
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

// ── helpers ──

var testNow = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC) // a Tuesday

func monday() time.Time  { return time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC) }
func tuesday() time.Time { return time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC) }
func sunday() time.Time  { return time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC) }

type fixture struct {
	useCase     *UseCase
	settings    *fakeSettingsRepo
	overrides   *fakeOverrideRepo
	bookingRepo *fakeBookingRepo
	dogRepo     *fakeDogRepo
	calendar    *fakeCalendar
	mailer      *fakeMailer
}

func newFixture() *fixture {
	f := &fixture{
		settings:    &fakeSettingsRepo{settings: domain.DefaultSettings()},
		overrides:   &fakeOverrideRepo{overrides: map[string]*domain.DateOverride{}},
		bookingRepo: &fakeBookingRepo{},
		dogRepo:     &fakeDogRepo{},
		calendar:    &fakeCalendar{},
		mailer:      &fakeMailer{},
	}
	f.useCase = NewUseCase(
		f.settings,
		f.overrides,
		f.bookingRepo,
		f.dogRepo,
		f.calendar,
		f.mailer,
		&fakeTxManager{bookingRepo: f.bookingRepo},
		nopLogger{},
	)
	f.useCase.timeProvider = fixedTime{now: testNow}
	return f
}

func dogProfiles(n int) []DogProfile {
	dogs := make([]DogProfile, 0, n)
	for i := 0; i < n; i++ {
		dogs = append(dogs, DogProfile{
			Name:       "Rex",
			Breed:      "Labrador",
			Age:        3,
			VetName:    "Barnstaple Vets",
			VetPhone:   "01271 000000",
			VetAddress: "1 High Street, Barnstaple",
		})
	}
	return dogs
}

func validRequest(dates []time.Time, dogCount int) *Request {
	return &Request{
		CustomerName:     "Jamie Carter",
		CustomerEmail:    "jamie@example.com",
		CustomerPhone:    "07700 900000",
		CustomerAddress:  "2 Mill Road",
		CustomerPostcode: "EX31 1AB",
		Dates:            dates,
		TimeSlot:         domain.SlotMorning,
		DogCount:         dogCount,
		Dogs:             dogProfiles(dogCount),
	}
}

// ── tests ──

func TestCreateBooking_Success(t *testing.T) {
	f := newFixture()

	resp, err := f.useCase.Execute(context.Background(), validRequest([]time.Time{monday()}, 2))
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)

	assert.Equal(t, "confirmed", resp.Bookings[0].Status)
	assert.True(t, resp.Bookings[0].CalendarSynced)
	assert.True(t, resp.EmailSent)
	assert.Nil(t, resp.BatchID)

	require.Len(t, f.bookingRepo.bookings, 1)
	assert.Equal(t, 2, f.bookingRepo.bookings[0].DogCount)
	assert.Len(t, f.dogRepo.batches[domain.GroupBookingOwner(resp.Bookings[0].ID)], 2)
	assert.Equal(t, 1, f.mailer.confirmations)
	assert.Equal(t, 1, f.mailer.adminNotices)
}

func TestCreateBooking_ExactFitThenFull(t *testing.T) {
	f := newFixture()

	// 3 of 4 spots already taken
	_, err := f.useCase.Execute(context.Background(), validRequest([]time.Time{monday()}, 3))
	require.NoError(t, err)

	// exact fit succeeds
	_, err = f.useCase.Execute(context.Background(), validRequest([]time.Time{monday()}, 1))
	require.NoError(t, err)

	// slot is now full
	_, err = f.useCase.Execute(context.Background(), validRequest([]time.Time{monday()}, 1))
	require.Error(t, err)
	require.ErrorIs(t, err, ErrNotEnoughSpace)

	var noSpace *NotEnoughSpaceError
	require.ErrorAs(t, err, &noSpace)
	assert.Equal(t, 0, noSpace.Available)
	assert.Equal(t, domain.SlotMorning, noSpace.Slot)
}

func TestCreateBooking_ReportsRemainingSpots(t *testing.T) {
	f := newFixture()

	_, err := f.useCase.Execute(context.Background(), validRequest([]time.Time{monday()}, 3))
	require.NoError(t, err)

	_, err = f.useCase.Execute(context.Background(), validRequest([]time.Time{monday()}, 2))
	var noSpace *NotEnoughSpaceError
	require.ErrorAs(t, err, &noSpace)
	assert.Equal(t, 1, noSpace.Available)
}

func TestCreateBooking_MultiDateSharesBatch(t *testing.T) {
	f := newFixture()

	resp, err := f.useCase.Execute(context.Background(),
		validRequest([]time.Time{monday(), tuesday()}, 2))
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 2)
	require.NotNil(t, resp.BatchID)

	for _, b := range f.bookingRepo.bookings {
		require.NotNil(t, b.BatchID)
		assert.Equal(t, *resp.BatchID, *b.BatchID)
	}
}

func TestCreateBooking_MultiDateAllOrNothing(t *testing.T) {
	f := newFixture()

	// fill Tuesday completely
	_, err := f.useCase.Execute(context.Background(), validRequest([]time.Time{tuesday()}, 4))
	require.NoError(t, err)

	before := len(f.bookingRepo.bookings)

	_, err = f.useCase.Execute(context.Background(),
		validRequest([]time.Time{monday(), tuesday()}, 1))
	require.ErrorIs(t, err, ErrNotEnoughSpace)

	// the Monday insert rolled back with the failed Tuesday one
	assert.Len(t, f.bookingRepo.bookings, before)
}

func TestCreateBooking_WeekendClosed(t *testing.T) {
	f := newFixture()
	f.settings.settings.AllowWeekendBookings = false

	_, err := f.useCase.Execute(context.Background(), validRequest([]time.Time{sunday()}, 1))
	assert.ErrorIs(t, err, ErrWeekendClosed)
}

func TestCreateBooking_WeekendAllowedWhenEnabled(t *testing.T) {
	f := newFixture()
	f.settings.settings.AllowWeekendBookings = true

	_, err := f.useCase.Execute(context.Background(), validRequest([]time.Time{sunday()}, 1))
	assert.NoError(t, err)
}

func TestCreateBooking_PastDate(t *testing.T) {
	f := newFixture()

	past := testNow.AddDate(0, 0, -1)
	_, err := f.useCase.Execute(context.Background(), validRequest([]time.Time{past}, 1))
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestCreateBooking_SameDayRejected(t *testing.T) {
	f := newFixture()

	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	_, err := f.useCase.Execute(context.Background(), validRequest([]time.Time{today}, 1))
	assert.ErrorIs(t, err, ErrPastDate)
	assert.Empty(t, f.bookingRepo.bookings)

	// the next day is bookable
	_, err = f.useCase.Execute(context.Background(), validRequest([]time.Time{today.AddDate(0, 0, 1)}, 1))
	assert.NoError(t, err)
}

func TestCreateBooking_ConcurrentReservationLoserSeesRemaining(t *testing.T) {
	f := newFixture()

	// a competing 3-dog reservation commits between the first attempt
	// and the retry
	tx := &contendedTxManager{bookingRepo: f.bookingRepo}
	tx.commit = func() {
		f.bookingRepo.nextID++
		f.bookingRepo.bookings = append(f.bookingRepo.bookings, &domain.GroupBooking{
			ID:          f.bookingRepo.nextID,
			BookingDate: monday(),
			TimeSlot:    domain.SlotMorning,
			DogCount:    3,
			Status:      domain.StatusConfirmed,
		})
	}
	f.useCase.txManager = tx

	_, err := f.useCase.Execute(context.Background(), validRequest([]time.Time{monday()}, 3))
	require.ErrorIs(t, err, ErrNotEnoughSpace)

	var noSpace *NotEnoughSpaceError
	require.ErrorAs(t, err, &noSpace)
	assert.Equal(t, 1, noSpace.Available)
	assert.Equal(t, 2, tx.attempts)

	// only the competing reservation survives
	require.Len(t, f.bookingRepo.bookings, 1)
	assert.Equal(t, 3, f.bookingRepo.bookings[0].DogCount)
}

func TestCreateBooking_SlotClosedByOverride(t *testing.T) {
	f := newFixture()

	override := domain.DefaultOverride(monday(), 4)
	override.Morning.Available = false
	f.overrides.overrides[monday().Format(domain.DateFormat)] = &override

	_, err := f.useCase.Execute(context.Background(), validRequest([]time.Time{monday()}, 1))
	assert.ErrorIs(t, err, ErrSlotClosed)
}

func TestCreateBooking_OverrideCapacityApplies(t *testing.T) {
	f := newFixture()

	override := domain.DefaultOverride(monday(), 4)
	override.Morning.Capacity = 2
	f.overrides.overrides[monday().Format(domain.DateFormat)] = &override

	_, err := f.useCase.Execute(context.Background(), validRequest([]time.Time{monday()}, 3))
	require.ErrorIs(t, err, ErrNotEnoughSpace)

	var noSpace *NotEnoughSpaceError
	require.ErrorAs(t, err, &noSpace)
	assert.Equal(t, 2, noSpace.Available)
}

func TestCreateBooking_TooManyDogs(t *testing.T) {
	f := newFixture()

	// above the hard limit fails before any database work
	_, err := f.useCase.Execute(context.Background(), validRequest([]time.Time{monday()}, 7))
	assert.ErrorIs(t, err, ErrTooManyDogs)

	// above the configured per-slot maximum fails inside the transaction
	_, err = f.useCase.Execute(context.Background(), validRequest([]time.Time{monday()}, 5))
	assert.ErrorIs(t, err, ErrTooManyDogs)
}

func TestCreateBooking_DogCountMismatch(t *testing.T) {
	f := newFixture()

	req := validRequest([]time.Time{monday()}, 2)
	req.Dogs = dogProfiles(1)

	_, err := f.useCase.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDogCountMismatch)
}

func TestCreateBooking_PostcodeNotServed(t *testing.T) {
	f := newFixture()

	req := validRequest([]time.Time{monday()}, 1)
	req.CustomerPostcode = "SW1A 1AA"

	_, err := f.useCase.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPostcodeNotServed)
}

func TestCreateBooking_DuplicateDates(t *testing.T) {
	f := newFixture()

	_, err := f.useCase.Execute(context.Background(),
		validRequest([]time.Time{monday(), monday()}, 1))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateBooking_CalendarFailureKeepsBooking(t *testing.T) {
	f := newFixture()
	f.calendar.fail = true

	resp, err := f.useCase.Execute(context.Background(), validRequest([]time.Time{monday()}, 1))
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)

	assert.False(t, resp.Bookings[0].CalendarSynced)
	assert.Len(t, f.bookingRepo.bookings, 1)
	assert.Nil(t, f.bookingRepo.bookings[0].CalendarEventID)
}

func TestCreateBooking_EmailFailureKeepsBooking(t *testing.T) {
	f := newFixture()
	f.mailer.failCustomer = true

	resp, err := f.useCase.Execute(context.Background(), validRequest([]time.Time{monday()}, 1))
	require.NoError(t, err)

	assert.False(t, resp.EmailSent)
	assert.Len(t, f.bookingRepo.bookings, 1)
}
