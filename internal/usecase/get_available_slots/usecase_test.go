package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caninecompadre/booking-service/internal/domain"
)

type fakeSettingsRepo struct {
	settings domain.Settings
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*domain.Settings, error) {
	s := f.settings
	return &s, nil
}

type fakeOverrideRepo struct {
	overrides []*domain.DateOverride
}

func (f *fakeOverrideRepo) GetByDateRange(_ context.Context, from, to time.Time) ([]*domain.DateOverride, error) {
	var out []*domain.DateOverride
	for _, o := range f.overrides {
		if !o.Date.Before(from) && !o.Date.After(to) {
			out = append(out, o)
		}
	}
	return out, nil
}

type fakeBookingRepo struct {
	committed map[time.Time]map[domain.Slot]int
}

func (f *fakeBookingRepo) CountCommittedDogs(_ context.Context, _, _ time.Time) (map[time.Time]map[domain.Slot]int, error) {
	return f.committed, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

// Tuesday 2026-09-01
var testNow = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

// Monday 2026-09-07
var projectionStart = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

func newUseCase(settings domain.Settings, overrides []*domain.DateOverride, committed map[time.Time]map[domain.Slot]int) *UseCase {
	uc := NewUseCase(
		&fakeSettingsRepo{settings: settings},
		&fakeOverrideRepo{overrides: overrides},
		&fakeBookingRepo{committed: committed},
		nopLogger{},
	)
	uc.timeProvider = fixedTime{now: testNow}
	return uc
}

func TestGetAvailableSlots_FreshSystem(t *testing.T) {
	uc := newUseCase(domain.DefaultSettings(), nil, nil)

	resp, err := uc.Execute(context.Background(), &Request{FromDate: projectionStart, Days: 7})
	require.NoError(t, err)
	require.Len(t, resp.Dates, 7)

	for _, day := range resp.Dates {
		require.Len(t, day.Slots, 3)
		for _, slot := range day.Slots {
			assert.Equal(t, domain.DefaultMaxDogsPerSlot, slot.TotalSpots)
			assert.Equal(t, domain.DefaultMaxDogsPerSlot, slot.AvailableSpots)
		}
	}
}

func TestGetAvailableSlots_WeekendsOmitted(t *testing.T) {
	settings := domain.DefaultSettings()
	settings.AllowWeekendBookings = false

	uc := newUseCase(settings, nil, nil)

	resp, err := uc.Execute(context.Background(), &Request{FromDate: projectionStart, Days: 7})
	require.NoError(t, err)
	// Monday through Friday only
	require.Len(t, resp.Dates, 5)
	for _, day := range resp.Dates {
		assert.False(t, domain.IsWeekend(day.Date))
	}
}

func TestGetAvailableSlots_EveningDisabled(t *testing.T) {
	settings := domain.DefaultSettings()
	settings.AllowEveningSlot = false

	uc := newUseCase(settings, nil, nil)

	resp, err := uc.Execute(context.Background(), &Request{FromDate: projectionStart, Days: 1})
	require.NoError(t, err)
	require.Len(t, resp.Dates, 1)
	require.Len(t, resp.Dates[0].Slots, 2)
	for _, slot := range resp.Dates[0].Slots {
		assert.NotEqual(t, domain.SlotEvening, slot.Slot)
	}
}

func TestGetAvailableSlots_CommittedDogsReduceSpots(t *testing.T) {
	committed := map[time.Time]map[domain.Slot]int{
		projectionStart: {domain.SlotMorning: 3},
	}
	uc := newUseCase(domain.DefaultSettings(), nil, committed)

	resp, err := uc.Execute(context.Background(), &Request{FromDate: projectionStart, Days: 1})
	require.NoError(t, err)
	require.Len(t, resp.Dates, 1)

	for _, slot := range resp.Dates[0].Slots {
		if slot.Slot == domain.SlotMorning {
			assert.Equal(t, 1, slot.AvailableSpots)
		} else {
			assert.Equal(t, 4, slot.AvailableSpots)
		}
	}
}

func TestGetAvailableSlots_FullSlotOmitted(t *testing.T) {
	committed := map[time.Time]map[domain.Slot]int{
		projectionStart: {domain.SlotMorning: 4},
	}
	uc := newUseCase(domain.DefaultSettings(), nil, committed)

	resp, err := uc.Execute(context.Background(), &Request{FromDate: projectionStart, Days: 1})
	require.NoError(t, err)
	require.Len(t, resp.Dates[0].Slots, 2)

	for _, slot := range resp.Dates[0].Slots {
		assert.NotEqual(t, domain.SlotMorning, slot.Slot)
	}
}

func TestGetAvailableSlots_RequiredDogsFilter(t *testing.T) {
	committed := map[time.Time]map[domain.Slot]int{
		projectionStart: {domain.SlotMorning: 2},
	}
	uc := newUseCase(domain.DefaultSettings(), nil, committed)

	// two spots left: a two-dog party still fits
	resp, err := uc.Execute(context.Background(), &Request{FromDate: projectionStart, Days: 1, RequiredDogs: 2})
	require.NoError(t, err)
	require.Len(t, resp.Dates[0].Slots, 3)

	// a three-dog party does not
	resp, err = uc.Execute(context.Background(), &Request{FromDate: projectionStart, Days: 1, RequiredDogs: 3})
	require.NoError(t, err)
	require.Len(t, resp.Dates[0].Slots, 2)
	for _, slot := range resp.Dates[0].Slots {
		assert.NotEqual(t, domain.SlotMorning, slot.Slot)
	}

	_, err = uc.Execute(context.Background(), &Request{FromDate: projectionStart, Days: 1, RequiredDogs: domain.MaxDogsPerSlotSetting + 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetAvailableSlots_DefaultsToTomorrow(t *testing.T) {
	uc := newUseCase(domain.DefaultSettings(), nil, nil)

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	tomorrow := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, tomorrow, resp.FromDate)
	require.NotEmpty(t, resp.Dates)
	assert.Equal(t, tomorrow, resp.Dates[0].Date)
}

func TestGetAvailableSlots_PastOrSameDayFromRejected(t *testing.T) {
	uc := newUseCase(domain.DefaultSettings(), nil, nil)

	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), &Request{FromDate: today, Days: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{FromDate: today.AddDate(0, 0, -1), Days: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetAvailableSlots_OverrideShapesDay(t *testing.T) {
	override := domain.DefaultOverride(projectionStart, 4)
	override.Morning.Available = false
	override.Afternoon.Capacity = 6

	uc := newUseCase(domain.DefaultSettings(), []*domain.DateOverride{&override}, nil)

	resp, err := uc.Execute(context.Background(), &Request{FromDate: projectionStart, Days: 1})
	require.NoError(t, err)
	require.Len(t, resp.Dates, 1)
	require.Len(t, resp.Dates[0].Slots, 2)

	assert.Equal(t, domain.SlotAfternoon, resp.Dates[0].Slots[0].Slot)
	assert.Equal(t, 6, resp.Dates[0].Slots[0].TotalSpots)
	assert.Equal(t, domain.SlotEvening, resp.Dates[0].Slots[1].Slot)
	assert.Equal(t, 4, resp.Dates[0].Slots[1].TotalSpots)
}

func TestGetAvailableSlots_FullyClosedDayOmitted(t *testing.T) {
	override := domain.DefaultOverride(projectionStart, 4)
	override.Morning.Available = false
	override.Afternoon.Available = false
	override.Evening.Available = false

	uc := newUseCase(domain.DefaultSettings(), []*domain.DateOverride{&override}, nil)

	resp, err := uc.Execute(context.Background(), &Request{FromDate: projectionStart, Days: 2})
	require.NoError(t, err)
	require.Len(t, resp.Dates, 1)
	assert.Equal(t, projectionStart.AddDate(0, 0, 1), resp.Dates[0].Date)
}

func TestGetAvailableSlots_DaysBounds(t *testing.T) {
	uc := newUseCase(domain.DefaultSettings(), nil, nil)

	resp, err := uc.Execute(context.Background(), &Request{FromDate: projectionStart})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultProjectionDays, resp.Days)

	_, err = uc.Execute(context.Background(), &Request{FromDate: projectionStart, Days: domain.MaxProjectionDays + 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{FromDate: projectionStart, Days: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
