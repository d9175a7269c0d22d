package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caninecompadre/booking-service/internal/domain"
	settingsRepo "github.com/caninecompadre/booking-service/internal/infra/storage/settings"
)

type fakeSettingsRepo struct {
	stored *domain.Settings
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*domain.Settings, error) {
	if f.stored == nil {
		return nil, settingsRepo.ErrSettingsNotFound
	}
	copied := *f.stored
	return &copied, nil
}

func (f *fakeSettingsRepo) Update(_ context.Context, s domain.Settings) (*domain.Settings, error) {
	f.stored = &s
	return &s, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestSettings_Get_FallsBackToDefaults(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{}, nopLogger{})

	current, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultMaxDogsPerSlot, current.MaxDogsPerSlot)
	assert.True(t, current.AllowWeekendBookings)
	assert.True(t, current.AllowEveningSlot)
}

func TestSettings_UpdateAndGet(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewService(repo, nopLogger{})

	next := domain.Settings{AllowWeekendBookings: false, MaxDogsPerSlot: 6, AllowEveningSlot: false}
	updated, err := svc.Update(context.Background(), next)
	require.NoError(t, err)
	assert.Equal(t, 6, updated.MaxDogsPerSlot)

	current, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, current.MaxDogsPerSlot)
	assert.False(t, current.AllowWeekendBookings)
	assert.False(t, current.AllowEveningSlot)
}

func TestSettings_Update_Validates(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{}, nopLogger{})

	_, err := svc.Update(context.Background(), domain.Settings{MaxDogsPerSlot: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(context.Background(), domain.Settings{MaxDogsPerSlot: 7})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
