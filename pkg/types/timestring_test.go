package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	_, err = NewTimeStringFromString("9:30 AM")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Minutes(t *testing.T) {
	ts := TimeString("14:45")
	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 14*60+45, minutes)

	_, err = TimeString("bad").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("09:30")

	later, err := ts.AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), later)

	earlier, err := ts.AddMinutes(-60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("08:30"), earlier)
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("08:30").IsBefore("17:00"))
	assert.True(t, TimeString("17:00").IsAfter("08:30"))
	assert.False(t, TimeString("12:00").IsBefore("12:00"))
	assert.False(t, TimeString("12:00").IsAfter("12:00"))
}

func TestTimeString_At(t *testing.T) {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	at, err := TimeString("18:00").At(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 10, 18, 0, 0, 0, time.UTC), at)
}
