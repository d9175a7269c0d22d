package check_slot

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caninecompadre/booking-service/internal/domain"
	getAvailableSlots "github.com/caninecompadre/booking-service/internal/usecase/get_available_slots"
)

type fakeUseCase struct {
	response *getAvailableSlots.Response
	err      error
	received *getAvailableSlots.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.received = req
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func morningWithSpots(available int) *getAvailableSlots.Response {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	return &getAvailableSlots.Response{
		FromDate: date,
		Days:     1,
		Dates: []getAvailableSlots.DayAvailability{{
			Date: date,
			Slots: []getAvailableSlots.SlotAvailability{{
				Slot:           domain.SlotMorning,
				Name:           "morning",
				TotalSpots:     4,
				AvailableSpots: available,
			}},
		}},
	}
}

func check(t *testing.T, handler *Handler, target string) (*httptest.ResponseRecorder, CheckSlotResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)

	var resp CheckSlotResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func TestCheckSlotHandler_DogsDecideAvailability(t *testing.T) {
	handler := NewHandler(&fakeUseCase{response: morningWithSpots(2)}, nopLogger{})

	rec, resp := check(t, handler, "/api/v1/slots/check?date=2026-09-10&slot=morning&dogs=2")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Available)
	assert.Equal(t, 2, resp.AvailableSpots)
	assert.Equal(t, 4, resp.TotalSpots)

	rec, resp = check(t, handler, "/api/v1/slots/check?date=2026-09-10&slot=morning&dogs=3")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, resp.Available)
	assert.Equal(t, 2, resp.AvailableSpots)
}

func TestCheckSlotHandler_InvalidDogs(t *testing.T) {
	handler := NewHandler(&fakeUseCase{response: morningWithSpots(4)}, nopLogger{})

	for _, dogs := range []string{"0", "7", "pack"} {
		rec, _ := check(t, handler, "/api/v1/slots/check?date=2026-09-10&slot=morning&dogs="+dogs)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

func TestCheckSlotHandler_DateNotBookable(t *testing.T) {
	handler := NewHandler(&fakeUseCase{err: getAvailableSlots.ErrInvalidInput}, nopLogger{})

	rec, _ := check(t, handler, "/api/v1/slots/check?date=2020-01-01&slot=morning")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
