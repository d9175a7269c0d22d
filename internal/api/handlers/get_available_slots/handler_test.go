package get_available_slots

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

func get(handler *Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestAvailableSlotsHandler_ParsesQueryParams(t *testing.T) {
	useCase := &fakeUseCase{response: &getAvailableSlots.Response{Days: 5}}
	handler := NewHandler(useCase, nopLogger{})

	rec := get(handler, "/api/v1/available-slots?from=2026-09-10&days=5&dogs=3")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, useCase.received)
	assert.Equal(t, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), useCase.received.FromDate)
	assert.Equal(t, 5, useCase.received.Days)
	assert.Equal(t, 3, useCase.received.RequiredDogs)
}

func TestAvailableSlotsHandler_InvalidParams(t *testing.T) {
	cases := []struct {
		name   string
		target string
	}{
		{"bad from", "/api/v1/available-slots?from=10-09-2026"},
		{"bad days", "/api/v1/available-slots?days=many"},
		{"bad dogs", "/api/v1/available-slots?dogs=pack"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			useCase := &fakeUseCase{}
			handler := NewHandler(useCase, nopLogger{})

			rec := get(handler, tc.target)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, useCase.received)
		})
	}
}

func TestAvailableSlotsHandler_WindowRejected(t *testing.T) {
	handler := NewHandler(&fakeUseCase{err: getAvailableSlots.ErrInvalidInput}, nopLogger{})

	rec := get(handler, "/api/v1/available-slots?from=2020-01-01")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
