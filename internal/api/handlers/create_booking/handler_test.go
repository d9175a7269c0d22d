package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caninecompadre/booking-service/internal/api/handlers"
	"github.com/caninecompadre/booking-service/internal/domain"
	createBooking "github.com/caninecompadre/booking-service/internal/usecase/create_booking"
	"github.com/caninecompadre/booking-service/pkg/ptr"
)

type fakeUseCase struct {
	response *createBooking.Response
	err      error
	received *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
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

func validPayload() map[string]interface{} {
	return map[string]interface{}{
		"customerName":     "Jamie Carter",
		"customerEmail":    "jamie@example.com",
		"customerPhone":    "07700 900000",
		"customerAddress":  "2 Mill Road",
		"customerPostcode": "EX32 7AA",
		"dates":            []string{"2026-09-10"},
		"timeSlot":         "09:30-11:30",
		"dogCount":         1,
		"dogs": []map[string]interface{}{{
			"name":              "Bella",
			"breed":             "Collie",
			"age":               5,
			"goodWithOtherDogs": true,
			"vetName":           "Barnstaple Vets",
			"vetPhone":          "01271 000000",
			"vetAddress":        "1 High Street, Barnstaple",
		}},
	}
}

func post(t *testing.T, handler *Handler, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestCreateBookingHandler_Success(t *testing.T) {
	useCase := &fakeUseCase{
		response: &createBooking.Response{
			Bookings: []createBooking.BookingResult{{
				ID:             1,
				BookingDate:    time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
				TimeSlot:       domain.SlotMorning,
				Status:         string(domain.StatusConfirmed),
				CalendarSynced: true,
			}},
			BatchID:   ptr.Ptr("0b7f4a1e"),
			DogCount:  1,
			EmailSent: true,
			CreatedAt: time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC),
		},
	}
	handler := NewHandler(useCase, nopLogger{})

	rec := post(t, handler, validPayload())

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp CreateBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "2026-09-10", resp.Bookings[0].BookingDate)
	assert.Equal(t, "09:30-11:30", resp.Bookings[0].TimeSlot)
	require.NotNil(t, resp.BatchID)
	assert.Equal(t, "0b7f4a1e", *resp.BatchID)

	require.NotNil(t, useCase.received)
	assert.Equal(t, domain.SlotMorning, useCase.received.TimeSlot)
	assert.Equal(t, "EX32 7AA", useCase.received.CustomerPostcode)
}

func TestCreateBookingHandler_InvalidBody(t *testing.T) {
	useCase := &fakeUseCase{}
	handler := NewHandler(useCase, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, useCase.received)
}

func TestCreateBookingHandler_InvalidDate(t *testing.T) {
	handler := NewHandler(&fakeUseCase{}, nopLogger{})

	payload := validPayload()
	payload["dates"] = []string{"10/09/2026"}

	rec := post(t, handler, payload)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBookingHandler_NotEnoughSpace(t *testing.T) {
	handler := NewHandler(&fakeUseCase{
		err: &createBooking.NotEnoughSpaceError{
			Date:      time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
			Slot:      domain.SlotMorning,
			Available: 1,
		},
	}, nopLogger{})

	rec := post(t, handler, validPayload())

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "not enough space on 2026-09-10: 1 spot(s) left", resp.Message)
}

func TestCreateBookingHandler_DomainErrorStatuses(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"past date", createBooking.ErrPastDate, http.StatusBadRequest},
		{"weekend closed", createBooking.ErrWeekendClosed, http.StatusBadRequest},
		{"slot closed", createBooking.ErrSlotClosed, http.StatusConflict},
		{"postcode not served", createBooking.ErrPostcodeNotServed, http.StatusBadRequest},
		{"too many dogs", createBooking.ErrTooManyDogs, http.StatusBadRequest},
		{"internal", createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewHandler(&fakeUseCase{err: tc.err}, nopLogger{})
			rec := post(t, handler, validPayload())
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}
