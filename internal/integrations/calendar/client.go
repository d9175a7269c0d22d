package calendar

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/caninecompadre/booking-service/internal/domain"
)

// Logger is the minimal logging surface the calendar client needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client publishes walk events to a CalDAV collection. Each event is a
// single-VEVENT iCalendar object PUT under its UID, so re-publishing the
// same walk overwrites rather than duplicates. Calls are attempted a
// bounded number of times with an increasing backoff, the same delivery
// contract the mailer follows.
type Client struct {
	baseURL       string
	token         string
	httpClient    *http.Client
	retryAttempts int
	retryBackoff  time.Duration
	log           Logger
}

// NewClient creates a calendar client for the given collection URL.
func NewClient(baseURL, token string, timeout time.Duration, retryAttempts int, retryBackoff time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		retryAttempts: retryAttempts,
		retryBackoff:  retryBackoff,
		log:           log,
	}
}

// CreateGroupWalkEvent publishes a group walk booking and returns the
// event UID to store on the booking.
func (c *Client) CreateGroupWalkEvent(ctx context.Context, b *domain.GroupBooking) (string, error) {
	uid := fmt.Sprintf("group-booking-%d@caninecompadre.co.uk", b.ID)

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	event := cal.AddEvent(uid)
	event.SetDtStampTime(time.Now().UTC())
	event.SetStartAt(b.TimeSlot.StartAt(b.BookingDate))
	event.SetEndAt(b.TimeSlot.EndAt(b.BookingDate))
	event.SetSummary(fmt.Sprintf("Group Walk - %s (%d dogs)", b.Customer.Name, b.DogCount))
	event.SetLocation(fmt.Sprintf("%s, %s", b.Customer.Address, b.Customer.Postcode))
	event.SetDescription(fmt.Sprintf("Booking #%d\nContact: %s / %s", b.ID, b.Customer.Email, b.Customer.Phone))

	if err := c.putEvent(ctx, uid, cal.Serialize()); err != nil {
		return "", err
	}

	c.log.Info("calendar event %s created for booking %d", uid, b.ID)
	return uid, nil
}

// CreateIndividualWalkEvent publishes an approved individual walk and
// returns the event UID. The confirmed time is free text, so the event
// spans the whole day and carries the time in its description.
func (c *Client) CreateIndividualWalkEvent(ctx context.Context, req *domain.IndividualRequest) (string, error) {
	if req.ConfirmedDate == nil || req.ConfirmedTimeText == nil {
		return "", fmt.Errorf("%w: request %d has no confirmed date or time", ErrInternal, req.ID)
	}

	uid := fmt.Sprintf("individual-request-%d@caninecompadre.co.uk", req.ID)

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	event := cal.AddEvent(uid)
	event.SetDtStampTime(time.Now().UTC())
	event.SetAllDayStartAt(*req.ConfirmedDate)
	event.SetAllDayEndAt(req.ConfirmedDate.AddDate(0, 0, 1))
	event.SetSummary(fmt.Sprintf("Individual Walk - %s (%d dogs)", req.Customer.Name, req.DogCount))
	event.SetLocation(fmt.Sprintf("%s, %s", req.Customer.Address, req.Customer.Postcode))
	event.SetDescription(fmt.Sprintf("Request #%d\nTime: %s\nContact: %s / %s",
		req.ID, *req.ConfirmedTimeText, req.Customer.Email, req.Customer.Phone))

	if err := c.putEvent(ctx, uid, cal.Serialize()); err != nil {
		return "", err
	}

	c.log.Info("calendar event %s created for request %d", uid, req.ID)
	return uid, nil
}

// DeleteEvent removes an event by UID. A missing event is not an error;
// the goal state is "no event" either way.
func (c *Client) DeleteEvent(ctx context.Context, uid string) error {
	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodDelete, c.eventURL(uid), nil)
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		c.log.Info("calendar event %s deleted", uid)
		return nil
	case http.StatusNotFound:
		c.log.Warn("calendar event %s already gone", uid)
		return nil
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, resp.StatusCode, string(body))
	}
}

func (c *Client) putEvent(ctx context.Context, uid, payload string) error {
	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.eventURL(uid), strings.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "text/calendar; charset=utf-8")
		return req, nil
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		return nil
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, resp.StatusCode, string(body))
	}
}

// doWithRetry builds and executes the request up to retryAttempts times
// with an increasing backoff. Transport failures and server errors are
// retried; any other response goes back to the caller.
func (c *Client) doWithRetry(ctx context.Context, build func() (*http.Request, error)) (*http.Response, error) {
	var lastErr error
	backoff := c.retryBackoff
	for attempt := 1; attempt <= c.retryAttempts; attempt++ {
		req, err := build()
		if err != nil {
			return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
		}
		c.authorize(req)

		resp, err := c.httpClient.Do(req)
		if err == nil && resp.StatusCode < http.StatusInternalServerError {
			return resp, nil
		}

		if err != nil {
			lastErr = fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
			c.log.Warn("calendar %s %s failed (attempt %d/%d): %v",
				req.Method, req.URL.Path, attempt, c.retryAttempts, err)
		} else {
			body, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			lastErr = fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, resp.StatusCode, string(body))
			c.log.Warn("calendar %s %s returned %d (attempt %d/%d)",
				req.Method, req.URL.Path, resp.StatusCode, attempt, c.retryAttempts)
		}

		if attempt < c.retryAttempts {
			time.Sleep(backoff)
			backoff *= 2
		}
	}
	return nil, lastErr
}

func (c *Client) eventURL(uid string) string {
	return fmt.Sprintf("%s/%s.ics", c.baseURL, uid)
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}
