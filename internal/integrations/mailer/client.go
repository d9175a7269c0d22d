package mailer

import (
	"fmt"
	"time"

	gomail "gopkg.in/gomail.v2"
)

// Client sends transactional email over SMTP.
// Delivery is attempted a bounded number of times with an increasing
// backoff; a message that still fails is reported to the caller, which
// records the partial failure instead of rolling back the booking.
type Client struct {
	dialer        *gomail.Dialer
	from          string
	adminAddress  string
	retryAttempts int
	retryBackoff  time.Duration
	log           Logger
}

// NewClient creates an SMTP mailer.
func NewClient(host string, port int, username, password, from, adminAddress string, retryAttempts int, retryBackoff time.Duration, log Logger) *Client {
	return &Client{
		dialer:        gomail.NewDialer(host, port, username, password),
		from:          from,
		adminAddress:  adminAddress,
		retryAttempts: retryAttempts,
		retryBackoff:  retryBackoff,
		log:           log,
	}
}

// AdminAddress returns the staff notification address.
func (c *Client) AdminAddress() string {
	return c.adminAddress
}

// Send delivers one message with bounded retries. The plain-text body
// is always present; a non-empty htmlBody is attached as a multipart
// alternative for clients that render HTML.
func (c *Client) Send(to, subject, body, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", c.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	if htmlBody != "" {
		m.AddAlternative("text/html", htmlBody)
	}

	var lastErr error
	backoff := c.retryBackoff
	for attempt := 1; attempt <= c.retryAttempts; attempt++ {
		if err := c.dialer.DialAndSend(m); err != nil {
			lastErr = err
			c.log.Warn("email to %s failed (attempt %d/%d): %v", to, attempt, c.retryAttempts, err)
			if attempt < c.retryAttempts {
				time.Sleep(backoff)
				backoff *= 2
			}
			continue
		}
		c.log.Info("email sent to %s: %s", to, subject)
		return nil
	}

	c.log.Error("email to %s abandoned after %d attempts: %v", to, c.retryAttempts, lastErr)
	return fmt.Errorf("%w: to=%s subject=%q: %v", ErrSendFailed, to, subject, lastErr)
}
