package mailer

import "errors"

var (
	// ErrSendFailed is returned when the message could not be delivered
	// to the SMTP relay after all retry attempts
	ErrSendFailed = errors.New("mailer client: failed to send email")
)
