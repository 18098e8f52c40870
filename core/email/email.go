package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrymomot/sendemail/core/validator"
)

// EmailSender delivers a single plain-text message through a provider.
// Implementations return a Receipt on success and an error on failure;
// provider rejections should be reported as *SendError so callers can
// inspect the provider's payload.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) (Receipt, error)
}

// SendEmailParams is the outbound message.
type SendEmailParams struct {
	From     string // Sender address (required)
	SendTo   string // Recipient address (required)
	Subject  string // Subject line (required)
	BodyText string // Plain-text body (required)
	Tag      string // Optional provider tag / category
}

// Validate checks that every required field is set and the recipient is well formed.
// The sender address is only checked for presence; providers accept display-name forms.
func (p SendEmailParams) Validate() error {
	err := validator.Apply(
		validator.Required("From", p.From),
		validator.Required("SendTo", p.SendTo),
		validator.Required("Subject", p.Subject),
		validator.Required("BodyText", p.BodyText),
		validator.ValidEmail("SendTo", p.SendTo),
	)
	if err != nil {
		return errors.Join(ErrInvalidParams, err)
	}
	return nil
}

// Receipt is the provider acknowledgement of an accepted message.
type Receipt struct {
	// MessageID is the provider-issued identifier. Empty when the provider did not return one.
	MessageID string
}

// SendError is the failure variant returned by provider adapters.
// Body holds the provider's raw error payload when one was received;
// Err carries the plain description used when Body is absent or unusable.
type SendError struct {
	Provider   string
	StatusCode int
	Body       []byte
	Err        error
}

func (e *SendError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: HTTP Error %d", e.Provider, e.StatusCode)
	}
	return e.Err.Error()
}

func (e *SendError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrFailedToSendEmail}
	}
	return []error{ErrFailedToSendEmail, e.Err}
}
