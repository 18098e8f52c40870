package email_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/sendemail/core/email"
)

func TestSendEmailParams_Validate(t *testing.T) {
	t.Parallel()

	valid := email.SendEmailParams{
		From:     "Acme <noreply@acme.io>",
		SendTo:   "user@example.com",
		Subject:  "Hi",
		BodyText: "Hello",
	}

	tests := []struct {
		name   string
		mutate func(p *email.SendEmailParams)
		errMsg string
	}{
		{"valid", func(p *email.SendEmailParams) {}, ""},
		{"missing from", func(p *email.SendEmailParams) { p.From = "" }, "From is required"},
		{"missing recipient", func(p *email.SendEmailParams) { p.SendTo = "" }, "SendTo is required"},
		{"missing subject", func(p *email.SendEmailParams) { p.Subject = "" }, "Subject is required"},
		{"missing body", func(p *email.SendEmailParams) { p.BodyText = "" }, "BodyText is required"},
		{"bad recipient", func(p *email.SendEmailParams) { p.SendTo = "user@" }, "SendTo must be a valid email address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := valid
			tt.mutate(&p)
			err := p.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, email.ErrInvalidParams)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestSendError(t *testing.T) {
	t.Parallel()

	t.Run("wraps cause and sentinel", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("HTTP Error 401: Unauthorized")
		err := error(&email.SendError{Provider: "SendGrid", StatusCode: 401, Err: cause})

		assert.Equal(t, "HTTP Error 401: Unauthorized", err.Error())
		assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
		assert.ErrorIs(t, err, cause)

		var sendErr *email.SendError
		assert.True(t, errors.As(err, &sendErr))
		assert.Equal(t, 401, sendErr.StatusCode)
	})

	t.Run("without cause", func(t *testing.T) {
		t.Parallel()

		err := error(&email.SendError{Provider: "Postmark", StatusCode: 422})
		assert.Equal(t, "Postmark: HTTP Error 422", err.Error())
		assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
	})
}
