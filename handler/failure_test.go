package handler_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/sendemail/core/email"
	"github.com/dmitrymomot/sendemail/handler"
)

func TestProviderMessage(t *testing.T) {
	t.Parallel()

	base := errors.New("HTTP Error 400: Bad Request")
	withBody := func(body string) error {
		return &email.SendError{Provider: "SendGrid", StatusCode: 400, Body: []byte(body), Err: base}
	}

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"plain error", errors.New("timeout"), "timeout"},
		{"no body", &email.SendError{Provider: "SendGrid", Err: base}, "HTTP Error 400: Bad Request"},
		{"invalid json", withBody("not json"), "HTTP Error 400: Bad Request"},
		{"json array", withBody(`[{"message":"x"}]`), "HTTP Error 400: Bad Request"},
		{"first error message", withBody(`{"errors":[{"message":"first"},{"message":"second"}]}`), "first"},
		{"errors without message", withBody(`{"errors":[{"field":"from"}]}`), "Unknown SendGrid error"},
		{"empty errors", withBody(`{"errors":[]}`), "HTTP Error 400: Bad Request"},
		{"errors not a list", withBody(`{"errors":"boom"}`), "HTTP Error 400: Bad Request"},
		{"first error not an object", withBody(`{"errors":["boom"]}`), "HTTP Error 400: Bad Request"},
		{"object without errors", withBody(`{"status":"failed"}`), "Unknown SendGrid error"},
		{"postmark message", withBody(`{"ErrorCode":406,"Message":"You tried to send to an inactive recipient."}`), "You tried to send to an inactive recipient."},
		{"wrapped send error", errors.Join(errors.New("outer"), withBody(`{"errors":[{"message":"inner"}]}`)), "inner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, handler.ProviderMessage("SendGrid", tt.err))
		})
	}
}
