package handler

import (
	"github.com/aws/aws-lambda-go/events"

	"github.com/dmitrymomot/sendemail/core/response"
)

// SetEncoder replaces the response encoder so tests can force encoding failures.
func SetEncoder(h *Handler, fn func(status int, env response.Envelope) (events.APIGatewayProxyResponse, error)) {
	h.encode = fn
}

var ProviderMessage = providerMessage
