package response

import (
	"encoding/json"
	"maps"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

var corsHeaders = map[string]string{
	"Content-Type":                 "application/json",
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Headers": "Content-Type",
	"Access-Control-Allow-Methods": "POST, OPTIONS",
}

// fallbackBody is pre-encoded so the internal-error response never depends on the encoder.
const fallbackBody = `{"success":false,"error":"Internal server error","message":"An unexpected error occurred while sending the email"}`

// Headers returns a fresh copy of the headers attached to every response.
func Headers() map[string]string {
	return maps.Clone(corsHeaders)
}

// New encodes env and wraps it with status and the standard headers.
func New(status int, env Envelope) (events.APIGatewayProxyResponse, error) {
	body, err := json.Marshal(env)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return Raw(status, string(body)), nil
}

// Raw wraps an already encoded body.
func Raw(status int, body string) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    Headers(),
		Body:       body,
	}
}

// Fallback is the 500 response used when nothing else can be produced.
func Fallback() events.APIGatewayProxyResponse {
	return Raw(http.StatusInternalServerError, fallbackBody)
}
