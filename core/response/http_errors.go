package response

import (
	"fmt"
	"net/http"
)

// HTTPError is a failure outcome: a status code plus the envelope's error label and message.
type HTTPError struct {
	Status  int    `json:"-"`
	Label   string `json:"error"`
	Message string `json:"message"`
}

func (e HTTPError) Error() string {
	if e.Message == "" {
		return e.Label
	}
	return fmt.Sprintf("%s: %s", e.Label, e.Message)
}

// StatusCode returns the HTTP status code for the error.
func (e HTTPError) StatusCode() int {
	return e.Status
}

// WithMessage returns a copy of the error with a custom message.
func (e HTTPError) WithMessage(message string) HTTPError {
	e.Message = message
	return e
}

// WithMessagef is WithMessage with fmt.Sprintf formatting.
func (e HTTPError) WithMessagef(format string, args ...any) HTTPError {
	e.Message = fmt.Sprintf(format, args...)
	return e
}

// WithLabel returns a copy of the error with a custom error label.
func (e HTTPError) WithLabel(label string) HTTPError {
	e.Label = label
	return e
}

// Envelope converts the error to its failure envelope.
func (e HTTPError) Envelope() Envelope {
	return Envelope{Success: false, Error: e.Label, Message: e.Message}
}

// Client input errors.
var (
	ErrInvalidJSON = HTTPError{
		Status:  http.StatusBadRequest,
		Label:   "Invalid JSON in request body",
		Message: "Request body must be valid JSON",
	}

	ErrMissingField = HTTPError{
		Status: http.StatusBadRequest,
		Label:  "Missing required field",
	}

	ErrInvalidEmail = HTTPError{
		Status:  http.StatusBadRequest,
		Label:   "Invalid email format",
		Message: "receiver_email must be a valid email address",
	}
)

// Deployment errors.
var ErrConfiguration = HTTPError{
	Status: http.StatusInternalServerError,
	Label:  "Server configuration error",
}

// Upstream provider errors. Messages are filled in with the provider name.
var (
	ErrAuthentication = HTTPError{
		Status: http.StatusUnauthorized,
		Label:  "Authentication error",
	}

	ErrPermission = HTTPError{
		Status: http.StatusForbidden,
		Label:  "Permission error",
	}

	ErrInvalidRequest = HTTPError{
		Status: http.StatusBadRequest,
		Label:  "Invalid request",
	}

	ErrServiceFailure = HTTPError{
		Status: http.StatusInternalServerError,
		Label:  "Email service error",
	}
)

// ErrInternal is the last-resort outcome for anything unanticipated.
var ErrInternal = HTTPError{
	Status:  http.StatusInternalServerError,
	Label:   "Internal server error",
	Message: "An unexpected error occurred while sending the email",
}
