// Package response defines the uniform JSON envelope and the API Gateway
// proxy responses that carry it.
//
// Every response has the same CORS-enabled headers:
//
//	Content-Type: application/json
//	Access-Control-Allow-Origin: *
//	Access-Control-Allow-Headers: Content-Type
//	Access-Control-Allow-Methods: POST, OPTIONS
//
// Failure outcomes are predefined HTTPError values; callers adjust the
// message and encode them:
//
//	e := response.ErrMissingField.WithMessage("subject is required")
//	resp, err := response.New(e.Status, e.Envelope())
//
// Fallback returns a pre-encoded 500 response for when encoding itself fails.
package response
