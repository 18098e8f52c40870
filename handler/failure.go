package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/dmitrymomot/sendemail/core/email"
	"github.com/dmitrymomot/sendemail/core/response"
)

// classifyFailure maps a failed send to a response by matching the provider's
// wording. This is best effort: it depends on text the provider does not
// guarantee, so unrecognized failures fall through to a generic 500.
func classifyFailure(provider string, err error) response.HTTPError {
	msg := providerMessage(provider, err)
	lower := strings.ToLower(msg)

	switch {
	case strings.Contains(lower, "unauthorized"):
		return response.ErrAuthentication.WithMessagef("Invalid %s API key", provider)
	case strings.Contains(lower, "forbidden"):
		return response.ErrPermission.WithMessagef("%s API key does not have required permissions", provider)
	case strings.Contains(lower, "bad request"), strings.Contains(lower, "invalid"):
		return response.ErrInvalidRequest.WithMessagef("%s error: %s", provider, msg)
	default:
		return response.ErrServiceFailure.
			WithLabel(provider+" service error").
			WithMessagef("%s error: %s", provider, msg)
	}
}

// providerMessage extracts the human-readable message from a provider error
// payload. Two shapes are understood:
//
//	{"errors":[{"message":"..."}]}   SendGrid
//	{"ErrorCode":300,"Message":"..."} Postmark
//
// A JSON object with neither yields "Unknown <provider> error". Anything
// else (no payload, invalid JSON, an empty errors list) falls back to the
// error string.
func providerMessage(provider string, err error) string {
	fallback := err.Error()

	var sendErr *email.SendError
	if !errors.As(err, &sendErr) || len(sendErr.Body) == 0 {
		return fallback
	}
	if !gjson.ValidBytes(sendErr.Body) {
		return fallback
	}

	doc := gjson.ParseBytes(sendErr.Body)
	if !doc.IsObject() {
		return fallback
	}

	if errs := doc.Get("errors"); errs.Exists() {
		if !errs.IsArray() {
			return fallback
		}
		items := errs.Array()
		if len(items) == 0 || !items[0].IsObject() {
			return fallback
		}
		if msg := items[0].Get("message"); msg.Exists() {
			return msg.String()
		}
		return unknownProviderError(provider)
	}

	if msg := doc.Get("Message"); msg.Type == gjson.String {
		return msg.String()
	}
	return unknownProviderError(provider)
}

func unknownProviderError(provider string) string {
	return fmt.Sprintf("Unknown %s error", provider)
}
