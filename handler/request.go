package handler

import (
	"encoding/base64"
	"errors"

	"github.com/aws/aws-lambda-go/events"
	"github.com/tidwall/gjson"

	"github.com/dmitrymomot/sendemail/core/response"
	"github.com/dmitrymomot/sendemail/core/validator"
)

// Inbound field names.
const (
	fieldReceiverEmail = "receiver_email"
	fieldSubject       = "subject"
	fieldBodyText      = "body_text"
)

// sendRequest is the decoded inbound payload.
type sendRequest struct {
	ReceiverEmail string
	Subject       string
	BodyText      string
}

// parseRequest decodes the event body. An absent body is treated as "{}".
// Fields that are not JSON strings are left empty and later reported as missing.
func parseRequest(req events.APIGatewayProxyRequest) (sendRequest, error) {
	body := req.Body
	if req.IsBase64Encoded && body != "" {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return sendRequest{}, response.ErrInvalidJSON
		}
		body = string(decoded)
	}
	if body == "" {
		body = "{}"
	}

	if !gjson.Valid(body) {
		return sendRequest{}, response.ErrInvalidJSON
	}

	doc := gjson.Parse(body)
	return sendRequest{
		ReceiverEmail: stringField(doc, fieldReceiverEmail),
		Subject:       stringField(doc, fieldSubject),
		BodyText:      stringField(doc, fieldBodyText),
	}, nil
}

func stringField(doc gjson.Result, name string) string {
	if !doc.IsObject() {
		return ""
	}
	v := doc.Get(name)
	if v.Type != gjson.String {
		return ""
	}
	return v.String()
}

// validate checks required fields in order, then the recipient format.
func (r sendRequest) validate() error {
	err := validator.Apply(
		validator.Required(fieldReceiverEmail, r.ReceiverEmail),
		validator.Required(fieldSubject, r.Subject),
		validator.Required(fieldBodyText, r.BodyText),
		validator.ValidEmail(fieldReceiverEmail, r.ReceiverEmail),
	)
	if err == nil {
		return nil
	}

	var verr validator.ValidationError
	if !errors.As(err, &verr) {
		return err
	}
	if verr.TranslationKey == validator.KeyEmail {
		return response.ErrInvalidEmail
	}
	return response.ErrMissingField.WithMessage(verr.Message)
}
