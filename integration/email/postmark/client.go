package postmark

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mrz1836/postmark"

	"github.com/dmitrymomot/sendemail/core/email"
)

// ProviderName is how Postmark is referred to in errors and logs.
const ProviderName = "Postmark"

// Client implements email.EmailSender using Postmark's transactional API.
type Client struct {
	client *postmark.Client
}

// New creates a Postmark-backed sender. The server token is required.
func New(cfg Config) (*Client, error) {
	if cfg.ServerToken == "" {
		return nil, fmt.Errorf("%w: ServerToken is required", email.ErrInvalidConfig)
	}

	c := postmark.NewClient(cfg.ServerToken, cfg.AccountToken)
	if cfg.Host != "" {
		c.BaseURL = strings.TrimRight(cfg.Host, "/")
	}
	return &Client{client: c}, nil
}

// MustNewClient is like New but panics on invalid config.
func MustNewClient(cfg Config) *Client {
	client, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return client
}

// SendEmail sends a plain-text message. Open tracking stays off since it
// needs an HTML part.
func (c *Client) SendEmail(ctx context.Context, params email.SendEmailParams) (email.Receipt, error) {
	if err := params.Validate(); err != nil {
		return email.Receipt{}, err
	}

	resp, err := c.client.SendEmail(ctx, postmark.Email{
		From:     params.From,
		To:       params.SendTo,
		Subject:  params.Subject,
		Tag:      params.Tag,
		TextBody: params.BodyText,
	})
	if err != nil {
		return email.Receipt{}, sendError(resp, err)
	}

	return email.Receipt{MessageID: resp.MessageID}, nil
}

// sendError keeps Postmark's error document as the failure body. The API
// reports rejections either as an HTTP error carrying the document or as
// a 200 answer with a non-zero ErrorCode.
func sendError(resp postmark.EmailResponse, err error) *email.SendError {
	apiErr := postmark.APIError{ErrorCode: resp.ErrorCode, Message: resp.Message}
	if !errors.As(err, &apiErr) && apiErr.ErrorCode == 0 {
		return &email.SendError{Provider: ProviderName, Err: err}
	}

	body, _ := json.Marshal(apiErr)
	return &email.SendError{
		Provider: ProviderName,
		Body:     body,
		Err:      fmt.Errorf("postmark error: %d - %s", apiErr.ErrorCode, apiErr.Message),
	}
}
