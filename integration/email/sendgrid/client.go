package sendgrid

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/dmitrymomot/sendemail/core/email"
)

// ProviderName is how SendGrid is referred to in errors and logs.
const ProviderName = "SendGrid"

const sendEndpoint = "/v3/mail/send"

// Client implements email.EmailSender on top of the SendGrid v3 mail send API.
type Client struct {
	client *sendgrid.Client
}

// New creates a SendGrid-backed sender.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: APIKey is required", email.ErrInvalidConfig)
	}

	c := sendgrid.NewSendClient(cfg.APIKey)
	if cfg.Host != "" {
		c.BaseURL = strings.TrimRight(cfg.Host, "/") + sendEndpoint
	}
	return &Client{client: c}, nil
}

// MustNewClient is like New but panics on invalid config.
func MustNewClient(cfg Config) *Client {
	c, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return c
}

// SendEmail sends a plain-text message. A 2xx answer yields the X-Message-Id
// header as the receipt. Transport failures and non-2xx answers are returned
// as *email.SendError; for the latter Body is the raw response document.
func (c *Client) SendEmail(ctx context.Context, params email.SendEmailParams) (email.Receipt, error) {
	if err := params.Validate(); err != nil {
		return email.Receipt{}, err
	}

	from, err := mail.ParseEmail(params.From)
	if err != nil {
		from = mail.NewEmail("", params.From)
	}

	p := mail.NewPersonalization()
	p.AddTos(mail.NewEmail("", params.SendTo))

	m := mail.NewV3Mail()
	m.SetFrom(from)
	m.Subject = params.Subject
	m.AddPersonalizations(p)
	m.AddContent(mail.NewContent("text/plain", params.BodyText))
	if params.Tag != "" {
		m.AddCategories(params.Tag)
	}

	resp, err := c.client.SendWithContext(ctx, m)
	if err != nil {
		return email.Receipt{}, &email.SendError{Provider: ProviderName, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		sendErr := &email.SendError{
			Provider:   ProviderName,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("HTTP Error %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
		}
		if resp.Body != "" {
			sendErr.Body = []byte(resp.Body)
		}
		return email.Receipt{}, sendErr
	}

	return email.Receipt{MessageID: http.Header(resp.Headers).Get("X-Message-Id")}, nil
}
