package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"

	"github.com/dmitrymomot/sendemail/core/email"
	"github.com/dmitrymomot/sendemail/core/logger"
	"github.com/dmitrymomot/sendemail/core/response"
)

// Default names used in configuration error messages.
const (
	DefaultProvider     = "SendGrid"
	DefaultAPIKeyEnv    = "SENDGRID_API_KEY"
	DefaultFromEmailEnv = "FROM_EMAIL"
)

// unknownMessageID is reported when the provider returned no message identifier.
const unknownMessageID = "unknown"

// Config is the per-deployment configuration, built once at startup.
// A missing APIKey or FromEmail is not a startup error: each invocation
// reports it as a server configuration error.
type Config struct {
	// Provider is the display name used in upstream error messages.
	Provider string
	// APIKey is the provider credential; only its presence is checked here.
	APIKey string
	// APIKeyEnv names the variable APIKey comes from.
	APIKeyEnv string
	// SkipAPIKeyCheck disables the credential check for senders that need none.
	SkipAPIKeyCheck bool
	// FromEmail is the sender address.
	FromEmail string
	// FromEmailEnv names the variable FromEmail comes from.
	FromEmailEnv string
}

// Handler validates inbound send requests and delegates them to an email.EmailSender.
// It is safe for concurrent use as long as the sender is.
type Handler struct {
	config Config
	sender email.EmailSender
	logger *slog.Logger
	now    func() time.Time
	encode func(status int, env response.Envelope) (events.APIGatewayProxyResponse, error)
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithClock overrides the time source used for sent_at.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) {
		if now != nil {
			h.now = now
		}
	}
}

// New creates a Handler. sender may be nil when the configuration is
// incomplete; such invocations stop at the configuration checks.
func New(cfg Config, sender email.EmailSender, opts ...Option) *Handler {
	if cfg.Provider == "" {
		cfg.Provider = DefaultProvider
	}
	if cfg.APIKeyEnv == "" {
		cfg.APIKeyEnv = DefaultAPIKeyEnv
	}
	if cfg.FromEmailEnv == "" {
		cfg.FromEmailEnv = DefaultFromEmailEnv
	}

	h := &Handler{
		config: cfg,
		sender: sender,
		logger: slog.Default(),
		now:    time.Now,
		encode: response.New,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// HandleRequest processes one API Gateway proxy event. It always returns a
// well-formed response and a nil error; failures are reported in the envelope.
func (h *Handler) HandleRequest(ctx context.Context, req events.APIGatewayProxyRequest) (resp events.APIGatewayProxyResponse, err error) {
	start := time.Now()
	log := h.logger.With(
		logger.Component("handler"),
		logger.RequestID(requestID(ctx, req)),
	)

	defer func() {
		if r := recover(); r != nil {
			log.Error("unexpected error while handling request",
				logger.Error(fmt.Errorf("panic: %v", r)),
				logger.StatusCode(http.StatusInternalServerError),
			)
			resp, err = response.Fallback(), nil
		}
	}()

	status := http.StatusOK
	env, sendErr := h.send(ctx, log, req)
	if sendErr != nil {
		var httpErr response.HTTPError
		if !errors.As(sendErr, &httpErr) {
			log.Error("unexpected error while handling request", logger.Error(sendErr))
			httpErr = response.ErrInternal
		}
		status, env = httpErr.Status, httpErr.Envelope()
	}

	resp, encErr := h.encode(status, env)
	if encErr != nil {
		log.Error("failed to encode response", logger.Error(encErr), logger.StatusCode(status))
		return response.Fallback(), nil
	}

	result := "success"
	if !env.Success {
		result = "failure"
	}
	log.Info("request handled",
		logger.StatusCode(status),
		logger.Result(result),
		logger.Elapsed(start),
	)
	return resp, nil
}

// send runs the validation sequence and the delegated call. Every returned
// error is a response.HTTPError except for programming faults.
func (h *Handler) send(ctx context.Context, log *slog.Logger, req events.APIGatewayProxyRequest) (response.Envelope, error) {
	if !h.config.SkipAPIKeyCheck && h.config.APIKey == "" {
		err := response.ErrConfiguration.WithMessagef("%s environment variable is not configured", h.config.APIKeyEnv)
		log.Error("missing provider credential", logger.Error(err), logger.Key("env", h.config.APIKeyEnv))
		return response.Envelope{}, err
	}

	in, err := parseRequest(req)
	if err != nil {
		log.Warn("rejected request body", logger.Error(err))
		return response.Envelope{}, err
	}

	if err := in.validate(); err != nil {
		log.Warn("rejected send request", logger.Error(err))
		return response.Envelope{}, err
	}

	if h.config.FromEmail == "" {
		err := response.ErrConfiguration.WithMessagef("%s environment variable is not configured", h.config.FromEmailEnv)
		log.Error("missing sender address", logger.Error(err), logger.Key("env", h.config.FromEmailEnv))
		return response.Envelope{}, err
	}

	if h.sender == nil {
		return response.Envelope{}, errors.New("email sender is not configured")
	}

	receipt, err := h.sender.SendEmail(ctx, email.SendEmailParams{
		From:     h.config.FromEmail,
		SendTo:   in.ReceiverEmail,
		Subject:  in.Subject,
		BodyText: in.BodyText,
	})
	if err != nil {
		httpErr := classifyFailure(h.config.Provider, err)
		log.Error("email provider error",
			logger.Error(err),
			logger.Provider(h.config.Provider),
			logger.StatusCode(httpErr.Status),
		)
		return response.Envelope{}, httpErr
	}

	messageID := receipt.MessageID
	if messageID == "" {
		messageID = unknownMessageID
	}
	log.Info("email sent", logger.Provider(h.config.Provider), logger.Key("message_id", messageID))

	return response.Sent(messageID, response.SentData{
		ReceiverEmail: in.ReceiverEmail,
		Subject:       in.Subject,
		SentAt:        h.now().UTC().Format(time.RFC3339Nano),
	}), nil
}

// requestID prefers the API Gateway request id, then the Lambda invocation id,
// then a random UUID so every log line can be correlated.
func requestID(ctx context.Context, req events.APIGatewayProxyRequest) string {
	if id := req.RequestContext.RequestID; id != "" {
		return id
	}
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}
	return uuid.NewString()
}
