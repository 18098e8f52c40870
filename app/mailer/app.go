package mailer

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/sendemail/core/email"
	"github.com/dmitrymomot/sendemail/core/logger"
	"github.com/dmitrymomot/sendemail/handler"
	"github.com/dmitrymomot/sendemail/integration/email/postmark"
	"github.com/dmitrymomot/sendemail/integration/email/sendgrid"
)

// ErrUnknownProvider is returned by New for an unsupported MAIL_PROVIDER.
var ErrUnknownProvider = errors.New("unknown mail provider")

type App struct {
	config    Config
	logger    *slog.Logger
	logOutput io.Writer
	sender    email.EmailSender
	handler   *handler.Handler
}

type AppOption func(*App) error

// New wires logger, sender and handler from cfg.
// A missing provider credential or sender address is not an error here:
// the handler reports it on every invocation instead.
func New(cfg Config, opts ...AppOption) (*App, error) {
	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	if cfg.Provider == "" {
		cfg.Provider = ProviderSendGrid
	}

	app := &App{config: cfg}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.logger == nil {
		app.logger = newLogger(cfg, app.logOutput)
	}

	hcfg, err := handlerConfig(cfg)
	if err != nil {
		return nil, err
	}

	if app.sender == nil {
		s, err := newSender(cfg)
		if err != nil {
			return nil, err
		}
		if s == nil {
			app.logger.Warn("email provider is not configured",
				logger.Provider(hcfg.Provider),
				logger.Key("env", hcfg.APIKeyEnv),
			)
		} else {
			app.sender = s
		}
	}
	if cfg.FromEmail == "" {
		app.logger.Warn("sender address is not configured", logger.Key("env", handler.DefaultFromEmailEnv))
	}

	app.handler = handler.New(hcfg, app.sender, handler.WithLogger(app.logger))
	return app, nil
}

func WithLogger(l *slog.Logger) AppOption {
	return func(app *App) error {
		if l == nil {
			return errors.New("logger cannot be nil")
		}
		app.logger = l
		return nil
	}
}

// WithLogOutput redirects the logger built from Config. It has no effect
// together with WithLogger.
func WithLogOutput(w io.Writer) AppOption {
	return func(app *App) error {
		if w == nil {
			return errors.New("log output cannot be nil")
		}
		app.logOutput = w
		return nil
	}
}

func WithSender(s email.EmailSender) AppOption {
	return func(app *App) error {
		if s == nil {
			return errors.New("email sender cannot be nil")
		}
		app.sender = s
		return nil
	}
}

func (a *App) Handler() *handler.Handler { return a.handler }

func (a *App) Logger() *slog.Logger { return a.logger }

func (a *App) Config() Config { return a.config }

// newLogger picks the environment preset, then applies LOG_FORMAT (json or
// text) and LOG_LEVEL overrides.
func newLogger(cfg Config, out io.Writer) *slog.Logger {
	opts := []logger.Option{logger.WithProduction(cfg.AppName)}
	if strings.EqualFold(cfg.Env, "development") {
		opts = []logger.Option{logger.WithDevelopment(cfg.AppName)}
	}
	switch strings.ToLower(cfg.LogFormat) {
	case "json":
		opts = append(opts, logger.WithJSONFormatter())
	case "text":
		opts = append(opts, logger.WithTextFormatter())
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
	}
	opts = append(opts, logger.WithAttr(slog.String("mail_provider", cfg.Provider)))
	if out != nil {
		opts = append(opts, logger.WithOutput(out))
	}
	return logger.New(opts...)
}

func handlerConfig(cfg Config) (handler.Config, error) {
	hcfg := handler.Config{FromEmail: cfg.FromEmail}
	switch cfg.Provider {
	case ProviderSendGrid:
		hcfg.Provider = sendgrid.ProviderName
		hcfg.APIKey = cfg.SendGrid.APIKey
		hcfg.APIKeyEnv = "SENDGRID_API_KEY"
	case ProviderPostmark:
		hcfg.Provider = postmark.ProviderName
		hcfg.APIKey = cfg.Postmark.ServerToken
		hcfg.APIKeyEnv = "POSTMARK_SERVER_TOKEN"
	case ProviderDev:
		hcfg.Provider = "dev"
		hcfg.SkipAPIKeyCheck = true
	default:
		return handler.Config{}, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
	return hcfg, nil
}

// newSender returns nil without error when the provider credential is missing.
func newSender(cfg Config) (email.EmailSender, error) {
	switch cfg.Provider {
	case ProviderSendGrid:
		if cfg.SendGrid.APIKey == "" {
			return nil, nil
		}
		return sendgrid.New(cfg.SendGrid)
	case ProviderPostmark:
		if cfg.Postmark.ServerToken == "" {
			return nil, nil
		}
		return postmark.New(cfg.Postmark)
	case ProviderDev:
		return email.NewDevSender(cfg.DevDir), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
