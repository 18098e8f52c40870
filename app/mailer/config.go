package mailer

import (
	"github.com/dmitrymomot/sendemail/core/server"
	"github.com/dmitrymomot/sendemail/integration/email/postmark"
	"github.com/dmitrymomot/sendemail/integration/email/sendgrid"
)

// Supported values of MAIL_PROVIDER.
const (
	ProviderSendGrid = "sendgrid"
	ProviderPostmark = "postmark"
	ProviderDev      = "dev"
)

type Config struct {
	SendGrid sendgrid.Config
	Postmark postmark.Config
	Server   server.Config

	Provider  string `env:"MAIL_PROVIDER" envDefault:"sendgrid"`
	FromEmail string `env:"FROM_EMAIL"`
	DevDir    string `env:"MAIL_DEV_DIR" envDefault:"./dev_emails"`

	AppName   string `env:"APP_NAME" envDefault:"sendemail"`
	Env       string `env:"APP_ENV" envDefault:"production"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT"`
	HTTPHost  string `env:"HTTP_HOST" envDefault:"localhost"`
	HTTPPort  string `env:"HTTP_PORT" envDefault:"8080"`
}

// Addr is the listen address of the local HTTP server.
func (c Config) Addr() string {
	return c.HTTPHost + ":" + c.HTTPPort
}
