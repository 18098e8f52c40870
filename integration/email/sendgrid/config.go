package sendgrid

// Config holds SendGrid settings.
type Config struct {
	APIKey string `env:"SENDGRID_API_KEY"`
	// Host is the API root; regional accounts use https://api.eu.sendgrid.com.
	Host string `env:"SENDGRID_HOST" envDefault:"https://api.sendgrid.com"`
}
