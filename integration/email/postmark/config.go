package postmark

// Config holds Postmark settings. The account token is only needed for
// account-level API calls and may be left empty for sending.
type Config struct {
	ServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	AccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	Host         string `env:"POSTMARK_HOST" envDefault:"https://api.postmarkapp.com"`
}
