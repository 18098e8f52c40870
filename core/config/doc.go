// Package config loads typed configuration from environment variables.
//
// Fields are declared with caarlos0/env tags. A .env file in the working
// directory is read on first use via godotenv, without overriding variables
// that are already set:
//
//	type Config struct {
//		FromEmail string `env:"FROM_EMAIL"`
//		LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Each type is parsed once per process and cached; call Reset to force a
// reload (mainly useful in tests).
package config
