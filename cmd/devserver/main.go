package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/sendemail/app/mailer"
	"github.com/dmitrymomot/sendemail/core/config"
	"github.com/dmitrymomot/sendemail/core/logger"
	"github.com/dmitrymomot/sendemail/core/server"
)

// devConfig overrides defaults that differ from the deployed function.
type devConfig struct {
	Provider string `env:"MAIL_PROVIDER" envDefault:"dev"`
	Env      string `env:"APP_ENV" envDefault:"development"`
}

func main() {
	var cfg mailer.Config
	config.MustLoad(&cfg)

	var dev devConfig
	config.MustLoad(&dev)
	cfg.Provider = dev.Provider
	cfg.Env = dev.Env

	app, err := mailer.New(cfg)
	if err != nil {
		panic(err)
	}
	log := app.Logger()
	logger.SetAsDefault(log)

	srv, err := server.NewFromConfig(cfg.Addr(), cfg.Server, server.WithLogger(log))
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx, newRouter(app)); err != nil {
		log.Error("server stopped with error", logger.Error(err))
		os.Exit(1)
	}
}
