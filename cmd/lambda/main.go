package main

import (
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/dmitrymomot/sendemail/app/mailer"
	"github.com/dmitrymomot/sendemail/core/config"
	"github.com/dmitrymomot/sendemail/core/logger"
)

func main() {
	var cfg mailer.Config
	config.MustLoad(&cfg)

	app, err := mailer.New(cfg)
	if err != nil {
		panic(err)
	}
	logger.SetAsDefault(app.Logger())

	lambda.Start(app.Handler().HandleRequest)
}
