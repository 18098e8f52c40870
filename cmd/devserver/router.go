package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/sendemail/app/mailer"
	"github.com/dmitrymomot/sendemail/handler"
	mw "github.com/dmitrymomot/sendemail/middleware"
)

// newRouter serves the send endpoint. Browser preflights are answered by
// the CORS middleware; any other OPTIONS request reaches the handler the
// same way it does behind API Gateway.
func newRouter(app *mailer.App) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(mw.Logging(app.Logger()))
	r.Use(middleware.Recoverer)
	r.Use(mw.CORS())

	send := app.Handler().HTTPHandler(handler.WithRequestIDFunc(func(r *http.Request) string {
		return middleware.GetReqID(r.Context())
	}))
	r.Method(http.MethodPost, "/send", send)
	r.Method(http.MethodOptions, "/send", send)

	return r
}
