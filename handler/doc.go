// Package handler implements the send-email request handler.
//
// One invocation runs a single linear pass: check the provider credential,
// parse the JSON body, require receiver_email, subject and body_text, check
// the recipient format, check the sender address, then delegate to an
// email.EmailSender. Every outcome, including panics and encoding failures,
// becomes a JSON envelope with CORS headers; HandleRequest never returns an
// error to the Lambda runtime.
//
//	h := handler.New(handler.Config{
//		APIKey:    cfg.SendGrid.APIKey,
//		FromEmail: cfg.FromEmail,
//	}, sender, handler.WithLogger(log))
//	lambda.Start(h.HandleRequest)
//
// HTTPHandler serves the same logic over net/http.
package handler
