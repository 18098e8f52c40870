// Package email defines the mail-sending capability used by the request handler.
//
// EmailSender is implemented by provider adapters under integration/email
// and by DevSender, which writes messages to disk for local development:
//
//	sender := email.NewDevSender("./dev_emails")
//	receipt, err := sender.SendEmail(ctx, email.SendEmailParams{
//		From:     "noreply@example.com",
//		SendTo:   "user@example.com",
//		Subject:  "Hello",
//		BodyText: "Plain text body",
//	})
//
// Failures wrap one of the sentinel errors. Provider rejections are
// *SendError values carrying the provider's raw error payload:
//
//	var sendErr *email.SendError
//	switch {
//	case errors.Is(err, email.ErrInvalidParams):
//	case errors.As(err, &sendErr):
//		// sendErr.Body may hold the provider's JSON error document
//	}
package email
