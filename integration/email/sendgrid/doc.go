// Package sendgrid sends email through the SendGrid v3 mail send API.
//
//	sender, err := sendgrid.New(sendgrid.Config{APIKey: os.Getenv("SENDGRID_API_KEY")})
//	if err != nil {
//		return err
//	}
//	receipt, err := sender.SendEmail(ctx, params)
//
// SendGrid answers rejected requests with a JSON document of the form
// {"errors":[{"message":"...","field":"...","help":"..."}]}. The client
// returns it untouched in email.SendError.Body so callers can decide how to
// present it; the error string itself follows the "HTTP Error 401:
// Unauthorized" form.
package sendgrid
