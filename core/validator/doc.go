// Package validator provides ordered, first-failure-wins validation rules.
//
//	err := validator.Apply(
//		validator.Required("receiver_email", req.ReceiverEmail),
//		validator.Required("subject", req.Subject),
//		validator.ValidEmail("receiver_email", req.ReceiverEmail),
//	)
//
//	var verr validator.ValidationError
//	if errors.As(err, &verr) {
//		// verr.TranslationKey is validator.KeyRequired or validator.KeyEmail
//	}
package validator
