// Package postmark sends email through Postmark's transactional API.
//
//	sender, err := postmark.New(postmark.Config{ServerToken: token})
//	if err != nil {
//		return err
//	}
//	receipt, err := sender.SendEmail(ctx, params)
//
// API rejections, whether an HTTP error or a non-zero ErrorCode in a 200
// answer, are returned as *email.SendError whose Body is
// {"ErrorCode":<n>,"Message":"..."}. The HTTP status is not exposed by the
// client library, so StatusCode stays zero.
package postmark
