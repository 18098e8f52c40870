package response

// Envelope is the JSON document returned for every outcome.
// Successful sends carry Data; failures carry Error and never Data.
type Envelope struct {
	Success   bool      `json:"success"`
	Error     string    `json:"error,omitempty"`
	Message   string    `json:"message"`
	MessageID string    `json:"messageId,omitempty"`
	Data      *SentData `json:"data,omitempty"`
}

// SentData echoes the accepted message back to the caller.
type SentData struct {
	ReceiverEmail string `json:"receiver_email"`
	Subject       string `json:"subject"`
	SentAt        string `json:"sent_at"`
}

// Sent builds the success envelope.
func Sent(messageID string, data SentData) Envelope {
	return Envelope{
		Success:   true,
		Message:   "Email sent successfully",
		MessageID: messageID,
		Data:      &data,
	}
}
