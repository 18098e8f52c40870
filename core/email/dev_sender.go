package email

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// DevSender implements EmailSender for local development.
// It writes each message to disk instead of delivering it: the body as a
// .txt file and the envelope as a .json file sharing the same base name.
type DevSender struct {
	dir string
	now func() time.Time
}

// NewDevSender creates a development sender writing into dir.
// The directory is created on first send.
func NewDevSender(dir string) *DevSender {
	return &DevSender{dir: dir, now: time.Now}
}

type emailMetadata struct {
	Timestamp string `json:"timestamp"`
	From      string `json:"from"`
	SendTo    string `json:"send_to"`
	Subject   string `json:"subject"`
	Tag       string `json:"tag,omitempty"`
}

// SendEmail stores the message and returns the base filename as the message ID.
func (d *DevSender) SendEmail(ctx context.Context, params SendEmailParams) (Receipt, error) {
	if err := ctx.Err(); err != nil {
		return Receipt{}, &SendError{Provider: "dev", Err: err}
	}
	if err := params.Validate(); err != nil {
		return Receipt{}, err
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return Receipt{}, &SendError{Provider: "dev", Err: fmt.Errorf("create directory: %w", err)}
	}

	now := d.now().UTC()

	identifier := params.Tag
	if identifier == "" {
		identifier = params.Subject
	}
	base := fmt.Sprintf("%s_%s", now.Format("2006_01_02_150405.000000"), sanitizeFilename(identifier))

	if err := os.WriteFile(filepath.Join(d.dir, base+".txt"), []byte(params.BodyText), 0o644); err != nil {
		return Receipt{}, &SendError{Provider: "dev", Err: fmt.Errorf("write body: %w", err)}
	}

	meta, err := json.MarshalIndent(emailMetadata{
		Timestamp: now.Format(time.RFC3339Nano),
		From:      params.From,
		SendTo:    params.SendTo,
		Subject:   params.Subject,
		Tag:       params.Tag,
	}, "", "  ")
	if err != nil {
		return Receipt{}, &SendError{Provider: "dev", Err: fmt.Errorf("marshal metadata: %w", err)}
	}
	if err := os.WriteFile(filepath.Join(d.dir, base+".json"), meta, 0o644); err != nil {
		return Receipt{}, &SendError{Provider: "dev", Err: fmt.Errorf("write metadata: %w", err)}
	}

	return Receipt{MessageID: base}, nil
}

var sanitizeRegex = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// sanitizeFilename lowercases s, turns spaces into underscores, strips
// anything outside [a-zA-Z0-9-_.] and caps the length at 100.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = sanitizeRegex.ReplaceAllString(s, "")

	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}
	if s == "" {
		s = "email"
	}
	return strings.ToLower(s)
}
