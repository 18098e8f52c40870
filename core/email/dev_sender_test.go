package email

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDevSender_SendEmail(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "out")
	s := NewDevSender(dir)
	s.now = func() time.Time { return time.Date(2024, 1, 15, 14, 30, 52, 0, time.UTC) }

	receipt, err := s.SendEmail(context.Background(), SendEmailParams{
		From:     "noreply@example.com",
		SendTo:   "user@example.com",
		Subject:  "Order Confirmation #12345",
		BodyText: "Thanks for your order",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024_01_15_143052.000000_order_confirmation_12345", receipt.MessageID)

	body, err := os.ReadFile(filepath.Join(dir, receipt.MessageID+".txt"))
	require.NoError(t, err)
	assert.Equal(t, "Thanks for your order", string(body))

	raw, err := os.ReadFile(filepath.Join(dir, receipt.MessageID+".json"))
	require.NoError(t, err)

	var meta emailMetadata
	require.NoError(t, json.Unmarshal(raw, &meta))
	assert.Equal(t, "2024-01-15T14:30:52Z", meta.Timestamp)
	assert.Equal(t, "noreply@example.com", meta.From)
	assert.Equal(t, "user@example.com", meta.SendTo)
	assert.Empty(t, meta.Tag)
}

func TestDevSender_PrefersTag(t *testing.T) {
	t.Parallel()

	s := NewDevSender(t.TempDir())
	receipt, err := s.SendEmail(context.Background(), SendEmailParams{
		From:     "noreply@example.com",
		SendTo:   "user@example.com",
		Subject:  "Subject",
		BodyText: "Body",
		Tag:      "welcome",
	})
	require.NoError(t, err)
	assert.Contains(t, receipt.MessageID, "_welcome")
}

func TestDevSender_InvalidParams(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "never")
	_, err := NewDevSender(dir).SendEmail(context.Background(), SendEmailParams{SendTo: "user@example.com"})
	assert.ErrorIs(t, err, ErrInvalidParams)

	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestDevSender_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDevSender(t.TempDir()).SendEmail(ctx, SendEmailParams{})
	assert.ErrorIs(t, err, ErrFailedToSendEmail)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello_world"},
		{"Re: Invoice #42!", "re_invoice_42"},
		{"***", "email"},
		{"", "email"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeFilename(tt.in), tt.in)
	}

	long := make([]byte, 150)
	for i := range long {
		long[i] = 'a'
	}
	assert.Len(t, sanitizeFilename(string(long)), 100)
}
