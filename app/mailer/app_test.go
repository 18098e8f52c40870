package mailer_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sendemail/app/mailer"
	"github.com/dmitrymomot/sendemail/core/logger"
	"github.com/dmitrymomot/sendemail/core/response"
	"github.com/dmitrymomot/sendemail/integration/email/postmark"
	"github.com/dmitrymomot/sendemail/integration/email/sendgrid"
)

const validBody = `{"receiver_email":"a@b.com","subject":"Hi","body_text":"Hello"}`

func quietLogger() mailer.AppOption {
	return mailer.WithLogger(logger.New(logger.WithOutput(io.Discard)))
}

func invoke(t *testing.T, app *mailer.App, body string) (int, response.Envelope) {
	t.Helper()

	resp, err := app.Handler().HandleRequest(context.Background(), events.APIGatewayProxyRequest{Body: body})
	require.NoError(t, err)

	var env response.Envelope
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &env))
	return resp.StatusCode, env
}

func TestNew_UnknownProvider(t *testing.T) {
	t.Parallel()

	app, err := mailer.New(mailer.Config{Provider: "mailgun"}, quietLogger())
	require.ErrorIs(t, err, mailer.ErrUnknownProvider)
	assert.Nil(t, app)
}

func TestNew_NilOptions(t *testing.T) {
	t.Parallel()

	_, err := mailer.New(mailer.Config{}, mailer.WithLogger(nil))
	require.Error(t, err)

	_, err = mailer.New(mailer.Config{}, mailer.WithSender(nil))
	require.Error(t, err)
}

func TestNew_MissingCredentials(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     mailer.Config
		wantMsg string
	}{
		{
			name:    "default provider",
			cfg:     mailer.Config{FromEmail: "noreply@example.com"},
			wantMsg: "SENDGRID_API_KEY environment variable is not configured",
		},
		{
			name:    "sendgrid",
			cfg:     mailer.Config{Provider: "SendGrid", FromEmail: "noreply@example.com"},
			wantMsg: "SENDGRID_API_KEY environment variable is not configured",
		},
		{
			name:    "postmark",
			cfg:     mailer.Config{Provider: "postmark", FromEmail: "noreply@example.com"},
			wantMsg: "POSTMARK_SERVER_TOKEN environment variable is not configured",
		},
		{
			name:    "missing sender address",
			cfg:     mailer.Config{SendGrid: sendgrid.Config{APIKey: "SG.test"}},
			wantMsg: "FROM_EMAIL environment variable is not configured",
		},
		{
			name:    "postmark missing sender address",
			cfg:     mailer.Config{Provider: mailer.ProviderPostmark, Postmark: postmark.Config{ServerToken: "pm"}},
			wantMsg: "FROM_EMAIL environment variable is not configured",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app, err := mailer.New(tt.cfg, quietLogger())
			require.NoError(t, err)

			status, env := invoke(t, app, validBody)
			assert.Equal(t, http.StatusInternalServerError, status)
			assert.Equal(t, "Server configuration error", env.Error)
			assert.Equal(t, tt.wantMsg, env.Message)
		})
	}
}

func TestNew_DevProvider(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	app, err := mailer.New(mailer.Config{
		Provider:  mailer.ProviderDev,
		FromEmail: "noreply@example.com",
		DevDir:    dir,
	}, quietLogger())
	require.NoError(t, err)
	assert.Equal(t, mailer.ProviderDev, app.Config().Provider)

	status, env := invoke(t, app, validBody)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)
	assert.True(t, strings.HasSuffix(env.MessageID, "_hi"), env.MessageID)

	content, err := os.ReadFile(filepath.Join(dir, env.MessageID+".txt"))
	require.NoError(t, err)
	assert.Equal(t, "Hello", string(content))
}

func TestNew_SendGridProvider(t *testing.T) {
	t.Parallel()

	app, err := mailer.New(mailer.Config{
		SendGrid:  sendgrid.Config{APIKey: "SG.test", Host: "https://api.sendgrid.com"},
		FromEmail: "noreply@example.com",
	}, quietLogger())
	require.NoError(t, err)
	require.NotNil(t, app.Handler())
	require.NotNil(t, app.Logger())

	status, env := invoke(t, app, `{"receiver_email":"bad","subject":"Hi","body_text":"Hello"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid email format", env.Error)
}

func TestConfig_Addr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "localhost:8080", mailer.Config{HTTPHost: "localhost", HTTPPort: "8080"}.Addr())
}

func TestNew_PostmarkRejectionReachesEnvelope(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = io.WriteString(w, `{"ErrorCode":300,"Message":"Invalid 'To' address: 'x'."}`)
	}))
	t.Cleanup(srv.Close)

	app, err := mailer.New(mailer.Config{
		Provider:  mailer.ProviderPostmark,
		Postmark:  postmark.Config{ServerToken: "pm", Host: srv.URL},
		FromEmail: "noreply@example.com",
	}, quietLogger())
	require.NoError(t, err)

	status, env := invoke(t, app, validBody)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid request", env.Error)
	assert.Equal(t, "Postmark error: Invalid 'To' address: 'x'.", env.Message)
}

func TestNew_LoggerFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("text format in production", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		_, err := mailer.New(mailer.Config{Provider: mailer.ProviderDev, AppName: "svc", LogFormat: "text"}, mailer.WithLogOutput(&buf))
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, `msg="sender address is not configured"`)
		assert.Contains(t, out, "mail_provider=dev")
		assert.Contains(t, out, "env=production")
	})

	t.Run("json format in development", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		_, err := mailer.New(mailer.Config{Env: "development", LogFormat: "JSON"}, mailer.WithLogOutput(&buf))
		require.NoError(t, err)

		line, _, _ := strings.Cut(buf.String(), "\n")
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		assert.Equal(t, "email provider is not configured", rec["msg"])
		assert.Equal(t, "sendgrid", rec["mail_provider"])
		assert.Equal(t, "development", rec["env"])
	})

	t.Run("nil output", func(t *testing.T) {
		t.Parallel()

		_, err := mailer.New(mailer.Config{}, mailer.WithLogOutput(nil))
		require.Error(t, err)
	})
}
