package testutils

import (
	"testing"

	"github.com/nfrund/userdesk/internal/config"
	"github.com/stretchr/testify/require"
)

// ConfigForTests returns a parsed configuration built from defaults plus
// overrides. Variables are set with t.Setenv so they are restored after the
// test.
func ConfigForTests(t *testing.T, overrides map[string]string) *config.Config {
	t.Helper()

	env := map[string]string{
		"USERDESK_ENDPOINT_URL":     "http://127.0.0.1:1",
		"USERDESK_SESSION_SECRET":   "test-secret",
		"USERDESK_TOKEN_DIR":        t.TempDir(),
		"USERDESK_NOTIFICATION_TTL": "5s",
		"USERDESK_REDIRECT_DELAY":   "1s",
		"USERDESK_GATED_ACTIONS":    "",
		"USERDESK_ALLOWED_ORIGINS":  "",
		"LOG_FORMAT":                "text",
	}
	for k, v := range overrides {
		env[k] = v
	}
	for k, v := range env {
		t.Setenv(k, v)
	}

	cfg, err := config.Parse()
	require.NoError(t, err)
	return cfg
}
