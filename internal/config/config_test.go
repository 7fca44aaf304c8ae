package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.GetAddr())
	assert.Equal(t, "/login-page", cfg.GetLoginPath())
	assert.Equal(t, "accessToken", cfg.GetTokenKey())
	assert.Equal(t, 5*time.Second, cfg.GetNotificationTTL())
	assert.Equal(t, time.Second, cfg.GetRedirectDelay())
	assert.Empty(t, cfg.GetGatedActions())
	assert.Empty(t, cfg.GetAllowedOrigins())
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("USERDESK_ENDPOINT_URL", "http://users.internal:9000")
	t.Setenv("USERDESK_NOTIFICATION_TTL", "2s")
	t.Setenv("USERDESK_GATED_ACTIONS", " Update, delete ")
	t.Setenv("USERDESK_ALLOWED_ORIGINS", "console.example.com, ,*.corp.example")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "http://users.internal:9000", cfg.GetEndpointURL())
	assert.Equal(t, 2*time.Second, cfg.GetNotificationTTL())
	assert.Equal(t, []string{"update", "delete"}, cfg.GetGatedActions())
	assert.Equal(t, []string{"console.example.com", "*.corp.example"}, cfg.GetAllowedOrigins())
}

func TestParse_RejectsNonPositiveTTL(t *testing.T) {
	t.Setenv("USERDESK_NOTIFICATION_TTL", "0s")

	_, err := Parse()
	assert.Error(t, err)
}
