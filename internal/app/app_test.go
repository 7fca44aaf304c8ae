package app

import (
	"testing"

	"github.com/nfrund/userdesk/internal/console"
	"github.com/nfrund/userdesk/internal/credential"
	"github.com/nfrund/userdesk/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	cfg := testutils.ConfigForTests(t, map[string]string{
		"USERDESK_ENDPOINT_URL":  "localhost:5000/",
		"USERDESK_GATED_ACTIONS": "delete,update",
	})

	a, err := New(cfg, credential.StaticProvider{Token: "tok"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	assert.Equal(t, "http://localhost:5000", a.Client.BaseURL())
	assert.True(t, a.Router.Gated(console.ActionDelete))
	assert.True(t, a.Router.Gated(console.ActionUpdate))
	assert.False(t, a.Router.Gated(console.ActionCreate))
	assert.Equal(t, cfg.GetNotificationTTL(), a.Center.TTL())
	assert.NotNil(t, a.Renderer)
	assert.NotNil(t, a.Registry)
}

func TestNew_UnknownGatedAction(t *testing.T) {
	cfg := testutils.ConfigForTests(t, map[string]string{"USERDESK_GATED_ACTIONS": "archive"})

	_, err := New(cfg, credential.StaticProvider{})
	assert.ErrorContains(t, err, `unknown gated action "archive"`)
}

func TestGatedActions(t *testing.T) {
	actions, err := GatedActions(nil)
	require.NoError(t, err)
	assert.Empty(t, actions)

	actions, err = GatedActions([]string{"get", "probe"})
	require.NoError(t, err)
	assert.Equal(t, []console.Action{console.ActionGet, console.ActionProbe}, actions)
}
