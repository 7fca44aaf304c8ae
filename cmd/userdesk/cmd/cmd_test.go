package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nfrund/userdesk/internal/testutils"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	out    string
	errOut string
	err    error
}

func run(t *testing.T, ep *testutils.Endpoint, env map[string]string, args ...string) result {
	t.Helper()

	overrides := map[string]string{"LOG_FORMAT": "json"}
	if ep != nil {
		overrides["USERDESK_ENDPOINT_URL"] = ep.URL()
	}
	for k, v := range env {
		overrides[k] = v
	}
	testutils.ConfigForTests(t, overrides)

	endpointFlag, tokenFlag, assumeYes, outputFormat = "", "", false, "table"
	userUsername, userEmail, serveAddr = "", "", ""

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return result{out: out.String(), errOut: errOut.String(), err: err}
}

func useMemFs(t *testing.T) afero.Fs {
	t.Helper()
	orig := tokenFs
	tokenFs = afero.NewMemMapFs()
	t.Cleanup(func() { tokenFs = orig })
	return tokenFs
}

func TestVersion(t *testing.T) {
	r := run(t, nil, nil, "version")
	require.NoError(t, r.err)
	assert.Equal(t, "userdesk v"+version+"\n", r.out)
}

func TestUsersList(t *testing.T) {
	useMemFs(t)
	ep := testutils.NewEndpoint(t, testutils.Record{ID: 1, Username: "amy", Email: "a@x.com"})

	r := run(t, ep, nil, "users", "list")
	require.NoError(t, r.err)
	assert.Contains(t, r.out, "USERNAME")
	assert.Contains(t, r.out, "amy")

	r = run(t, ep, nil, "users", "list", "--format", "json")
	require.NoError(t, r.err)
	assert.JSONEq(t, `{"users":[{"id":"1","username":"amy","email":"a@x.com"}],"count":1}`, r.out)

	r = run(t, ep, nil, "users", "list", "--format", "xml")
	assert.ErrorContains(t, r.err, "unsupported output format")
}

func TestUsersCreate(t *testing.T) {
	useMemFs(t)
	ep := testutils.NewEndpoint(t)

	r := run(t, ep, nil, "users", "create", "--username", "bob", "--email", "b@x.com")
	require.NoError(t, r.err)
	assert.Contains(t, r.errOut, "[Success] User created successfully!")
	assert.Contains(t, r.out, `"username": "bob"`)
	require.Len(t, ep.Users(), 1)

	// The terminal shows no table, so no reload follows the create.
	hits := ep.Hits()
	require.Len(t, hits, 1)
	assert.Equal(t, "POST", hits[0].Method)

	r = run(t, ep, nil, "users", "create", "--username", "", "--email", "c@x.com")
	assert.Error(t, r.err)
	assert.Contains(t, r.errOut, "[Warning] Please fill in all fields")
	assert.Equal(t, 1, ep.HitCount())
}

func TestUsersGet(t *testing.T) {
	useMemFs(t)
	ep := testutils.NewEndpoint(t, testutils.Record{ID: 1, Username: "amy", Email: "a@x.com"})

	r := run(t, ep, nil, "users", "get", "1")
	require.NoError(t, r.err)
	assert.Contains(t, r.out, `"username": "amy"`)

	r = run(t, ep, nil, "users", "get")
	assert.Error(t, r.err)
	assert.Contains(t, r.errOut, "Please enter a user ID")
}

func TestUsersDelete(t *testing.T) {
	useMemFs(t)
	gated := map[string]string{"USERDESK_GATED_ACTIONS": "delete"}

	t.Run("declined without a terminal", func(t *testing.T) {
		ep := testutils.NewEndpoint(t, testutils.Record{ID: 1, Username: "amy", Email: "a@x.com"})
		r := run(t, ep, nil, "users", "delete", "1")
		require.NoError(t, r.err)
		assert.Zero(t, ep.HitCount())
		assert.Len(t, ep.Users(), 1)
	})

	t.Run("gated without a token", func(t *testing.T) {
		ep := testutils.NewEndpoint(t, testutils.Record{ID: 1, Username: "amy", Email: "a@x.com"})
		r := run(t, ep, gated, "users", "delete", "1", "--yes")
		assert.Error(t, r.err)
		assert.Contains(t, r.errOut, "[Warning] Please log in to access this feature")
		assert.Zero(t, ep.HitCount())
	})

	t.Run("gated after login", func(t *testing.T) {
		ep := testutils.NewEndpoint(t, testutils.Record{ID: 1, Username: "amy", Email: "a@x.com"})
		require.NoError(t, run(t, ep, gated, "login", "--token", "tok-9").err)

		r := run(t, ep, gated, "users", "delete", "1", "--yes")
		require.NoError(t, r.err)
		assert.Contains(t, r.errOut, "User deleted successfully!")
		assert.Empty(t, ep.Users())
		hits := ep.Hits()
		require.Len(t, hits, 1, "no reload follows on the terminal")
		assert.Equal(t, "DELETE", hits[0].Method)
		assert.Equal(t, "Bearer tok-9", hits[0].Authorization)

		require.NoError(t, run(t, ep, gated, "logout").err)
		r = run(t, ep, gated, "users", "delete", "1", "--yes")
		assert.Error(t, r.err)
	})
}

func TestProbe(t *testing.T) {
	useMemFs(t)
	ep := testutils.NewEndpoint(t)

	r := run(t, ep, nil, "probe", "/health")
	require.NoError(t, r.err)
	assert.Contains(t, r.out, `"status": "healthy"`)
}
