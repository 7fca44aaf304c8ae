package terminal

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/nfrund/userdesk/internal/console"
	"github.com/nfrund/userdesk/internal/domain"
	"github.com/nfrund/userdesk/internal/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubTerminal(t *testing.T, interactive bool) {
	t.Helper()
	orig := isTerminal
	isTerminal = func(int) bool { return interactive }
	t.Cleanup(func() { isTerminal = orig })
}

func TestSurface_Confirm(t *testing.T) {
	ctx := context.Background()

	t.Run("interactive yes", func(t *testing.T) {
		stubTerminal(t, true)
		var out, errOut bytes.Buffer
		s := NewSurface(strings.NewReader("y\n"), &out, &errOut)

		assert.True(t, s.Confirm(ctx, console.MsgConfirmDelete))
		assert.Contains(t, out.String(), console.MsgConfirmDelete+" [y/N]")
	})

	t.Run("interactive default is no", func(t *testing.T) {
		stubTerminal(t, true)
		var out, errOut bytes.Buffer
		s := NewSurface(strings.NewReader("\n"), &out, &errOut)
		assert.False(t, s.Confirm(ctx, console.MsgConfirmDelete))
	})

	t.Run("non-interactive declines", func(t *testing.T) {
		stubTerminal(t, false)
		var out, errOut bytes.Buffer
		s := NewSurface(strings.NewReader("y\n"), &out, &errOut)

		assert.False(t, s.Confirm(ctx, console.MsgConfirmDelete))
		assert.Contains(t, errOut.String(), "--yes")
	})

	t.Run("assume yes", func(t *testing.T) {
		stubTerminal(t, false)
		var out, errOut bytes.Buffer
		s := NewSurface(strings.NewReader(""), &out, &errOut, WithAssumeYes(true))
		assert.True(t, s.Confirm(ctx, console.MsgConfirmDelete))
	})
}

func TestSurface_Effects(t *testing.T) {
	ctx := context.Background()
	var out, errOut bytes.Buffer
	s := NewSurface(strings.NewReader(""), &out, &errOut)

	assert.False(t, s.HasTable())

	s.Apply(ctx, console.ShowDiagnostic{Text: `{"ok": true}`})
	s.Apply(ctx, console.OpenOverlay{Overlay: console.OverlayEdit})
	assert.Equal(t, "{\"ok\": true}\n", out.String())

	s.NotifyBlocking(ctx, console.MsgEnterUserID)
	s.RedirectAfter(ctx, "/login-page", 0)
	assert.Contains(t, errOut.String(), console.MsgEnterUserID)
	assert.Contains(t, errOut.String(), "userdesk login")
}

func TestReadToken(t *testing.T) {
	t.Run("piped", func(t *testing.T) {
		stubTerminal(t, false)
		var w bytes.Buffer
		token, err := ReadToken(bufio.NewReader(strings.NewReader(" tok-1 \n")), 0, &w)
		require.NoError(t, err)
		assert.Equal(t, "tok-1", token)
		assert.Empty(t, w.String())
	})

	t.Run("terminal", func(t *testing.T) {
		stubTerminal(t, true)
		orig := readPassword
		readPassword = func(int) ([]byte, error) { return []byte("secret"), nil }
		t.Cleanup(func() { readPassword = orig })

		var w bytes.Buffer
		token, err := ReadToken(bufio.NewReader(strings.NewReader("")), 0, &w)
		require.NoError(t, err)
		assert.Equal(t, "secret", token)
		assert.Contains(t, w.String(), "Enter access token")
	})

	t.Run("terminal error", func(t *testing.T) {
		stubTerminal(t, true)
		orig := readPassword
		readPassword = func(int) ([]byte, error) { return nil, errors.New("tty gone") }
		t.Cleanup(func() { readPassword = orig })

		_, err := ReadToken(bufio.NewReader(strings.NewReader("")), 0, &bytes.Buffer{})
		assert.EqualError(t, err, "tty gone")
	})
}

func TestPrintView(t *testing.T) {
	var w bytes.Buffer
	PrintView(&w, console.ViewState{Kind: console.ViewTable, Users: []domain.User{{ID: "1", Username: "amy", Email: "a@x.com"}}})
	assert.Contains(t, w.String(), "USERNAME")
	assert.Contains(t, w.String(), "amy")

	w.Reset()
	PrintView(&w, console.ViewState{Kind: console.ViewEmpty})
	assert.Contains(t, w.String(), "No users found")

	w.Reset()
	PrintView(&w, console.ViewState{Kind: console.ViewError, Error: "network down"})
	assert.Equal(t, "Error loading users: network down\n", w.String())
}

func TestPrintViewJSON(t *testing.T) {
	var w bytes.Buffer
	require.NoError(t, PrintViewJSON(&w, console.ViewState{Kind: console.ViewEmpty}))
	assert.JSONEq(t, `{"users":[],"count":0}`, w.String())

	assert.Error(t, PrintViewJSON(&w, console.ViewState{Kind: console.ViewError, Error: "x"}))
}

func TestPrintNotifications(t *testing.T) {
	var w bytes.Buffer
	PrintNotifications(&w, []notify.Notification{
		{ID: uuid.New(), Severity: domain.SeveritySuccess, Message: "second"},
		{ID: uuid.New(), Severity: domain.SeverityWarning, Message: "first"},
	})
	assert.Equal(t, "[Warning] first\n[Success] second\n", w.String())
}
