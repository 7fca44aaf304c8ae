package console

import (
	"net/http"
	"testing"

	"github.com/nfrund/userdesk/internal/domain"
	"github.com/nfrund/userdesk/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amy() testutils.Record {
	return testutils.Record{ID: 1, Username: "amy", Email: "a@x.com"}
}

func TestController_Scenarios(t *testing.T) {
	// The scenarios run in sequence against one endpoint.
	h := newHarness(t, true, amy())
	require.NoError(t, h.sync.Reload(ctx))

	t.Run("A create appends a server-assigned id", func(t *testing.T) {
		h.surface.Form.Create = FormValues{Username: "bob", Email: "b@x.com"}
		h.surface.Overlays[OverlayCreate] = true

		out := h.ctrl.Create(ctx, "bob", "b@x.com")
		require.NoError(t, out.Err)

		st := h.sync.State()
		require.Equal(t, ViewTable, st.Kind)
		require.Len(t, st.Users, 2)
		assert.Equal(t, domain.UserID("1"), st.Users[0].ID)
		assert.Equal(t, domain.UserID("2"), st.Users[1].ID)
		assert.Equal(t, "bob", st.Users[1].Username)

		assert.Equal(t, FormValues{}, h.surface.Form.Create)
		assert.False(t, h.surface.OverlayOpen(OverlayCreate))
		assert.Contains(t, h.surface.Diagnostic.Text, `"username": "bob"`)
		assert.Contains(t, h.messages(), MsgCreated)
	})

	t.Run("B update replaces one row", func(t *testing.T) {
		h.ctrl.OpenEdit(ctx, domain.User{ID: "1", Username: "amy", Email: "a@x.com"})
		require.True(t, h.surface.OverlayOpen(OverlayEdit))

		out := h.ctrl.Update(ctx, "1", "amy2", "a2@x.com")
		require.NoError(t, out.Err)

		st := h.sync.State()
		require.Len(t, st.Users, 2)
		assert.Equal(t, domain.User{ID: "1", Username: "amy2", Email: "a2@x.com"}, st.Users[0])
		assert.Equal(t, domain.User{ID: "2", Username: "bob", Email: "b@x.com"}, st.Users[1])
		assert.False(t, h.surface.OverlayOpen(OverlayEdit))
		assert.Equal(t, FormState{}, h.surface.Form)
		assert.True(t, h.surface.Changed(RegionEditOverlay))
		assert.Contains(t, h.messages(), MsgUpdated)
		require.Len(t, out.Notifications, 1)
		assert.Equal(t, MsgUpdated, out.Notifications[0].Message)
	})

	t.Run("C confirmed delete removes the row", func(t *testing.T) {
		h.surface.ConfirmAnswer = true
		out := h.ctrl.Delete(ctx, "2")
		require.NoError(t, out.Err)

		st := h.sync.State()
		require.Len(t, st.Users, 1)
		assert.Equal(t, domain.UserID("1"), st.Users[0].ID)
		assert.Contains(t, h.messages(), MsgDeleted)
	})
}

func TestController_NoTableSkipsReload(t *testing.T) {
	h := newHarness(t, false, amy())
	h.surface.ConfirmAnswer = true

	require.NoError(t, h.ctrl.Update(ctx, "1", "amy2", "a2@x.com").Err)
	require.NoError(t, h.ctrl.Delete(ctx, "1").Err)

	hits := h.endpoint.Hits()
	require.Len(t, hits, 2)
	assert.Equal(t, http.MethodPut, hits[0].Method)
	assert.Equal(t, http.MethodDelete, hits[1].Method)
	assert.Zero(t, h.surface.Reloads)
	assert.Equal(t, []string{MsgDeleted, MsgUpdated}, h.messages())
}

func TestController_EmptyCollection(t *testing.T) {
	h := newHarness(t, true)
	require.NoError(t, h.ctrl.Refresh(ctx))

	st := h.sync.State()
	assert.Equal(t, ViewEmpty, st.Kind)
	assert.Nil(t, st.Users)
}

func TestController_NetworkDown(t *testing.T) {
	h := newHarness(t, true, amy())
	require.NoError(t, h.sync.Reload(ctx))

	client := failingClient(t, "network down")
	sync := h.sync
	sync.caller = client
	router := NewRouter(client, sync, h.center)
	ctrl := NewController(router, h.surface)

	require.Error(t, ctrl.Refresh(ctx))

	st := sync.State()
	assert.Equal(t, ViewError, st.Kind)
	assert.Contains(t, st.Error, "network down")
	assert.Empty(t, st.Users)
}

func TestController_Create(t *testing.T) {
	t.Run("no table skips the reload", func(t *testing.T) {
		h := newHarness(t, false)
		out := h.ctrl.Create(ctx, "bob", "b@x.com")
		require.NoError(t, out.Err)

		hits := h.endpoint.Hits()
		require.Len(t, hits, 1)
		assert.Equal(t, http.MethodPost, hits[0].Method)
		assert.Equal(t, "application/json", hits[0].ContentType)
		assert.JSONEq(t, `{"username":"bob","email":"b@x.com"}`, hits[0].Body)
		assert.Zero(t, h.surface.Reloads)
		assert.Equal(t, ViewPending, h.sync.State().Kind)
		assert.Contains(t, h.messages(), MsgCreated)
	})

	t.Run("failure keeps the form and overlay", func(t *testing.T) {
		h := newHarness(t, true)
		h.router.caller = failingClient(t, "connection refused")
		h.surface.Form.Create = FormValues{Username: "bob", Email: "b@x.com"}
		h.surface.Overlays[OverlayCreate] = true

		out := h.ctrl.Create(ctx, "bob", "b@x.com")
		require.Error(t, out.Err)

		assert.Equal(t, FormValues{Username: "bob", Email: "b@x.com"}, h.surface.Form.Create)
		assert.True(t, h.surface.OverlayOpen(OverlayCreate))
		require.Len(t, h.center.Active(), 1)
		assert.Equal(t, domain.SeverityDanger, h.center.Active()[0].Severity)
		assert.Contains(t, h.messages()[0], "Error creating user: ")
		assert.Contains(t, h.messages()[0], "connection refused")
	})
}

func TestController_ReadOne(t *testing.T) {
	t.Run("blank id prompts and makes no call", func(t *testing.T) {
		h := newHarness(t, true, amy())
		out := h.ctrl.ReadOne(ctx, "  ")

		var verr *domain.ValidationError
		require.ErrorAs(t, out.Err, &verr)
		assert.Equal(t, []string{MsgEnterUserID}, h.surface.Blocking)
		assert.Zero(t, h.endpoint.HitCount())
		assert.False(t, h.surface.Diagnostic.Visible)
	})

	t.Run("payload goes to the diagnostic panel", func(t *testing.T) {
		h := newHarness(t, true, amy())
		out := h.ctrl.ReadOne(ctx, "1")
		require.NoError(t, out.Err)

		assert.True(t, h.surface.Diagnostic.Visible)
		assert.True(t, h.surface.Diagnostic.ScrollIntoView)
		assert.Contains(t, h.surface.Diagnostic.Text, `"username": "amy"`)
		assert.Equal(t, "/users/1", h.endpoint.Hits()[0].Path)
	})

	t.Run("a 404 body is shown, not an error", func(t *testing.T) {
		h := newHarness(t, true)
		out := h.ctrl.ReadOne(ctx, "99")
		require.NoError(t, out.Err)
		assert.Equal(t, http.StatusNotFound, out.Response.Status)
		assert.Contains(t, h.surface.Diagnostic.Text, "User not found")
	})
}

func TestController_Probe(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h := newHarness(t, true)
		out := h.ctrl.Probe(ctx, "/health")
		require.NoError(t, out.Err)
		assert.Contains(t, h.surface.Diagnostic.Text, `"status": "healthy"`)
	})

	t.Run("failure text is visible", func(t *testing.T) {
		h := newHarness(t, true)
		h.router.caller = failingClient(t, "network down")

		out := h.ctrl.Probe(ctx, "/health")
		require.Error(t, out.Err)
		assert.True(t, h.surface.Diagnostic.Visible)
		assert.Contains(t, h.surface.Diagnostic.Text, "Error: ")
		assert.Contains(t, h.surface.Diagnostic.Text, "network down")
	})
}

func TestController_UpdateFailureLeavesOverlayOpen(t *testing.T) {
	h := newHarness(t, true, amy())
	h.ctrl.OpenEdit(ctx, domain.User{ID: "1", Username: "amy", Email: "a@x.com"})
	h.router.caller = failingClient(t, "timeout")

	out := h.ctrl.Update(ctx, "1", "amy2", "a2@x.com")
	require.Error(t, out.Err)

	assert.True(t, h.surface.OverlayOpen(OverlayEdit))
	assert.Equal(t, "1", h.surface.Form.EditID)
	assert.Zero(t, h.surface.Reloads)
	assert.Contains(t, h.messages()[0], "Error updating user: ")
}

func TestController_DeleteFailureSkipsReload(t *testing.T) {
	h := newHarness(t, true, amy())
	h.surface.ConfirmAnswer = true
	h.router.caller = failingClient(t, "timeout")

	out := h.ctrl.Delete(ctx, "1")
	require.Error(t, out.Err)
	assert.Zero(t, h.surface.Reloads)
	assert.Contains(t, h.messages()[0], "Error deleting user: ")
}
