package console

import (
	"testing"

	"github.com/nfrund/userdesk/internal/domain"
	"github.com/nfrund/userdesk/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynchronizer_Reload(t *testing.T) {
	t.Run("rows in server order", func(t *testing.T) {
		h := newHarness(t, true,
			testutils.Record{ID: 1, Username: "amy", Email: "a@x.com"},
			testutils.Record{ID: 2, Username: "bob", Email: "b@x.com"},
		)
		require.NoError(t, h.sync.Reload(ctx))

		st := h.sync.State()
		assert.Equal(t, ViewTable, st.Kind)
		assert.Equal(t, []domain.User{
			{ID: "1", Username: "amy", Email: "a@x.com"},
			{ID: "2", Username: "bob", Email: "b@x.com"},
		}, st.Users)
	})

	t.Run("idempotent for a fixed server state", func(t *testing.T) {
		h := newHarness(t, true, testutils.Record{ID: 1, Username: "amy", Email: "a@x.com"})
		require.NoError(t, h.sync.Reload(ctx))
		first := h.sync.State()
		require.NoError(t, h.sync.Reload(ctx))
		second := h.sync.State()

		assert.Equal(t, first.Kind, second.Kind)
		assert.Equal(t, first.Users, second.Users)
		assert.Greater(t, second.Generation, first.Generation)
	})

	t.Run("empty collection renders the empty state", func(t *testing.T) {
		h := newHarness(t, true)
		require.NoError(t, h.sync.Reload(ctx))

		st := h.sync.State()
		assert.Equal(t, ViewEmpty, st.Kind)
		assert.Empty(t, st.Users)
	})

	t.Run("failure replaces previous rows", func(t *testing.T) {
		h := newHarness(t, true, testutils.Record{ID: 1, Username: "amy", Email: "a@x.com"})
		require.NoError(t, h.sync.Reload(ctx))
		require.Equal(t, ViewTable, h.sync.State().Kind)

		h.endpoint.FailList("Internal Server Error")
		err := h.sync.Reload(ctx)
		require.Error(t, err)
		assert.True(t, domain.IsTransport(err))

		st := h.sync.State()
		assert.Equal(t, ViewError, st.Kind)
		assert.Empty(t, st.Users)
		assert.NotEmpty(t, st.Error)
	})

	t.Run("network failure message is kept verbatim", func(t *testing.T) {
		s := NewSynchronizer(failingClient(t, "network down"))
		require.Error(t, s.Reload(ctx))

		st := s.State()
		assert.Equal(t, ViewError, st.Kind)
		assert.Contains(t, st.Error, "network down")
		assert.Empty(t, st.Users)
	})

	t.Run("state is a copy", func(t *testing.T) {
		h := newHarness(t, true, testutils.Record{ID: 1, Username: "amy", Email: "a@x.com"})
		require.NoError(t, h.sync.Reload(ctx))

		st := h.sync.State()
		st.Users[0].Username = "mallory"
		assert.Equal(t, "amy", h.sync.State().Users[0].Username)
	})
}
