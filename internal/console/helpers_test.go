package console

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/nfrund/userdesk/internal/credential"
	"github.com/nfrund/userdesk/internal/gateway"
	"github.com/nfrund/userdesk/internal/notify"
	"github.com/nfrund/userdesk/internal/testutils"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

type harness struct {
	endpoint *testutils.Endpoint
	client   *gateway.Client
	sync     *Synchronizer
	center   *notify.Center
	router   *Router
	surface  *MemorySurface
	ctrl     *Controller
}

func newHarness(t *testing.T, table bool, seed ...testutils.Record) *harness {
	t.Helper()
	return newHarnessWith(t, table, credential.StaticProvider{}, nil, seed...)
}

func newHarnessWith(t *testing.T, table bool, creds credential.Provider, gated []Action, seed ...testutils.Record) *harness {
	t.Helper()

	ep := testutils.NewEndpoint(t, seed...)
	client, err := gateway.New(ep.URL(), gateway.WithCredentials(creds))
	require.NoError(t, err)

	center := notify.NewCenter(time.Hour)
	t.Cleanup(center.Close)

	sync := NewSynchronizer(client)
	gate := credential.NewGate(creds, center, "/login-page", time.Second)
	router := NewRouter(client, sync, center, WithGate(gate, gated...))
	surface := NewMemorySurface(table)

	return &harness{
		endpoint: ep,
		client:   client,
		sync:     sync,
		center:   center,
		router:   router,
		surface:  surface,
		ctrl:     NewController(router, surface),
	}
}

func (h *harness) messages() []string {
	var out []string
	for _, n := range h.center.Active() {
		out = append(out, n.Message)
	}
	return out
}

func failingClient(t *testing.T, msg string) *gateway.Client {
	t.Helper()
	hc := &http.Client{Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New(msg)
	})}
	client, err := gateway.New("http://endpoint.invalid", gateway.WithHTTPClient(hc))
	require.NoError(t, err)
	return client
}

var ctx = context.Background()
