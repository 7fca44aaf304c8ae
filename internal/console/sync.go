package console

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/nfrund/userdesk/internal/domain"
	"github.com/nfrund/userdesk/internal/gateway"
)

// Caller is the request gateway as seen by the console.
type Caller interface {
	Call(ctx context.Context, method, path string, body any) (*gateway.Response, error)
	CallAuthenticated(ctx context.Context, method, path string, body any) (*gateway.Response, error)
}

// ViewKind is what the collection region currently shows.
type ViewKind int

const (
	// ViewPending means no reload has completed yet.
	ViewPending ViewKind = iota
	ViewTable
	ViewEmpty
	ViewError
)

// ViewState is one full rendering of the collection. It is never patched;
// each reload replaces it.
type ViewState struct {
	Kind  ViewKind
	Users []domain.User
	// Error is the failure message when Kind is ViewError.
	Error string
	// Generation increases with every replacement.
	Generation uint64
}

// Synchronizer fetches the collection and owns the ViewState.
type Synchronizer struct {
	caller Caller

	mu    sync.Mutex
	state ViewState
}

// NewSynchronizer creates a Synchronizer with a pending view.
func NewSynchronizer(caller Caller) *Synchronizer {
	return &Synchronizer{caller: caller}
}

// Reload reads the full collection and replaces the view with it, with the
// empty state, or with an error panel. When reloads overlap, the last one to
// complete wins. The error is returned for logging only; it is already part
// of the view.
func (s *Synchronizer) Reload(ctx context.Context) error {
	var list domain.UserList
	resp, err := s.caller.Call(ctx, http.MethodGet, UsersPath, nil)
	if err == nil {
		err = resp.Decode(&list)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := ViewState{Generation: s.state.Generation + 1}
	switch {
	case err != nil:
		next.Kind = ViewError
		next.Error = err.Error()
		slog.WarnContext(ctx, "Reload failed", "error", err)
	case len(list.Users) == 0:
		next.Kind = ViewEmpty
	default:
		next.Kind = ViewTable
		next.Users = append([]domain.User(nil), list.Users...)
	}
	s.state = next
	return err
}

// State returns a copy of the current view.
func (s *Synchronizer) State() ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	st.Users = append([]domain.User(nil), s.state.Users...)
	return st
}
