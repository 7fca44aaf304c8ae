package console

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nfrund/userdesk/internal/credential"
	"github.com/nfrund/userdesk/internal/domain"
	"github.com/nfrund/userdesk/internal/gateway"
	"github.com/nfrund/userdesk/internal/notify"
)

// Notifier raises transient notifications. *notify.Center satisfies it.
type Notifier interface {
	Push(ctx context.Context, severity domain.Severity, message string) notify.Notification
}

// Outcome is what happened during one dispatch.
type Outcome struct {
	Action Action
	// Called is true when the endpoint was contacted.
	Called   bool
	Response *gateway.Response
	Err      error
	// Effects lists every effect applied, in order.
	Effects []Effect
	// Notifications lists what this dispatch pushed, oldest first.
	Notifications []notify.Notification
}

// Declined reports whether the operator declined a confirmation.
func (o Outcome) Declined() bool {
	return errors.Is(o.Err, domain.ErrUserDeclined)
}

// Router runs command plans. It is the only place plans touch the gateway,
// the synchronizer and the notification center.
type Router struct {
	handlers map[Action]Handler
	caller   Caller
	sync     *Synchronizer
	notifier Notifier
	gate     *credential.Gate
	gated    map[Action]bool
}

// RouterOption customises a Router.
type RouterOption func(*Router)

// WithGate runs the session gate before the named actions and sends their
// calls with the bearer credential.
func WithGate(gate *credential.Gate, actions ...Action) RouterOption {
	return func(r *Router) {
		r.gate = gate
		for _, a := range actions {
			r.gated[a] = true
		}
	}
}

// WithHandler registers or replaces the handler for an action.
func WithHandler(action Action, h Handler) RouterOption {
	return func(r *Router) {
		r.handlers[action] = h
	}
}

// NewRouter creates a Router with the default handlers.
func NewRouter(caller Caller, sync *Synchronizer, notifier Notifier, opts ...RouterOption) *Router {
	r := &Router{
		handlers: DefaultHandlers(),
		caller:   caller,
		sync:     sync,
		notifier: notifier,
		gated:    make(map[Action]bool),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Handles reports whether action has a handler.
func (r *Router) Handles(action Action) bool {
	_, ok := r.handlers[action]
	return ok
}

// Gated reports whether action runs behind the session gate.
func (r *Router) Gated(action Action) bool {
	return r.gated[action]
}

// Synchronizer returns the view synchronizer.
func (r *Router) Synchronizer() *Synchronizer {
	return r.sync
}

// Dispatch runs one action against surface: session gate, local validation,
// confirmation, endpoint call, then the success or failure effects.
func (r *Router) Dispatch(ctx context.Context, action Action, in Input, surface Surface) Outcome {
	out := Outcome{Action: action}
	log := slog.With("action", string(action))

	h, ok := r.handlers[action]
	if !ok {
		out.Err = fmt.Errorf("%w: %q", domain.ErrUnknownAction, action)
		return out
	}

	gated := r.gated[action]
	if gated && r.gate != nil && !r.requireSession(ctx, surface, &out) {
		out.Err = domain.ErrAuthenticationRequired
		log.InfoContext(ctx, "Action blocked by session gate")
		return out
	}

	plan := h(in)
	r.apply(ctx, surface, &out, plan.Effects)
	if plan.Call == nil {
		out.Err = plan.Err
		return out
	}

	if plan.Confirm != "" && !surface.Confirm(ctx, plan.Confirm) {
		out.Err = domain.ErrUserDeclined
		return out
	}

	call := r.caller.Call
	if gated {
		call = r.caller.CallAuthenticated
	}
	resp, err := call(ctx, plan.Call.Method, plan.Call.Path, plan.Call.Body)
	out.Called = true
	if err != nil {
		out.Err = err
		log.WarnContext(ctx, "Action failed", "method", plan.Call.Method, "path", plan.Call.Path, "error", err)
		if plan.OnFailure != nil {
			r.apply(ctx, surface, &out, plan.OnFailure(err))
		}
		return out
	}

	out.Response = resp
	log.DebugContext(ctx, "Action succeeded", "method", plan.Call.Method, "path", plan.Call.Path, "status", resp.Status)
	if plan.OnSuccess != nil {
		r.apply(ctx, surface, &out, plan.OnSuccess(resp))
	}
	return out
}

func (r *Router) apply(ctx context.Context, surface Surface, out *Outcome, effects []Effect) {
	for _, e := range effects {
		switch e := e.(type) {
		case Notify:
			r.push(ctx, out, e.Severity, e.Message)
		case BlockingNotice:
			surface.NotifyBlocking(ctx, e.Message)
		case Reload:
			if e.OnlyIfTable && !surface.HasTable() {
				continue
			}
			if r.sync != nil {
				_ = r.sync.Reload(ctx)
			}
			surface.Apply(ctx, e)
		default:
			surface.Apply(ctx, e)
		}
		out.Effects = append(out.Effects, e)
	}
}

func (r *Router) push(ctx context.Context, out *Outcome, severity domain.Severity, message string) {
	if r.notifier == nil {
		return
	}
	out.Notifications = append(out.Notifications, r.notifier.Push(ctx, severity, message))
}

func (r *Router) requireSession(ctx context.Context, surface Surface, out *Outcome) bool {
	if r.notifier == nil {
		return r.gate.RequireSession(ctx, surface)
	}
	return r.gate.RequireSessionWith(ctx, outcomeAlerter{r: r, out: out}, surface)
}

// outcomeAlerter routes the gate warning through the router so it is
// recorded on the dispatch outcome.
type outcomeAlerter struct {
	r   *Router
	out *Outcome
}

func (a outcomeAlerter) Warn(ctx context.Context, message string) {
	a.r.push(ctx, a.out, domain.SeverityWarning, message)
}
