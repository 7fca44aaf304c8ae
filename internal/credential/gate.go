package credential

import (
	"context"
	"time"
)

// LoginRequiredMessage is the warning shown when a gated action runs without
// a session.
const LoginRequiredMessage = "Please log in to access this feature"

// Alerter raises a warning notification.
type Alerter interface {
	Warn(ctx context.Context, message string)
}

// Redirector sends the operator to another surface after a delay.
type Redirector interface {
	RedirectAfter(ctx context.Context, path string, delay time.Duration)
}

// Gate is the advisory session check run before gated actions. The endpoint
// remains the authoritative check; callers may skip the gate.
type Gate struct {
	provider  Provider
	alerter   Alerter
	loginPath string
	delay     time.Duration
}

// NewGate creates a Gate that redirects to loginPath after delay.
func NewGate(provider Provider, alerter Alerter, loginPath string, delay time.Duration) *Gate {
	return &Gate{
		provider:  provider,
		alerter:   alerter,
		loginPath: loginPath,
		delay:     delay,
	}
}

// Provider returns the credential source the gate checks.
func (g *Gate) Provider() Provider {
	return g.provider
}

// RequireSession returns true when a session exists. Otherwise it emits one
// warning, schedules a redirect to the login surface and returns false.
func (g *Gate) RequireSession(ctx context.Context, r Redirector) bool {
	return g.RequireSessionWith(ctx, g.alerter, r)
}

// RequireSessionWith is RequireSession with the warning sent to a instead of
// the gate's own alerter.
func (g *Gate) RequireSessionWith(ctx context.Context, a Alerter, r Redirector) bool {
	if g.provider.HasSession(ctx) {
		return true
	}
	a.Warn(ctx, LoginRequiredMessage)
	if r != nil {
		r.RedirectAfter(ctx, g.loginPath, g.delay)
	}
	return false
}
