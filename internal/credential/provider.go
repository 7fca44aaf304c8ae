// Package credential answers whether an operator session exists and supplies
// the bearer token attached to authenticated endpoint calls. The token is
// opaque: its presence is the whole definition of "logged in".
package credential

import (
	"context"
	"strings"
)

// Provider is the source of the session credential.
type Provider interface {
	// HasSession reports whether a credential is present.
	HasSession(ctx context.Context) bool
	// CurrentCredential returns the stored token, if any.
	CurrentCredential(ctx context.Context) (string, bool)
}

type tokenKey struct{}

// WithToken returns a context carrying the session token.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the token stored by WithToken.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey{}).(string)
	if !ok || strings.TrimSpace(token) == "" {
		return "", false
	}
	return token, true
}

// ContextProvider reads the token the session middleware placed on the
// request context.
type ContextProvider struct{}

func (ContextProvider) HasSession(ctx context.Context) bool {
	_, ok := TokenFromContext(ctx)
	return ok
}

func (ContextProvider) CurrentCredential(ctx context.Context) (string, bool) {
	return TokenFromContext(ctx)
}

// StaticProvider always returns the same token. An empty token means no session.
type StaticProvider struct {
	Token string
}

func (p StaticProvider) HasSession(ctx context.Context) bool {
	_, ok := p.CurrentCredential(ctx)
	return ok
}

func (p StaticProvider) CurrentCredential(context.Context) (string, bool) {
	token := strings.TrimSpace(p.Token)
	return token, token != ""
}
