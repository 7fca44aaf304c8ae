package middleware

import (
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/userdesk/internal/credential"
)

// SessionName is the cookie session holding the operator token.
const SessionName = "userdesk-session"

// Credentials copies the token stored under tokenKey in the operator
// session onto the request context, where credential.ContextProvider finds
// it. A missing or unreadable session leaves the context untouched; the
// session gate and the endpoint decide what that means.
func Credentials(tokenKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := session.Get(SessionName, c)
			if err != nil {
				FromContext(c.Request().Context()).Debug("Session unavailable", "error", err)
				return next(c)
			}
			if token, ok := sess.Values[tokenKey].(string); ok && token != "" {
				ctx := credential.WithToken(c.Request().Context(), token)
				c.SetRequest(c.Request().WithContext(ctx))
			}
			return next(c)
		}
	}
}
