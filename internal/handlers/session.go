package handlers

import (
	"net/http"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/userdesk/internal/middleware"
	"github.com/nfrund/userdesk/internal/view"
)

// SessionHandler stores and clears the operator token. It stands in for the
// external token store and performs no authentication of its own.
type SessionHandler struct {
	tokenKey string
}

// NewSessionHandler creates a SessionHandler writing under tokenKey.
func NewSessionHandler(tokenKey string) *SessionHandler {
	return &SessionHandler{tokenKey: tokenKey}
}

// Store saves the posted token in the session.
func (h *SessionHandler) Store(c echo.Context) error {
	var req SessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form").SetInternal(err)
	}
	if err := c.Validate(&req); err != nil {
		view.SetFlashError(c, "Token must not be empty")
		return c.Redirect(http.StatusSeeOther, "/")
	}

	sess, err := session.Get(middleware.SessionName, c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "session unavailable").SetInternal(err)
	}
	sess.Values[h.tokenKey] = req.Token
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to save session").SetInternal(err)
	}

	view.SetFlashSuccess(c, "Session stored")
	return c.Redirect(http.StatusSeeOther, "/")
}

// Clear removes the token from the session.
func (h *SessionHandler) Clear(c echo.Context) error {
	sess, err := session.Get(middleware.SessionName, c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "session unavailable").SetInternal(err)
	}
	delete(sess.Values, h.tokenKey)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to save session").SetInternal(err)
	}

	view.SetFlashSuccess(c, "Session cleared")
	return c.Redirect(http.StatusSeeOther, "/")
}
