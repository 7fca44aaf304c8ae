package server

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/userdesk/internal/app"
	"github.com/nfrund/userdesk/internal/handlers"
	"github.com/nfrund/userdesk/internal/middleware"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E   *echo.Echo
	App *app.App

	state *handlers.ConsoleState
}

// New creates the echo instance for the web console.
func New(a *app.App) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	if r, ok := a.Renderer.(echo.Renderer); ok {
		e.Renderer = r
	}
	setupErrorHandling(e)

	e.Use(echomw.RequestID())
	e.Use(middleware.Logger)
	e.Use(echomw.Recover())

	store := sessions.NewCookieStore([]byte(a.Config.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))
	e.Use(middleware.Credentials(a.Config.GetTokenKey()))

	return &Server{
		E:     e,
		App:   a,
		state: handlers.NewConsoleState(),
	}
}

// setupErrorHandling logs unhandled errors with a stack trace and leaves
// echo.HTTPError responses to the default handler.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		var he *echo.HTTPError
		if !errors.As(err, &he) {
			slog.Error("Internal Server Error (Unhandled)",
				"error", err.Error(),
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}
