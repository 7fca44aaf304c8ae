package middleware

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

type contextKey string

const loggerKey = contextKey("logger")

// Logger stores a logger tagged with the request id, method and route in
// the request context. It must run after echo's RequestID middleware.
func Logger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		logger := slog.Default().With(
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			"method", req.Method,
			"route", c.Path(),
		)
		if action := c.Param("action"); action != "" {
			logger = logger.With("action", action)
		}
		c.SetRequest(req.WithContext(context.WithValue(req.Context(), loggerKey, logger)))
		return next(c)
	}
}

// FromContext returns the request logger, or slog.Default outside a request.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
