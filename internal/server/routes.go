package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/userdesk/internal/handlers"
	"github.com/nfrund/userdesk/internal/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	a := s.App
	users := handlers.NewUsersHandler(a.Router, s.state, a.Center, a.Renderer)
	notes := handlers.NewNotificationsHandler(a.Center, a.Bus, a.Renderer,
		handlers.WithOriginPatterns(a.Config.GetAllowedOrigins()...))
	sess := handlers.NewSessionHandler(a.Config.GetTokenKey())
	rateLimiter := middleware.RateLimiter(5, 20)

	s.E.GET("/", users.Page)
	s.E.GET("/users/table", users.Table)

	actions := s.E.Group("/actions", rateLimiter)
	actions.POST("/:action", users.Action)

	s.E.POST("/overlays/create/open", users.OpenCreate)
	s.E.POST("/overlays/create/close", users.CloseCreate)
	s.E.POST("/overlays/edit/close", users.CloseEdit)

	s.E.GET("/notifications", notes.List)
	s.E.DELETE("/notifications/:id", notes.Dismiss)
	s.E.GET("/notifications/ws", notes.Stream)

	s.E.POST("/session", sess.Store, rateLimiter)
	s.E.POST("/session/clear", sess.Clear)

	s.E.GET("/health", handlers.Health(a.Client.BaseURL()))
	s.E.GET("/metrics", echo.WrapHandler(metricsHandler(a.Registry)))
}

// metricsHandler serves reg with the Go runtime and process collectors
// added next to the gateway metrics.
func metricsHandler(reg *prometheus.Registry) http.Handler {
	for _, c := range []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if !errors.As(err, &are) {
				slog.Warn("Failed to register collector", "error", err)
			}
		}
	}
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}
