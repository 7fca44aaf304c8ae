package server

import (
	"context"
	"errors"
	"log/slog"
)

// shutdown stops accepting requests, then closes the application services.
func (s *Server) shutdown(ctx context.Context) error {
	slog.Info("Shutting down web console")
	return errors.Join(s.E.Shutdown(ctx), s.App.Close())
}
