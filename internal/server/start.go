package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

// Start runs the HTTP server until ctx is canceled, then shuts down within
// ten seconds.
func (s *Server) Start(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting web console", "addr", addr, "endpoint", s.App.Client.BaseURL())
		if err := s.E.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.shutdown(shutdownCtx)
}
