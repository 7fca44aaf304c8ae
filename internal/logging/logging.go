package logging

import (
	"io"
	"log/slog"
	"os"
)

// New initializes a new slog logger and sets it as the default.
// The format is "text" for development or "json" for production; anything
// else falls back to text.
func New(format string) *slog.Logger {
	return NewWithWriter(format, os.Stdout)
}

// NewWithWriter is New with an explicit destination. The CLI logs to stderr
// so command output stays clean.
func NewWithWriter(format string, w io.Writer) *slog.Logger {
	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	default:
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{
			Level:     slog.LevelDebug,
			AddSource: true, // Adds source file and line number
		})
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
