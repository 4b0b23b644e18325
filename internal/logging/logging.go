// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
)

// Init installs a text handler writing to w as the default logger.
// Only warnings and errors are shown unless verbose is set.
func Init(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
