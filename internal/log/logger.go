package log

import (
	"io"
	"log/slog"
)

// NewLogger creates a structured logger writing text records to w.
// When verbose is false only warnings and errors are emitted; verbose
// drops the level to debug. Resolution itself never logs, so the quiet
// default keeps normal CLI output clean.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}
