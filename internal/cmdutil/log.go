package cmdutil

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// NewLogger returns a text slog logger on dst. quiet keeps errors only,
// debug enables debug records. Every record carries a per-run id.
func NewLogger(dst io.Writer, quiet, debug bool) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case quiet:
		level = slog.LevelError
	case debug:
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(dst, &slog.HandlerOptions{Level: level})
	return slog.New(h).With("run", uuid.NewString())
}
