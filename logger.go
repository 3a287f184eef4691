package termemu

import (
	"io"
	"log/slog"
)

// NopLogger returns a logger that discards all output.
// Detection is silent unless a logger is configured with WithLogger.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
