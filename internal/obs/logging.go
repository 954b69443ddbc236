// Package obs contains the structured logger shared by the service packages.
package obs

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is the global structured logger. It discards output until
// InitLogger is called, so packages and tests can log unconditionally.
var Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))

// InitLogger replaces Logger with a JSON handler on stdout at level
// ("debug", "info", "warn" or "error"; default info).
func InitLogger(level string) {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(level)})
	Logger = slog.New(h)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
