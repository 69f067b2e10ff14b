package logging

import (
	"fmt"
	"log/slog"
	"strings"
)

// ParseLevel converts a level name (DEBUG, INFO, WARN, ERROR) into a
// slog.Level. An empty name means INFO.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "", "INFO":
		return slog.LevelInfo, nil
	case "DEBUG":
		return slog.LevelDebug, nil
	case "WARN", "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unsupported log level: %s", name)
	}
}

// Truncate shortens s to at most n bytes for span end lines.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
