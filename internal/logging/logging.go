// Package logging builds the structured loggers used across the game.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// ParseLevel converts a textual log level into a log.Level.
// Unknown values fall back to info.
func ParseLevel(value string) log.Level {
	level, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(value)))
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// New constructs a logger writing to w at the given level.
func New(w io.Writer, level string) *log.Logger {
	if w == nil {
		w = os.Stderr
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
		Level:           ParseLevel(level),
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// OpenFile returns a logger appending to path, creating parent directories.
// An empty path yields a discarding logger. The returned closer must be
// closed when done.
func OpenFile(path, level string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return Discard(), io.NopCloser(nil), nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("logging: cannot create directory for %s: %w", path, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: cannot open %s: %w", path, err)
	}

	return New(f, level), f, nil
}
