// Package logging configures structured logging with tint.
//
// The terminal is owned by the UI, so logs normally go to a file:
//
//	logger, closeFn, err := logging.SetupFile("tip-calculator.log", "debug")
//	defer closeFn()
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// New returns a tint logger writing to w at the named level.
// Colours are only used when color is true.
func New(w io.Writer, level string, color bool) *slog.Logger {
	return slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      ParseLevel(level),
			TimeFormat: time.Kitchen,
			NoColor:    !color,
		}),
	)
}

// SetupFile opens path for appending, installs a logger on it as the slog
// default and returns it along with a function closing the file.
func SetupFile(path, level string) (*slog.Logger, func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}

	logger := New(f, level, false)
	slog.SetDefault(logger)
	return logger, f.Close, nil
}

// ParseLevel maps debug, info, warn and error to slog levels (default: info).
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
