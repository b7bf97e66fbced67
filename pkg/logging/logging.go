// Package logging provides the shared structured logger.
//
// Every component derives its logger from one base handler writing text
// records to stderr, so output never mixes with a terminal UI on stdout.
// The level is read once from EXPANDING_LOG_LEVEL (debug, info, warn, error);
// the default is info.
//
//	log := logging.New("config")
//	log.Info("loaded attributes", "path", p)
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	initLogger sync.Once
	baseLogger *slog.Logger
)

// New returns a logger tagged with component=name.
// An empty component returns the base logger.
func New(component string) *slog.Logger {
	initLogger.Do(func() {
		if baseLogger == nil {
			baseLogger = newLogger(os.Stderr, os.Getenv("EXPANDING_LOG_LEVEL"))
		}
	})
	if component == "" {
		return baseLogger
	}
	return baseLogger.With("component", component)
}

// SetOutput replaces the base logger with one writing to w at the given level.
// Loggers already returned by New keep their previous handler.
func SetOutput(w io.Writer, level string) {
	initLogger.Do(func() {})
	baseLogger = newLogger(w, level)
}

func newLogger(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
	}))
}

func parseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
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
