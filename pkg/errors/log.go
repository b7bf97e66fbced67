package errors

import (
	"log/slog"

	"github.com/go-drift/expanding/pkg/logging"
)

// LogHandler is an ErrorHandler that writes errors to a structured logger.
type LogHandler struct {
	// Verbose enables stack traces in panic records.
	Verbose bool
	// Logger receives the records. Defaults to logging.New("errors").
	Logger *slog.Logger
}

func (h *LogHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return logging.New("errors")
}

// HandleError logs an ExpandError.
func (h *LogHandler) HandleError(err *ExpandError) {
	if err == nil {
		return
	}
	h.logger().Error("operation failed", "op", err.Op, "kind", err.Kind.String(), "error", err.Err)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	attrs := []any{"op", err.Op, "value", err.Value}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, "stack", err.StackTrace)
	}
	h.logger().Error("recovered panic", attrs...)
}
