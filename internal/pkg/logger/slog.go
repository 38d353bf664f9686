package logger

import (
	"context"
	"io"
	"log/slog"
	"runtime"
)

type contextKey string

const (
	RequestIDKey contextKey = "request_id"
	RunIDKey     contextKey = "run_id"
)

// StackTraceHandler is a handler that adds stack trace to error records
// and extracts request_id and run_id from context
type StackTraceHandler struct {
	slog.Handler
}

func (h *StackTraceHandler) Handle(ctx context.Context, r slog.Record) error {
	if ctx != nil {
		if reqID, ok := ctx.Value(RequestIDKey).(string); ok {
			r.AddAttrs(slog.String("request_id", reqID))
		}

		if runID, ok := ctx.Value(RunIDKey).(string); ok {
			r.AddAttrs(slog.String("run_id", runID))
		}
	}

	if r.Level >= slog.LevelError {
		buf := make([]byte, 4096)
		n := runtime.Stack(buf, false)
		r.AddAttrs(slog.String("stack_trace", string(buf[:n])))
	}
	return h.Handler.Handle(ctx, r)
}

func (h *StackTraceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &StackTraceHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *StackTraceHandler) WithGroup(name string) slog.Handler {
	return &StackTraceHandler{Handler: h.Handler.WithGroup(name)}
}

// NewStructuredLogger builds the JSON logger writing to out.
func NewStructuredLogger(out io.Writer, level slog.Leveler) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
	}

	if level.Level() == slog.LevelDebug {
		opts.AddSource = true
	}

	jsonHandler := slog.NewJSONHandler(out, opts)

	return slog.New(&StackTraceHandler{Handler: jsonHandler})
}

// InitStructuredLogger initialize structured logger. Logs go to out so a
// report written to stdout is not mixed with them.
func InitStructuredLogger(out io.Writer, level slog.Leveler) {
	slog.SetDefault(NewStructuredLogger(out, level))
}
