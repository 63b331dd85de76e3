package bench

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with benchmark-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithOp adds an op field to the logger. LogResult and LogMismatch expect
// a logger scoped this way.
func (l *Logger) WithOp(op Op) *Logger {
	return &Logger{
		Logger: l.Logger.With("op", op.String()),
	}
}

// LogSuite logs the start of a suite run.
func (l *Logger) LogSuite(ctx context.Context, isa string, ops []Op, sizes int) {
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.String()
	}
	l.InfoContext(ctx, "benchmark suite started",
		"isa", isa,
		"ops", names,
		"sizes", sizes,
	)
}

// LogResult logs a completed measurement.
func (l *Logger) LogResult(ctx context.Context, r Result) {
	l.InfoContext(ctx, "measurement completed",
		"size", r.Size,
		"iterations", r.Iterations,
		"baseline", r.Baseline,
		"memvec", r.Vector,
		"gain_pct", r.Gain(),
	)
}

// LogMismatch logs a verification failure.
func (l *Logger) LogMismatch(ctx context.Context, size int, err error) {
	l.ErrorContext(ctx, "result mismatch",
		"size", size,
		"error", err,
	)
}
