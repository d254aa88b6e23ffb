package polycrc

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/hupe1980/polycrc/poly"
)

// Logger wraps slog.Logger with polycrc-specific context.
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
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: slog.Level(1000), // Unreachable level
		})),
	}
}

// WithVersion adds the engine version to the logger.
func (l *Logger) WithVersion(v Version) *Logger {
	return &Logger{
		Logger: l.Logger.With("version", v.String()),
	}
}

// WithInput adds an input name to the logger.
func (l *Logger) WithInput(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("input", name),
	}
}

// LogChecksum logs a checksum operation.
func (l *Logger) LogChecksum(ctx context.Context, v Version, g poly.Polynomial, size int, result uint32, err error) {
	if err != nil {
		l.ErrorContext(ctx, "checksum failed",
			"version", v.String(),
			"poly", g.String(),
			"bytes", size,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "checksum completed",
			"version", v.String(),
			"poly", g.String(),
			"bytes", size,
			"result", formatSum(result),
		)
	}
}

// LogTableBuild logs construction of tables for a new polynomial.
func (l *Logger) LogTableBuild(ctx context.Context, v Version, g poly.Polynomial, took time.Duration) {
	l.DebugContext(ctx, "tables built",
		"version", v.String(),
		"poly", g.String(),
		"took", took,
	)
}

// LogVerify logs a cross-engine verification.
func (l *Logger) LogVerify(ctx context.Context, g poly.Polynomial, size int, err error) {
	if err != nil {
		l.WarnContext(ctx, "verification failed",
			"poly", g.String(),
			"bytes", size,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "verification passed",
			"poly", g.String(),
			"bytes", size,
		)
	}
}

func formatSum(sum uint32) string {
	return fmt.Sprintf("0x%x", sum)
}
