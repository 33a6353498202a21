package sisapp

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with explorer-specific context.
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithSource adds the source object names to the logger.
func (l *Logger) WithSource(annotations, frequencies string) *Logger {
	return &Logger{
		Logger: l.Logger.With("annotations", annotations, "frequencies", frequencies),
	}
}

// LogLoad logs a corpus load.
func (l *Logger) LogLoad(ctx context.Context, records, frequencies int, d time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "corpus load failed",
			"error", err,
			"duration", d,
		)
	} else {
		l.InfoContext(ctx, "corpus loaded",
			"records", records,
			"frequency_rows", frequencies,
			"duration", d,
		)
	}
}

// LogFilter logs a filter evaluation.
func (l *Logger) LogFilter(ctx context.Context, total, matched int, d time.Duration) {
	l.DebugContext(ctx, "filter applied",
		"total", total,
		"matched", matched,
		"duration", d,
	)
}

// LogExport logs an export operation.
func (l *Logger) LogExport(ctx context.Context, format string, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "export failed",
			"format", format,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "export completed",
			"format", format,
			"records", count,
		)
	}
}

// LogRender logs a word-cloud rendering.
func (l *Logger) LogRender(ctx context.Context, category string, lemmas int, err error) {
	if err != nil {
		l.WarnContext(ctx, "word cloud not rendered",
			"category", category,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "word cloud rendered",
			"category", category,
			"lemmas", lemmas,
		)
	}
}
