package sortsearch

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with search-specific context.
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
	return &Logger{
		Logger: slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithStrategy adds a strategy field to the logger.
func (l *Logger) WithStrategy(kind StrategyKind) *Logger {
	return &Logger{
		Logger: l.Logger.With("strategy", kind.String()),
	}
}

// WithSizes adds the reference length n and batch size m to the logger.
func (l *Logger) WithSizes(n, m int) *Logger {
	return &Logger{
		Logger: l.Logger.With("n", n, "m", m),
	}
}

// LogSearch logs a search call over a reference of length n and m queries.
// Successful calls log at debug level; the record is only built when that
// level is enabled.
func (l *Logger) LogSearch(ctx context.Context, side Side, n, m int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "search failed",
			"n", n,
			"m", m,
			"side", side.String(),
			"error", err,
		)
		return
	}
	if !l.Enabled(ctx, slog.LevelDebug) {
		return
	}
	l.DebugContext(ctx, "search completed",
		"n", n,
		"m", m,
		"side", side.String(),
		"elapsed", elapsed,
	)
}

// LogTrial logs the outcome of one benchmark cell (strategy, n, m).
func (l *Logger) LogTrial(ctx context.Context, repeats int, mean time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "trial failed",
			"repeats", repeats,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "trial completed",
		"repeats", repeats,
		"mean_ms", float64(mean)/float64(time.Millisecond),
	)
}
