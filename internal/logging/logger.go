package logging

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog for application-wide structured logging.
type Logger struct {
	*slog.Logger
}

// New creates a Logger writing to stdout at the given level.
func New(level int) *Logger {
	return NewWithWriter(os.Stdout, level)
}

// NewWithWriter creates a Logger writing to w. Used by tests to capture output.
func NewWithWriter(w io.Writer, level int) *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.Level(level)})),
	}
}

// Fatal is equivalent to Error followed by os.Exit(1).
func (l *Logger) Fatal(msg string, args ...any) {
	l.Logger.Error(msg, args...)
	os.Exit(1)
}

// ErrorRedacted logs an error with a redacted context payload. Every structured
// payload must go through here rather than slog directly so sensitive fields
// never reach the log stream.
func (l *Logger) ErrorRedacted(msg string, context map[string]any) {
	l.Logger.Error(msg, slog.Any("context", Redact(context)))
}
