package notice

import (
	"context"
	"log/slog"
	"time"
)

// Severity constants recognised by downstream sinks.
const (
	LevelInfo    = "info"
	LevelSuccess = "success"
	LevelWarning = "warning"
	LevelError   = "error"
)

// Notice is one transient user-facing message (the toast analog). Inbound
// push-channel frames are forwarded here verbatim as opaque display text.
type Notice struct {
	Level      string
	Message    string
	OccurredAt time.Time
}

// Sink describes a destination capable of displaying notices.
type Sink interface {
	Send(ctx context.Context, n Notice)
}

// SinkFunc adapts a function to the Sink interface (useful for tests).
type SinkFunc func(ctx context.Context, n Notice)

// Send implements the Sink interface.
func (f SinkFunc) Send(ctx context.Context, n Notice) {
	if f == nil {
		return
	}
	f(ctx, n)
}

// LogSink writes notices to a structured logger.
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink builds a Sink backed by the given logger. A nil logger falls
// back to slog.Default.
func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger}
}

func (s *LogSink) Send(ctx context.Context, n Notice) {
	at := n.OccurredAt
	if at.IsZero() {
		at = time.Now()
	}
	level := slog.LevelInfo
	switch n.Level {
	case LevelWarning:
		level = slog.LevelWarn
	case LevelError:
		level = slog.LevelError
	}
	s.logger.Log(ctx, level, n.Message, "kind", "notice", "severity", n.Level, "at", at.UTC().Format(time.RFC3339))
}

// Discard is a Sink that drops every notice.
var Discard Sink = SinkFunc(nil)
