// Package observability holds the failure sink the controllers and the notification
// fan-out report to. Nothing in the entity services depends on it.
package observability

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Event is one observed failure.
type Event struct {
	Source    string // component, e.g. "pocket" or "notification"
	Action    string // operation, e.g. "add" or "deliver"
	Message   string
	RequestID string // empty outside an HTTP request
	At        time.Time
}

// Recorder is the single capability the rest of the service needs from observability.
type Recorder interface {
	Record(ctx context.Context, ev Event)
}

// SlogRecorder writes events as structured log lines.
type SlogRecorder struct {
	logger *slog.Logger
}

func NewSlogRecorder(logger *slog.Logger) *SlogRecorder {
	return &SlogRecorder{logger: logger}
}

func (r *SlogRecorder) Record(ctx context.Context, ev Event) {
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}
	attrs := []slog.Attr{
		slog.String("source", ev.Source),
		slog.String("action", ev.Action),
		slog.Time("at", ev.At),
	}
	if ev.RequestID != "" {
		attrs = append(attrs, slog.String("request_id", ev.RequestID))
	}
	r.logger.LogAttrs(ctx, slog.LevelError, ev.Message, attrs...)
}

// Multi forwards each event to every recorder in order.
type Multi []Recorder

func (m Multi) Record(ctx context.Context, ev Event) {
	for _, r := range m {
		if r != nil {
			r.Record(ctx, ev)
		}
	}
}

// Nop discards events.
type Nop struct{}

func (Nop) Record(context.Context, Event) {}

// ParseLevel maps LOG_LEVEL values onto slog levels, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// NewLogger builds the process logger. When file is set, failure lines are also appended there.
func NewLogger(level, file string) (*slog.Logger, io.Closer, error) {
	var w io.Writer = os.Stdout
	var closer io.Closer = io.NopCloser(nil)
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		w = io.MultiWriter(os.Stdout, f)
		closer = f
	}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	return slog.New(handler), closer, nil
}
