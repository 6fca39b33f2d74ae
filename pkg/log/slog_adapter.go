package log

import (
	"context"
	"fmt"
	"log/slog"
)

// SlogAdapter writes access events to an slog.Logger.
// Useful for development when you want to see property traffic in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger.
// Successful operations log at Debug level, failures at Warn level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("device", event.DeviceID),
		slog.String("property", event.Property),
		slog.String("op", event.Op.String()),
	}

	if event.TraceID != "" {
		attrs = append(attrs, slog.String("trace_id", event.TraceID))
	}
	if len(event.Indices) > 0 {
		attrs = append(attrs, slog.Any("indices", event.Indices))
	}
	if event.Op == OpRead || event.Op == OpWrite {
		attrs = append(attrs, slog.String("value", fmt.Sprintf("%v", event.Value)))
	}
	if !event.Checked {
		attrs = append(attrs, slog.Bool("unchecked", true))
	}

	level := slog.LevelDebug
	if event.Failed() {
		level = slog.LevelWarn
		attrs = append(attrs, slog.String("error", event.Err))
	}

	a.logger.LogAttrs(context.Background(), level, "property", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
