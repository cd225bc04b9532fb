package model

import (
	"context"
	"log/slog"
)

// Tracer receives decision points of schema construction and legality checks.
// A nil Tracer is a no-op.
type Tracer func(msg string, attrs ...slog.Attr)

// Trace calls the tracer if set
func (t Tracer) Trace(msg string, attrs ...slog.Attr) {
	if t == nil {
		return
	}
	t(msg, attrs...)
}

// Enabled reports whether tracing would produce output
func (t Tracer) Enabled() bool {
	return t != nil
}

// NewSlogTracer routes trace events to logger at debug level
func NewSlogTracer(logger *slog.Logger) Tracer {
	if logger == nil {
		return nil
	}
	return func(msg string, attrs ...slog.Attr) {
		logger.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
	}
}
