// Package logger wires log/slog for the service: one process-wide handler
// plus request-scoped attributes carried on the context.
package logger

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	attrsKey
)

// NewRequestID returns a fresh id for tracing one request.
func NewRequestID() string {
	return uuid.NewString()
}

// WithRequestID stores the request id on ctx; FromContext adds it to every record.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestID returns the request id stored on ctx, if any.
func RequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok && id != ""
}

// With returns a context whose logger carries args in addition to anything
// already scoped on ctx. Args are key/value pairs as for slog.Logger.With.
func With(ctx context.Context, args ...any) context.Context {
	if len(args) == 0 {
		return ctx
	}
	prev, _ := ctx.Value(attrsKey).([]any)
	merged := make([]any, 0, len(prev)+len(args))
	merged = append(merged, prev...)
	merged = append(merged, args...)
	return context.WithValue(ctx, attrsKey, merged)
}

// FromContext returns the default logger with the request id and any
// attributes scoped on ctx. The default is read on every call so a logger
// installed after ctx was created is still honoured.
func FromContext(ctx context.Context) *slog.Logger {
	l := slog.Default()
	if id, ok := RequestID(ctx); ok {
		l = l.With(AttrKeyRequestID, id)
	}
	if attrs, ok := ctx.Value(attrsKey).([]any); ok {
		l = l.With(attrs...)
	}
	return l
}
