package tracectx

import (
	"context"
	"strings"
)

type contextKey string

const (
	traceIDKey contextKey = "trace_id"
	spanIDKey  contextKey = "span_id"
)

// WithTraceID annotates context with the distributed trace identifier.
func WithTraceID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, traceIDKey, id)
}

// WithSpanID annotates context with the current span identifier.
func WithSpanID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, spanIDKey, id)
}

// TraceIDFromContext extracts the trace identifier if present.
func TraceIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(traceIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// SpanIDFromContext extracts the span identifier if present.
func SpanIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(spanIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithTraceparent parses a W3C traceparent header and annotates context with
// the trace and span identifiers it carries. Malformed or all-zero values
// leave the context unchanged; callers at the edge should not fail a request
// over a bad tracing header.
func WithTraceparent(ctx context.Context, header string) context.Context {
	parts := strings.Split(strings.TrimSpace(header), "-")
	if len(parts) < 4 {
		return ctx
	}
	traceID, spanID := parts[1], parts[2]
	if len(traceID) != 32 || len(spanID) != 16 {
		return ctx
	}
	if !isLowerHex(traceID) || !isLowerHex(spanID) {
		return ctx
	}
	if traceID == strings.Repeat("0", 32) || spanID == strings.Repeat("0", 16) {
		return ctx
	}
	return WithSpanID(WithTraceID(ctx, traceID), spanID)
}

func isLowerHex(s string) bool {
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}
