package gelf

import (
	"context"

	"grayline/internal/tracectx"
)

// Additional-field names carrying distributed tracing identifiers.
const (
	FieldTraceID = "trace_id"
	FieldSpanID  = "span_id"
)

// traceFields reads the ambient tracing context and returns the enrichment
// fields enabled by the options. Missing tracing context yields nothing;
// that is the normal case, not an error.
func traceFields(ctx context.Context, opts Options) []Field {
	if !opts.IncludeTraceID && !opts.IncludeSpanID {
		return nil
	}
	var fields []Field
	if opts.IncludeTraceID {
		if id, ok := tracectx.TraceIDFromContext(ctx); ok {
			fields = append(fields, String(FieldTraceID, id))
		}
	}
	if opts.IncludeSpanID {
		if id, ok := tracectx.SpanIDFromContext(ctx); ok {
			fields = append(fields, String(FieldSpanID, id))
		}
	}
	return fields
}
