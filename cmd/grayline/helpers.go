package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"grayline/internal/gelf"
	"grayline/internal/scope"
	"grayline/internal/tracectx"
)

type messageFlags struct {
	level       string
	logger      string
	eventID     int32
	eventName   string
	errText     string
	fields      []string
	scopes      []string
	traceparent string
	traceID     string
	spanID      string
}

// buildEvent turns the command line into one logging event. The first
// positional argument is the message template; the rest bind to its
// placeholders in order.
func (f *messageFlags) buildEvent(args []string) (gelf.Event, error) {
	if len(args) == 0 {
		return gelf.Event{}, errors.New("a message template is required")
	}

	level, err := gelf.ParseLevel(f.level)
	if err != nil {
		return gelf.Event{}, err
	}

	templateArgs := make([]any, 0, len(args)-1)
	for _, raw := range args[1:] {
		templateArgs = append(templateArgs, parseValue(raw))
	}

	fields, err := parseFieldArgs(f.fields)
	if err != nil {
		return gelf.Event{}, err
	}

	ev := gelf.Event{
		Level:     level,
		Template:  args[0],
		Args:      templateArgs,
		Fields:    fields,
		EventID:   f.eventID,
		EventName: f.eventName,
		Logger:    f.logger,
	}
	if f.errText != "" {
		ev.Err = errors.New(f.errText)
	}
	return ev, nil
}

// buildContext layers the command line's scope and tracing values onto a
// fresh context, mirroring what an instrumented service would carry.
func (f *messageFlags) buildContext() (context.Context, error) {
	ctx := context.Background()
	if len(f.scopes) > 0 {
		entry := make([]scope.Field, 0, len(f.scopes))
		for _, raw := range f.scopes {
			key, value, err := splitKV(raw)
			if err != nil {
				return nil, fmt.Errorf("--scope %q: %w", raw, err)
			}
			entry = append(entry, scope.KV(key, parseValue(value)))
		}
		ctx = scope.With(ctx, entry...)
	}
	if f.traceparent != "" {
		ctx = tracectx.WithTraceparent(ctx, f.traceparent)
	}
	// Explicit identifiers win over anything the traceparent header carried.
	ctx = tracectx.WithTraceID(ctx, f.traceID)
	ctx = tracectx.WithSpanID(ctx, f.spanID)
	return ctx, nil
}

func parseFieldArgs(raw []string) ([]gelf.Field, error) {
	fields := make([]gelf.Field, 0, len(raw))
	for _, item := range raw {
		key, value, err := splitKV(item)
		if err != nil {
			return nil, fmt.Errorf("--field %q: %w", item, err)
		}
		fields = append(fields, gelf.Any(key, parseValue(value)))
	}
	return fields, nil
}

func splitKV(raw string) (key, value string, err error) {
	key, value, ok := strings.Cut(raw, "=")
	if !ok || key == "" {
		return "", "", errors.New("want key=value")
	}
	return key, value, nil
}

// parseValue keeps numeric kinds numeric on the wire. The literal "null"
// requests field omission.
func parseValue(raw string) any {
	if raw == "null" {
		return nil
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}
