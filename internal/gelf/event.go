package gelf

import "grayline/internal/scope"

// Event captures a single logging call. It is immutable once handed to the
// assembler; the assembler never retains it past the call.
type Event struct {
	// Level is the call's severity.
	Level Level

	// Template is the message template, with {name} placeholders bound
	// positionally against Args. Leave empty when Message carries plain text.
	Template string

	// Message is the pre-rendered message text for calls without a template.
	// It is never parsed, so literal braces are safe.
	Message string

	// Args are the positional template arguments.
	Args []any

	// Fields are call-site fields already bound by the front-end (for
	// example slog record attributes). They merge at the same precedence
	// tier as template-bound fields, ahead of any ambient source.
	Fields []Field

	// Err is the error attached to the call, if any.
	Err error

	// EventID and EventName identify the call site's event. A zero EventID
	// means no event identifier was supplied.
	EventID   int32
	EventName string

	// Logger names the emitting logger or category.
	Logger string

	// Scopes holds front-end scopes that are outer relative to any scopes
	// carried by the call's context, outermost first.
	Scopes []scope.Entry
}

// text returns the message text and template to record, rendering the
// template when one is present.
func (ev Event) text() (rendered, template string, fields []Field, err error) {
	if ev.Template == "" {
		return ev.Message, "", nil, nil
	}
	rendered, fields, err = ParseTemplate(ev.Template, ev.Args)
	if err != nil {
		return "", "", nil, err
	}
	return rendered, ev.Template, fields, nil
}
