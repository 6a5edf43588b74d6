package slogbridge

import (
	"log/slog"
	"strings"

	"grayline/internal/gelf"
)

// mapLevel converts an slog level to the assembler's level scale. Custom
// levels four or more above slog.LevelError count as critical; anything below
// slog.LevelDebug counts as trace.
func mapLevel(level slog.Level) gelf.Level {
	switch {
	case level >= slog.LevelError+4:
		return gelf.LevelCritical
	case level >= slog.LevelError:
		return gelf.LevelError
	case level >= slog.LevelWarn:
		return gelf.LevelWarning
	case level >= slog.LevelInfo:
		return gelf.LevelInformation
	case level >= slog.LevelDebug:
		return gelf.LevelDebug
	default:
		return gelf.LevelTrace
	}
}

// appendAttr folds one record attribute into the event. An error-valued
// "error" or "err" attribute becomes the event's exception; groups flatten to
// dotted keys; everything else becomes a call-site field.
func appendAttr(ev *gelf.Event, groups []string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Value.Kind() == slog.KindGroup {
		ev.Fields = append(ev.Fields, flattenGroup(groups, a)...)
		return
	}
	if a.Key == "" {
		return
	}
	if ev.Err == nil && (a.Key == "error" || a.Key == "err") {
		if err, ok := a.Value.Any().(error); ok {
			ev.Err = err
			return
		}
	}
	ev.Fields = append(ev.Fields, gelf.Any(joinKey(groups, a.Key), attrValue(a.Value)))
}

// flattenGroup expands a group attribute into dotted-key fields.
func flattenGroup(groups []string, a slog.Attr) []gelf.Field {
	if a.Key != "" {
		groups = append(append([]string(nil), groups...), a.Key)
	}
	var fields []gelf.Field
	for _, member := range a.Value.Group() {
		member.Value = member.Value.Resolve()
		if member.Value.Kind() == slog.KindGroup {
			fields = append(fields, flattenGroup(groups, member)...)
			continue
		}
		if member.Key == "" {
			continue
		}
		fields = append(fields, gelf.Any(joinKey(groups, member.Key), attrValue(member.Value)))
	}
	return fields
}

func joinKey(groups []string, key string) string {
	if len(groups) == 0 {
		return key
	}
	return strings.Join(groups, ".") + "." + key
}

// attrValue unwraps a resolved slog value into a plain Go value, keeping
// numeric kinds intact for the wire variant coercion.
func attrValue(v slog.Value) any {
	switch v.Kind() {
	case slog.KindString:
		return v.String()
	case slog.KindInt64:
		return v.Int64()
	case slog.KindUint64:
		return v.Uint64()
	case slog.KindFloat64:
		return v.Float64()
	case slog.KindBool:
		return v.Bool()
	case slog.KindDuration:
		return v.Duration()
	case slog.KindTime:
		return v.Time()
	default:
		return v.Any()
	}
}
