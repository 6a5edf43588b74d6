package gelf

import (
	"fmt"
	"strings"
)

// ParseTemplate renders a message template against positional arguments and
// returns the rendered text plus the bound (name, value) fields in placeholder
// order. Placeholders are written {name}, optionally {name,alignment:format};
// the alignment and format portions are accepted but do not affect rendering.
// Doubled braces escape literal braces.
//
// A template without placeholders is a plain message: no fields are produced,
// whatever the argument list holds, though doubled braces still collapse to
// their literal form. A template with placeholders must be matched exactly
// by the argument list; a mismatch is a caller error and no partial binding
// is attempted.
func ParseTemplate(template string, args []any) (string, []Field, error) {
	if !strings.ContainsAny(template, "{}") {
		return template, nil, nil
	}

	var rendered strings.Builder
	rendered.Grow(len(template))
	var fields []Field
	next := 0
	escaped := false

	for i := 0; i < len(template); {
		switch template[i] {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				rendered.WriteByte('{')
				escaped = true
				i += 2
				continue
			}
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				return "", nil, fmt.Errorf("gelf: unterminated placeholder at offset %d in template %q", i, template)
			}
			end += i + 1
			name, err := placeholderName(template[i+1 : end])
			if err != nil {
				return "", nil, fmt.Errorf("gelf: template %q: %w", template, err)
			}
			if next >= len(args) {
				return "", nil, fmt.Errorf("gelf: template %q has more placeholders than arguments (%d)", template, len(args))
			}
			arg := args[next]
			next++
			rendered.WriteString(argText(arg))
			fields = append(fields, Field{Key: name, Value: ValueOf(arg)})
			i = end + 1
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				rendered.WriteByte('}')
				escaped = true
				i += 2
				continue
			}
			return "", nil, fmt.Errorf("gelf: unmatched '}' at offset %d in template %q", i, template)
		default:
			rendered.WriteByte(template[i])
			i++
		}
	}

	if len(fields) == 0 {
		if escaped {
			return rendered.String(), nil, nil
		}
		return template, nil, nil
	}
	if next < len(args) {
		return "", nil, fmt.Errorf("gelf: template %q has %d placeholders but %d arguments", template, next, len(args))
	}
	return rendered.String(), fields, nil
}

// placeholderName extracts the field name from a placeholder body, dropping
// the serilog-style capture prefix and any alignment or format portion.
func placeholderName(body string) (string, error) {
	name := body
	if idx := strings.IndexAny(name, ",:"); idx >= 0 {
		name = name[:idx]
	}
	name = strings.TrimPrefix(name, "@")
	name = strings.TrimPrefix(name, "$")
	if name == "" {
		return "", fmt.Errorf("empty placeholder %q", "{"+body+"}")
	}
	for _, r := range name {
		valid := r == '_' || (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if !valid {
			return "", fmt.Errorf("invalid placeholder name %q", name)
		}
	}
	return name, nil
}

func argText(arg any) string {
	if arg == nil {
		return ""
	}
	return fmt.Sprint(arg)
}
