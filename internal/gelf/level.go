package gelf

import (
	"fmt"
	"strings"
)

// Level identifies the severity of a logging call, from least to most severe.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInformation
	LevelWarning
	LevelError
	LevelCritical
)

// String returns the canonical lowercase level name.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInformation:
		return "information"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelCritical:
		return "critical"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// Severity maps the level onto the syslog numeric scale used on the wire
// (lower is more severe). The mapping is total over the declared levels; any
// other value is a programming error and is reported rather than guessed at.
func (l Level) Severity() (int32, error) {
	switch l {
	case LevelCritical:
		return 2, nil
	case LevelError:
		return 3, nil
	case LevelWarning:
		return 4, nil
	case LevelInformation:
		return 6, nil
	case LevelDebug, LevelTrace:
		return 7, nil
	default:
		return 0, fmt.Errorf("gelf: no severity mapping for %s", l)
	}
}

// ParseLevel converts a level name to a Level. Matching is case-insensitive
// and accepts the common short forms.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info", "information":
		return LevelInformation, nil
	case "warn", "warning":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	case "critical", "fatal":
		return LevelCritical, nil
	default:
		return LevelInformation, fmt.Errorf("gelf: unknown level %q", name)
	}
}
