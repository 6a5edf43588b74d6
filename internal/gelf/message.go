package gelf

import (
	"encoding/json"
	"math"
	"time"
)

// Version is the GELF schema version stamped on every record.
const Version = "1.1"

// Reserved field names the assembler keeps out of the additional-field map:
// "id" is reserved by the GELF schema and must never be sent.
const reservedIDField = "id"

// Message is one assembled record. Fixed fields live on the struct; every
// additional field, including the optional fixed ones, lives in Extra so that
// presence is an explicit, testable state.
type Message struct {
	// ID uniquely identifies the record for local correlation. It is not
	// part of the wire payload; GELF reserves _id for the backend.
	ID string

	Version      string
	Host         string
	ShortMessage string
	// FullMessage carries the remaining lines of a multi-line message.
	// Empty means absent.
	FullMessage string
	Timestamp   time.Time
	Level       int32

	// Extra maps additional field names (without the wire underscore
	// prefix) to their values. Null values never appear here.
	Extra map[string]Value
}

// Field looks up an additional field by name. The second return reports
// presence, which is distinct from a field being present with value zero.
func (m *Message) Field(name string) (Value, bool) {
	v, ok := m.Extra[name]
	return v, ok
}

// MarshalJSON encodes the record as a GELF document: fixed fields by their
// schema names, the timestamp as fractional epoch seconds, and each extra
// field prefixed with an underscore.
func (m *Message) MarshalJSON() ([]byte, error) {
	payload := make(map[string]any, len(m.Extra)+6)
	payload["version"] = m.Version
	payload["host"] = m.Host
	payload["short_message"] = m.ShortMessage
	if m.FullMessage != "" {
		payload["full_message"] = m.FullMessage
	}
	payload["timestamp"] = epochSeconds(m.Timestamp)
	payload["level"] = m.Level
	for name, value := range m.Extra {
		if name == reservedIDField || value.IsNull() {
			continue
		}
		payload["_"+name] = value.Any()
	}
	return json.Marshal(payload)
}

// epochSeconds renders a timestamp as seconds with millisecond precision,
// which is what GELF backends expect for sub-second ordering.
func epochSeconds(t time.Time) float64 {
	return math.Round(float64(t.UnixNano())/1e6) / 1e3
}
