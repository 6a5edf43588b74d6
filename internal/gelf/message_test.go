package gelf_test

import (
	"encoding/json"
	"testing"
	"time"

	"grayline/internal/gelf"
)

func TestMessageMarshalWireShape(t *testing.T) {
	msg := &gelf.Message{
		ID:           "local-only",
		Version:      gelf.Version,
		Host:         "web-1",
		ShortMessage: "request finished",
		Timestamp:    time.Unix(1700000000, 250_000_000),
		Level:        6,
		Extra: map[string]gelf.Value{
			"request_id": gelf.StringValue("r-42"),
			"status":     gelf.IntValue(200),
			"elapsed":    gelf.FloatValue(0.125),
			"id":         gelf.StringValue("must-not-ship"),
		},
	}

	raw, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var wire map[string]any
	if err := json.Unmarshal(raw, &wire); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if wire["version"] != "1.1" || wire["host"] != "web-1" || wire["short_message"] != "request finished" {
		t.Fatalf("fixed fields wrong: %v", wire)
	}
	if wire["timestamp"] != 1700000000.25 {
		t.Fatalf("timestamp = %v", wire["timestamp"])
	}
	if wire["level"] != float64(6) {
		t.Fatalf("level = %v", wire["level"])
	}
	if wire["_request_id"] != "r-42" || wire["_status"] != float64(200) || wire["_elapsed"] != 0.125 {
		t.Fatalf("extra fields wrong: %v", wire)
	}
	if _, ok := wire["_id"]; ok {
		t.Fatal("the reserved id field must never reach the wire")
	}
	if _, ok := wire["full_message"]; ok {
		t.Fatal("empty full message must be omitted")
	}
}

func TestMessageMarshalFullMessage(t *testing.T) {
	msg := &gelf.Message{
		Version:      gelf.Version,
		Host:         "h",
		ShortMessage: "first line",
		FullMessage:  "first line\nsecond line",
		Timestamp:    time.Unix(10, 0),
		Level:        3,
	}

	raw, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var wire map[string]any
	if err := json.Unmarshal(raw, &wire); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if wire["full_message"] != "first line\nsecond line" {
		t.Fatalf("full_message = %v", wire["full_message"])
	}
}

func TestMessageFieldPresence(t *testing.T) {
	msg := &gelf.Message{Extra: map[string]gelf.Value{"present": gelf.IntValue(0)}}

	if v, ok := msg.Field("present"); !ok || v.Int() != 0 {
		t.Fatalf("present zero-valued field should be found: %+v %v", v, ok)
	}
	if _, ok := msg.Field("absent"); ok {
		t.Fatal("absent field must report not-present, not a zero value")
	}
}
