package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"grayline/internal/gelf"
	"grayline/internal/tracectx"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		raw  string
		want any
	}{
		{"42", int64(42)},
		{"-7", int64(-7)},
		{"2.5", 2.5},
		{"plain", "plain"},
		{"null", nil},
		{"true", "true"},
	}
	for _, tt := range tests {
		if got := parseValue(tt.raw); got != tt.want {
			t.Fatalf("parseValue(%q) = %v (%T), want %v (%T)", tt.raw, got, got, tt.want, tt.want)
		}
	}
}

func TestBuildEvent(t *testing.T) {
	flags := messageFlags{
		level:     "warning",
		logger:    "cli",
		eventID:   9,
		eventName: "disk-pressure",
		errText:   "threshold exceeded",
		fields:    []string{"facility=ops", "replica=2"},
	}

	ev, err := flags.buildEvent([]string{"disk {disk} at {pct}%", "sda1", "93"})
	if err != nil {
		t.Fatalf("buildEvent: %v", err)
	}
	if ev.Level != gelf.LevelWarning {
		t.Fatalf("level = %v", ev.Level)
	}
	if ev.Template != "disk {disk} at {pct}%" || len(ev.Args) != 2 {
		t.Fatalf("template binding wrong: %q %v", ev.Template, ev.Args)
	}
	if ev.Args[1] != int64(93) {
		t.Fatalf("numeric argument should parse as integer, got %T", ev.Args[1])
	}
	if len(ev.Fields) != 2 || ev.Fields[1].Value.Int() != 2 {
		t.Fatalf("fields wrong: %+v", ev.Fields)
	}
	if ev.Err == nil || ev.Err.Error() != "threshold exceeded" {
		t.Fatalf("err = %v", ev.Err)
	}
}

func TestBuildEventRejectsBadInput(t *testing.T) {
	flags := messageFlags{level: "info", fields: []string{"missing-separator"}}
	if _, err := flags.buildEvent([]string{"msg"}); err == nil {
		t.Fatal("expected error for malformed --field")
	}

	flags = messageFlags{level: "nope"}
	if _, err := flags.buildEvent([]string{"msg"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestPreviewCommandJSON(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{
		"preview", "--json",
		"--config", filepath.Join(t.TempDir(), "missing.toml"),
		"--level", "error",
		"--field", "facility=test",
		"--scope", "request_id=r-1",
		"user {name} not found", "mallory",
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	var wire map[string]any
	if err := json.Unmarshal(out.Bytes(), &wire); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if wire["short_message"] != "user mallory not found" {
		t.Fatalf("short_message = %v", wire["short_message"])
	}
	if wire["level"] != float64(3) {
		t.Fatalf("level = %v", wire["level"])
	}
	if wire["_name"] != "mallory" || wire["_facility"] != "test" || wire["_request_id"] != "r-1" {
		t.Fatalf("additional fields wrong: %v", wire)
	}
}

func TestBuildContextTraceparent(t *testing.T) {
	flags := messageFlags{
		traceparent: "00-0af7651916cd43dd8448eb211c80319c-b7ad6b7169203331-01",
	}
	ctx, err := flags.buildContext()
	if err != nil {
		t.Fatalf("buildContext: %v", err)
	}
	if id, ok := tracectx.TraceIDFromContext(ctx); !ok || id != "0af7651916cd43dd8448eb211c80319c" {
		t.Fatalf("trace id = %q, %v", id, ok)
	}
	if id, ok := tracectx.SpanIDFromContext(ctx); !ok || id != "b7ad6b7169203331" {
		t.Fatalf("span id = %q, %v", id, ok)
	}

	flags.traceID = "explicit-trace"
	ctx, err = flags.buildContext()
	if err != nil {
		t.Fatalf("buildContext: %v", err)
	}
	if id, _ := tracectx.TraceIDFromContext(ctx); id != "explicit-trace" {
		t.Fatalf("explicit trace id should win, got %q", id)
	}
	if id, _ := tracectx.SpanIDFromContext(ctx); id != "b7ad6b7169203331" {
		t.Fatalf("span id should survive the override, got %q", id)
	}
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.HasPrefix(out.String(), "grayline "+version) {
		t.Fatalf("unexpected version output: %q", out.String())
	}
	if !strings.Contains(out.String(), "commit: "+commit) {
		t.Fatalf("commit missing from output: %q", out.String())
	}
}

func TestSendCommandRequiresTemplate(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"send"})

	if err := cmd.Execute(); err == nil || !strings.Contains(err.Error(), "arg") {
		t.Fatalf("expected missing-argument error, got %v", err)
	}
}
