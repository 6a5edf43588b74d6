package slogbridge_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"grayline/internal/gelf"
	"grayline/internal/scope"
	"grayline/internal/slogbridge"
)

// captureSender records every delivered message in memory.
type captureSender struct {
	mu       sync.Mutex
	messages []*gelf.Message
	closed   bool
}

func (s *captureSender) Send(_ context.Context, msg *gelf.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
	return nil
}

func (s *captureSender) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *captureSender) drained(t *testing.T, want int) []*gelf.Message {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.messages) != want {
		t.Fatalf("delivered %d messages, want %d", len(s.messages), want)
	}
	return s.messages
}

func newTestHandler(t *testing.T, opts slogbridge.Options) (*slogbridge.Handler, *captureSender) {
	t.Helper()
	sender := &captureSender{}
	assembler := gelf.NewAssembler(gelf.Options{Host: "test-host", IncludeScopes: true})
	return slogbridge.NewHandler(assembler, sender, opts), sender
}

func TestHandlerDeliversAssembledRecord(t *testing.T) {
	handler, sender := newTestHandler(t, slogbridge.Options{Logger: "svc.checkout"})
	logger := slog.New(handler)

	logger.Info("order placed", slog.String("order_id", "o-77"), slog.Int("items", 3))

	if err := handler.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	msg := sender.drained(t, 1)[0]

	if msg.ShortMessage != "order placed" {
		t.Fatalf("short message = %q", msg.ShortMessage)
	}
	if msg.Level != 6 {
		t.Fatalf("level = %d", msg.Level)
	}
	if v, ok := msg.Field("order_id"); !ok || v.String() != "o-77" {
		t.Fatalf("order_id = %+v (present=%v)", v, ok)
	}
	if v, ok := msg.Field("items"); !ok || v.Int() != 3 {
		t.Fatalf("items = %+v (present=%v)", v, ok)
	}
	if v, ok := msg.Field(gelf.FieldLogger); !ok || v.String() != "svc.checkout" {
		t.Fatalf("logger = %+v (present=%v)", v, ok)
	}
	if !sender.closed {
		t.Fatal("Close should close the sender")
	}
}

func TestHandlerLevelMapping(t *testing.T) {
	handler, sender := newTestHandler(t, slogbridge.Options{Level: slog.Level(-8)})
	logger := slog.New(handler)

	logger.Log(context.Background(), slog.Level(-8), "trace")
	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")
	logger.Log(context.Background(), slog.LevelError+4, "critical")

	if err := handler.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	msgs := sender.drained(t, 6)
	want := []int32{7, 7, 6, 4, 3, 2}
	for i, msg := range msgs {
		if msg.Level != want[i] {
			t.Fatalf("message %d (%q): level %d, want %d", i, msg.ShortMessage, msg.Level, want[i])
		}
	}
}

func TestHandlerEnabledHonoursMinimumLevel(t *testing.T) {
	handler, sender := newTestHandler(t, slogbridge.Options{Level: slog.LevelWarn})
	logger := slog.New(handler)

	logger.Info("suppressed")
	logger.Warn("kept")

	if err := handler.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	msgs := sender.drained(t, 1)
	if msgs[0].ShortMessage != "kept" {
		t.Fatalf("delivered %q, want the warning", msgs[0].ShortMessage)
	}
}

func TestHandlerWithAttrsBecomesScope(t *testing.T) {
	handler, sender := newTestHandler(t, slogbridge.Options{})
	logger := slog.New(handler).With(slog.String("component", "worker"))

	// The record attribute outranks the handler scope on collision.
	logger.Info("tick", slog.String("component", "override"))
	logger.Info("tock")

	if err := handler.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	msgs := sender.drained(t, 2)
	if v, _ := msgs[0].Field("component"); v.String() != "override" {
		t.Fatalf("first record component = %q", v.String())
	}
	if v, _ := msgs[1].Field("component"); v.String() != "worker" {
		t.Fatalf("second record component = %q", v.String())
	}
}

func TestHandlerContextScopeOutranksHandlerScope(t *testing.T) {
	handler, sender := newTestHandler(t, slogbridge.Options{})
	logger := slog.New(handler).With(slog.String("tenant", "base"))

	ctx := scope.With(context.Background(), scope.KV("tenant", "acme"))
	logger.InfoContext(ctx, "scoped")

	if err := handler.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if v, _ := sender.drained(t, 1)[0].Field("tenant"); v.String() != "acme" {
		t.Fatalf("tenant = %q, context scope should win", v.String())
	}
}

func TestHandlerGroupsFlattenToDottedKeys(t *testing.T) {
	handler, sender := newTestHandler(t, slogbridge.Options{})
	logger := slog.New(handler).WithGroup("http")

	logger.Info("done",
		slog.String("method", "GET"),
		slog.Group("response", slog.Int("status", 204)))

	if err := handler.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	msg := sender.drained(t, 1)[0]
	if v, ok := msg.Field("http.method"); !ok || v.String() != "GET" {
		t.Fatalf("http.method = %+v (present=%v)", v, ok)
	}
	if v, ok := msg.Field("http.response.status"); !ok || v.Int() != 204 {
		t.Fatalf("http.response.status = %+v (present=%v)", v, ok)
	}
}

func TestHandlerErrorAttrBecomesException(t *testing.T) {
	handler, sender := newTestHandler(t, slogbridge.Options{})
	logger := slog.New(handler)

	logger.Error("write failed", slog.Any("error", errors.New("disk full")))

	if err := handler.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	msg := sender.drained(t, 1)[0]
	if v, ok := msg.Field(gelf.FieldException); !ok || v.String() != "disk full" {
		t.Fatalf("exception = %+v (present=%v)", v, ok)
	}
	if _, ok := msg.Field("error"); ok {
		t.Fatal("the error attribute should not also appear as a variable field")
	}
}

func TestHandlerDropsOnFullQueue(t *testing.T) {
	sender := &captureSender{}
	release := make(chan struct{})
	assembler := gelf.NewAssembler(gelf.Options{Host: "test-host"})
	handler := slogbridge.NewHandler(assembler, blockingSender{release: release, inner: sender}, slogbridge.Options{QueueCapacity: 1})
	logger := slog.New(handler)

	// The first record parks the shipping goroutine, the second fills the
	// queue; everything after that must drop instead of blocking.
	for i := 0; i < 10; i++ {
		logger.Info("flood")
	}
	if handler.Dropped() == 0 {
		t.Fatal("expected drops with a single-slot queue and a stalled sender")
	}

	close(release)
	if err := handler.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

// blockingSender stalls every delivery until released so the queue backs up.
type blockingSender struct {
	release chan struct{}
	inner   *captureSender
}

func (s blockingSender) Send(ctx context.Context, msg *gelf.Message) error {
	<-s.release
	return s.inner.Send(ctx, msg)
}

func (s blockingSender) Close() error { return s.inner.Close() }
