package slogbridge

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"grayline/internal/gelf"
	"grayline/internal/scope"
	"grayline/internal/transport"
)

// Options tunes handler construction.
type Options struct {
	// Logger names the emitting logger on every record.
	Logger string
	// Level is the minimum level the handler accepts. Nil means slog.LevelInfo.
	Level slog.Leveler
	// QueueCapacity bounds the delivery queue. Zero means 1024.
	QueueCapacity int
	// Diagnostics receives the handler's own operational output (drops,
	// delivery failures). Nil discards it; the handler never logs through
	// itself.
	Diagnostics *slog.Logger
}

// Handler is an slog.Handler that assembles each record into a GELF message
// and queues it for delivery. Assembly runs synchronously on the calling
// goroutine; delivery runs on the handler's shipping goroutine so a slow
// collector never blocks the instrumented code path.
type Handler struct {
	core   *core
	scopes []scope.Entry
	groups []string
}

// core is shared by every handler derived via WithAttrs/WithGroup.
type core struct {
	assembler *gelf.Assembler
	sender    transport.Sender
	logger    string
	level     slog.Leveler
	diag      *slog.Logger

	queue   chan *gelf.Message
	done    chan struct{}
	wg      sync.WaitGroup
	dropped atomic.Uint64
}

// NewHandler builds a handler and starts its shipping goroutine. The caller
// owns the sender's lifetime through Close.
func NewHandler(assembler *gelf.Assembler, sender transport.Sender, opts Options) *Handler {
	capacity := opts.QueueCapacity
	if capacity <= 0 {
		capacity = 1024
	}
	diag := opts.Diagnostics
	if diag == nil {
		diag = slog.New(noopHandler{})
	}
	c := &core{
		assembler: assembler,
		sender:    sender,
		logger:    opts.Logger,
		level:     opts.Level,
		diag:      diag,
		queue:     make(chan *gelf.Message, capacity),
		done:      make(chan struct{}),
	}
	c.wg.Add(1)
	go c.ship()
	return &Handler{core: c}
}

// Enabled reports whether records at level are accepted.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	min := slog.LevelInfo
	if h.core.level != nil {
		min = h.core.level.Level()
	}
	return level >= min
}

// Handle assembles the record and queues it for delivery. Assembly failures
// are returned to slog and affect only this record; a full queue drops the
// record rather than blocking.
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	ev := gelf.Event{
		Level:   mapLevel(r.Level),
		Message: r.Message,
		Logger:  h.core.logger,
		Scopes:  h.scopes,
	}

	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&ev, h.groups, a)
		return true
	})

	msg, err := h.core.assembler.Assemble(ctx, ev)
	if err != nil {
		return err
	}

	select {
	case h.core.queue <- msg:
	default:
		dropped := h.core.dropped.Add(1)
		h.core.diag.Warn("delivery queue full, dropping record",
			slog.Uint64("dropped_total", dropped))
	}
	return nil
}

// WithAttrs returns a handler whose records carry an additional scope built
// from attrs. The scope sits outside any scopes on the record's context.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	entry := make(scope.Entry, 0, len(attrs))
	for _, a := range attrs {
		a.Value = a.Value.Resolve()
		if a.Value.Kind() == slog.KindGroup {
			for _, f := range flattenGroup(h.groups, a) {
				entry = append(entry, scope.KV(f.Key, f.Value.Any()))
			}
			continue
		}
		if a.Key == "" {
			continue
		}
		entry = append(entry, scope.KV(joinKey(h.groups, a.Key), attrValue(a.Value)))
	}
	if len(entry) == 0 {
		return h
	}
	derived := *h
	derived.scopes = append(append([]scope.Entry(nil), h.scopes...), entry)
	return &derived
}

// WithGroup returns a handler that prefixes subsequent attribute keys with
// the group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	derived := *h
	derived.groups = append(append([]string(nil), h.groups...), name)
	return &derived
}

// Dropped reports how many records were discarded on a full queue.
func (h *Handler) Dropped() uint64 {
	return h.core.dropped.Load()
}

// Close drains the delivery queue, stops the shipping goroutine, and closes
// the sender. Records handled after Close are dropped.
func (h *Handler) Close() error {
	close(h.core.done)
	h.core.wg.Wait()
	return h.core.sender.Close()
}

func (c *core) ship() {
	defer c.wg.Done()
	for {
		select {
		case msg := <-c.queue:
			c.deliver(msg)
		case <-c.done:
			for {
				select {
				case msg := <-c.queue:
					c.deliver(msg)
				default:
					return
				}
			}
		}
	}
}

func (c *core) deliver(msg *gelf.Message) {
	if err := c.sender.Send(context.Background(), msg); err != nil {
		c.diag.Warn("record delivery failed",
			slog.String("message_id", msg.ID),
			slog.Any("error", err))
	}
}

// noopHandler discards all output.
type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (noopHandler) Handle(context.Context, slog.Record) error { return nil }
func (noopHandler) WithAttrs([]slog.Attr) slog.Handler        { return noopHandler{} }
func (noopHandler) WithGroup(string) slog.Handler             { return noopHandler{} }
