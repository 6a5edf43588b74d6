package gelf

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"grayline/internal/scope"
)

// Additional-field names for the optional fixed fields.
const (
	FieldLogger          = "logger"
	FieldException       = "exception"
	FieldEventID         = "event_id"
	FieldEventName       = "event_name"
	FieldMessageTemplate = "message_template"
)

// Assembler converts logging events into GELF records. It is stateless apart
// from its immutable options and safe for concurrent use.
type Assembler struct {
	opts Options
	host string
}

// NewAssembler builds an assembler from an options snapshot. An empty host
// falls back to the operating system hostname.
func NewAssembler(opts Options) *Assembler {
	host := opts.Host
	if host == "" {
		if h, err := os.Hostname(); err == nil && h != "" {
			host = h
		} else {
			host = "localhost"
		}
	}
	return &Assembler{opts: opts, host: host}
}

// Assemble builds the record for one logging event, merging the scopes and
// tracing context active on ctx. It transmits nothing and retains nothing;
// any failure is local to this single call.
func (a *Assembler) Assemble(ctx context.Context, ev Event) (*Message, error) {
	rendered, template, templateFields, err := ev.text()
	if err != nil {
		return nil, err
	}
	severity, err := ev.Level.Severity()
	if err != nil {
		return nil, err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	scopes := scope.Snapshot(ctx)
	if len(ev.Scopes) > 0 {
		outer := make([]scope.Entry, 0, len(ev.Scopes)+len(scopes))
		outer = append(outer, ev.Scopes...)
		scopes = append(outer, scopes...)
	}

	merged := collectFields(ev, a.opts, scopes, traceFields(ctx, a.opts), templateFields)
	dropNulls(merged)

	if !a.opts.OmitOptionalFields {
		if ev.Logger != "" {
			merged[FieldLogger] = StringValue(ev.Logger)
		}
		if ev.Err != nil {
			merged[FieldException] = StringValue(fmt.Sprintf("%+v", ev.Err))
		}
		if ev.EventID != 0 {
			merged[FieldEventID] = IntValue(int64(ev.EventID))
		}
		if ev.EventName != "" {
			merged[FieldEventName] = StringValue(ev.EventName)
		}
		if a.opts.IncludeMessageTemplates && template != "" {
			merged[FieldMessageTemplate] = StringValue(template)
		}
	}

	short, full := splitMessage(rendered)
	return &Message{
		ID:           uuid.NewString(),
		Version:      Version,
		Host:         a.host,
		ShortMessage: short,
		FullMessage:  full,
		Timestamp:    time.Now(),
		Level:        severity,
		Extra:        merged,
	}, nil
}

// splitMessage keeps the short message to a single line. Multi-line text
// keeps its first line as the short message and the whole text as the full
// message, matching how aggregation backends display the pair.
func splitMessage(rendered string) (short, full string) {
	idx := strings.IndexByte(rendered, '\n')
	if idx < 0 {
		return rendered, ""
	}
	return strings.TrimRight(rendered[:idx], "\r"), rendered
}
