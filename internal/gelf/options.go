package gelf

// FieldsFactory computes additional fields once per logging call. It must be
// pure: the assembler invokes it per call and never caches the result.
type FieldsFactory func(level Level, eventID int32, err error) []Field

// Options is the assembler configuration snapshot, consumed once at
// construction and read-only afterwards, so one Options value may back any
// number of concurrent calls.
type Options struct {
	// Host identifies the emitting host or service; it becomes the record's
	// source. Empty means the operating system hostname.
	Host string

	// OmitOptionalFields suppresses the optional fixed fields (logger,
	// exception, event id and name, message template) even when present.
	// Variable additional fields are unaffected.
	OmitOptionalFields bool

	// IncludeScopes enables merging of ambient scope fields.
	IncludeScopes bool

	// IncludeMessageTemplates enables recording the raw template text.
	IncludeMessageTemplates bool

	// IncludeTraceID and IncludeSpanID individually enable the tracing
	// enrichment fields when ambient tracing context is present.
	IncludeTraceID bool
	IncludeSpanID  bool

	// AdditionalFields are static configured fields, the lowest-precedence
	// source in the merge.
	AdditionalFields []Field

	// AdditionalFieldsFactory, when set, contributes computed fields that
	// supersede same-named static fields.
	AdditionalFieldsFactory FieldsFactory
}
