// Package gelf assembles structured logging calls into GELF records.
//
// The assembler is the correctness-critical middle of the pipeline: it maps
// framework levels to syslog severities, renders message templates, merges
// additional fields from configuration, per-call factories, ambient scopes,
// tracing context, and template bindings under a strict precedence order, and
// applies the null-elision and optional-field omission policies before the
// record is handed to a sender.
//
// Assemblers are stateless and reentrant; every call allocates its own merged
// field map and result record, so concurrent callers need no locking.
package gelf
