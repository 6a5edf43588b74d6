// Package slogbridge exposes the assembler as a log/slog handler.
//
// Each slog record becomes one assembled GELF message: the record's message
// text passes through unparsed, its attributes merge at call-site precedence,
// and attrs added via Logger.With become scopes outside any carried by the
// record's context. Delivery is decoupled from the logging call by a bounded
// queue that drops on overflow, so instrumented code never blocks on the
// collector.
package slogbridge
