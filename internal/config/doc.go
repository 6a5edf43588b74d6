// Package config loads, normalizes, and validates grayline configuration.
//
// It supplies repository defaults, expands user paths, reads TOML files, and
// honours the GRAYLINE_ENDPOINT environment fallback. The Config type holds
// every knob the CLI and the slog bridge need; AssemblerOptions converts the
// message and tracing sections into the assembler's immutable options
// snapshot.
package config
