// Package tracectx carries distributed tracing identifiers on a context so
// assembled records can be correlated with traces. Absence of tracing context
// is normal and never an error; the assembler simply omits the fields.
package tracectx
