// Package scope carries nested logging scopes on a context.
//
// A scope is an ordered set of fields attached to every record assembled while
// the scope is active. Scopes nest: entering one derives a child context, and
// the stack observed by a logging call is exactly the chain of contexts it was
// handed. Independent logical contexts (one per request, per goroutine tree)
// therefore hold independent stacks with no shared mutable state.
package scope
