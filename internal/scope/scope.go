package scope

import "context"

// Field is one named value contributed by a scope. Values are coerced to the
// wire value types when a record is assembled; a nil Value requests omission.
type Field struct {
	Key   string
	Value any
}

// KV builds a scope field.
func KV(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Entry is the ordered field set of a single scope.
type Entry []Field

type contextKey string

const nodeKey contextKey = "scope_node"

// node links one scope entry to its parent, innermost last. Contexts share
// nodes structurally, so concurrent logical contexts never observe each
// other's scopes and exit order is enforced by context lifetime alone.
type node struct {
	parent *node
	entry  Entry
}

// With derives a context carrying an additional scope. The scope stays active
// for exactly the lifetime of the returned context; abandoning that context is
// the only way to exit the scope, so exits are LIFO by construction.
func With(ctx context.Context, fields ...Field) context.Context {
	if len(fields) == 0 {
		return ctx
	}
	entry := make(Entry, len(fields))
	copy(entry, fields)
	parent, _ := ctx.Value(nodeKey).(*node)
	return context.WithValue(ctx, nodeKey, &node{parent: parent, entry: entry})
}

// WithMap derives a context carrying a scope built from a map. Iteration order
// of Go maps is unspecified, so entries are not reordered; callers that care
// about intra-scope ordering should use With.
func WithMap(ctx context.Context, fields map[string]any) context.Context {
	if len(fields) == 0 {
		return ctx
	}
	entry := make(Entry, 0, len(fields))
	for k, v := range fields {
		entry = append(entry, Field{Key: k, Value: v})
	}
	return context.WithValue(ctx, nodeKey, &node{
		parent: currentNode(ctx),
		entry:  entry,
	})
}

// Snapshot returns the scopes active on ctx, outermost first. The returned
// entries are shared and must not be mutated.
func Snapshot(ctx context.Context) []Entry {
	if ctx == nil {
		return nil
	}
	n := currentNode(ctx)
	if n == nil {
		return nil
	}
	depth := 0
	for cur := n; cur != nil; cur = cur.parent {
		depth++
	}
	entries := make([]Entry, depth)
	for cur := n; cur != nil; cur = cur.parent {
		depth--
		entries[depth] = cur.entry
	}
	return entries
}

func currentNode(ctx context.Context) *node {
	n, _ := ctx.Value(nodeKey).(*node)
	return n
}
