package gelf

import "grayline/internal/scope"

// collectFields merges every additional-field source into one fresh map.
// Sources apply in increasing precedence, later overwriting earlier on name
// collision:
//
//  1. static configured fields
//  2. factory-computed fields
//  3. scope fields, outermost to innermost (when scope inclusion is on),
//     with tracing enrichment at the same ambient tier
//  4. call-site and template-bound fields
//
// After the merge, any name whose final value is Null is dropped: an explicit
// Null wins over every lower-precedence value and then elides the field.
func collectFields(ev Event, opts Options, scopes []scope.Entry, traceFields, templateFields []Field) map[string]Value {
	merged := make(map[string]Value)

	applyFields(merged, opts.AdditionalFields)
	if opts.AdditionalFieldsFactory != nil {
		applyFields(merged, opts.AdditionalFieldsFactory(ev.Level, ev.EventID, ev.Err))
	}
	if opts.IncludeScopes {
		for _, entry := range scopes {
			for _, f := range entry {
				if f.Key == "" {
					continue
				}
				merged[f.Key] = ValueOf(f.Value)
			}
		}
	}
	applyFields(merged, traceFields)
	applyFields(merged, ev.Fields)
	applyFields(merged, templateFields)

	return merged
}

func applyFields(merged map[string]Value, fields []Field) {
	for _, f := range fields {
		if f.Key == "" {
			continue
		}
		merged[f.Key] = f.Value
	}
}

// dropNulls removes every field whose resolved value is Null. The final state
// wins: a Null that overwrote a non-null lower-tier value still elides.
func dropNulls(merged map[string]Value) {
	for name, value := range merged {
		if value.IsNull() {
			delete(merged, name)
		}
	}
}
