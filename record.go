package scpdoc

import (
	"fmt"
	"html"
)

// Record is a decoded document description. It is schema-less: recognized
// keys are picked out by the renderers and everything else is ignored.
// Records typically come from unmarshalling JSON or YAML into `any`.
type Record map[string]any

// str returns the value under key as a string, or def when the key is
// missing. A present-but-empty value is kept as-is; only key absence
// triggers the default. An explicit null counts as absent.
func (r Record) str(key, def string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return def
	}
	return stringify(v)
}

// strOpt returns the value under key as a string, or "" when missing.
func (r Record) strOpt(key string) string {
	return r.str(key, "")
}

// sub returns the nested record under key. Missing keys and wrong-shaped
// values yield an empty record, so accessors on the result still default.
func (r Record) sub(key string) Record {
	switch v := r[key].(type) {
	case Record:
		return v
	case map[string]any:
		return Record(v)
	default:
		return Record{}
	}
}

// list returns the sequence under key, or nil for anything else.
func (r Record) list(key string) []any {
	v, _ := r[key].([]any)
	return v
}

// asRecord converts one sequence element into a Record, degrading to an
// empty record for non-map elements.
func asRecord(v any) Record {
	switch m := v.(type) {
	case Record:
		return m
	case map[string]any:
		return Record(m)
	default:
		return Record{}
	}
}

// stringify renders a scalar the way it appeared in the source document:
// strings pass through, integral floats print without a decimal point.
func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// esc HTML-escapes a value for text and attribute positions.
func esc(s string) string {
	return html.EscapeString(s)
}
