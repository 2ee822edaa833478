package models

// Result is an analysis result: a mapping from metric names to scalars,
// nested mappings or ordered lists, all JSON-serializable primitives.
// Results are built fresh per request and never mutated afterwards.
type Result map[string]any

// ErrorResult builds the sentinel result signalling a valid request with no
// usable data. Callers must check for the "error" key before trusting any
// other field.
func ErrorResult(msg string) Result {
	return Result{"error": msg}
}

// IsError reports whether r is an error sentinel.
func (r Result) IsError() bool {
	_, ok := r["error"]
	return ok
}
