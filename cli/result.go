package cli

import "github.com/rodrigoo-r/cli/internal/pool"

// ParseResult holds the outcome of one Parse call. Check Success before
// reading anything else; on failure no other field is meaningful.
//
// A result owns only the buffers its parse allocated. Call Dispose when the
// values are no longer needed; it is an idempotent no-op after the first
// call. Views returned by the accessors are read-only and valid until then.
type ParseResult struct {
	Success bool

	values     map[string]ParsedValue // keyed by canonical flag name
	command    ParsedValue
	commandDef *Definition

	accumulators []*[]string
	disposed     bool
}

func newParseResult() *ParseResult {
	return &ParseResult{
		values: make(map[string]ParsedValue),
	}
}

// Get returns the value recorded for the canonical flag name, if present and
// of the wanted kind. Aliases never appear as keys; look up by the canonical
// name regardless of which spelling appeared on the command line.
func (r *ParseResult) Get(name string, want ValueKind) (ParsedValue, bool) {
	v, ok := r.values[name]
	if !ok || v.kind != want {
		return ParsedValue{}, false
	}
	return v, true
}

// Command returns the parsed command value and the definition it resolved
// to. The definition is nil when no command was supplied.
func (r *ParseResult) Command() (ParsedValue, *Definition) {
	return r.command, r.commandDef
}

// Has reports whether a Static flag was seen. Repeated occurrences are
// idempotent, so this is the whole of a Static flag's payload.
func (r *ParseResult) Has(name string) bool {
	v, ok := r.values[name]
	return ok && v.kind == KindStatic && v.present
}

// GetString retrieves a String flag value (safe access).
func (r *ParseResult) GetString(name string) (string, bool) {
	return r.values[name].String()
}

// GetInt retrieves an Integer flag value (safe access).
func (r *ParseResult) GetInt(name string) (int64, bool) {
	return r.values[name].Int()
}

// GetFloat retrieves a Float flag value (safe access).
func (r *ParseResult) GetFloat(name string) (float64, bool) {
	return r.values[name].Float()
}

// GetStrings retrieves an Array flag's accumulated values (safe access).
func (r *ParseResult) GetStrings(name string) ([]string, bool) {
	return r.values[name].Strings()
}

// MustGetString retrieves a String flag value with a default fallback.
func (r *ParseResult) MustGetString(name, fallback string) string {
	if v, ok := r.GetString(name); ok {
		return v
	}
	return fallback
}

// MustGetInt retrieves an Integer flag value with a default fallback.
func (r *ParseResult) MustGetInt(name string, fallback int64) int64 {
	if v, ok := r.GetInt(name); ok {
		return v
	}
	return fallback
}

// MustGetFloat retrieves a Float flag value with a default fallback.
func (r *ParseResult) MustGetFloat(name string, fallback float64) float64 {
	if v, ok := r.GetFloat(name); ok {
		return v
	}
	return fallback
}

// MustGetStrings retrieves an Array flag's values with a default fallback.
func (r *ParseResult) MustGetStrings(name string, fallback []string) []string {
	if v, ok := r.GetStrings(name); ok {
		return v
	}
	return fallback
}

// Dispose releases every accumulator the parse allocated back to the pool.
// Array views obtained before Dispose become invalid. Safe to call more than
// once.
func (r *ParseResult) Dispose() {
	if r.disposed {
		return
	}
	r.disposed = true

	for _, acc := range r.accumulators {
		pool.PutStringSlice(acc)
	}
	r.accumulators = nil
}
