package cli

// ValueKind determines how a flag or command consumes tokens during parsing.
// Static consumes none, the scalar kinds consume exactly one per occurrence,
// and Array consumes greedily until the next flag token or end of input.
type ValueKind int

const (
	KindStatic ValueKind = iota
	KindString
	KindInteger
	KindFloat
	KindArray
)

// String returns the kind name as shown in help output and error messages.
func (k ValueKind) String() string {
	switch k {
	case KindStatic:
		return "static"
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// RequiresValue reports whether the kind consumes at least one value token.
func (k ValueKind) RequiresValue() bool {
	return k != KindStatic
}
