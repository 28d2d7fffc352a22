package cli

// ParsedValue is the tagged variant produced for each flag occurrence and for
// the command. Kind and payload travel together: asking for the payload with
// the wrong kind yields nothing rather than a reinterpreted value.
//
// Array views returned by Strings are backed by buffers owned by the
// ParseResult that produced the value. They are read-only and remain valid
// until the result is disposed.
type ParsedValue struct {
	kind    ValueKind
	present bool
	str     string
	num     int64
	fl      float64
	items   *[]string
}

func staticValue() ParsedValue {
	return ParsedValue{kind: KindStatic, present: true}
}

func stringValue(s string) ParsedValue {
	return ParsedValue{kind: KindString, present: true, str: s}
}

func integerValue(n int64) ParsedValue {
	return ParsedValue{kind: KindInteger, present: true, num: n}
}

func floatValue(f float64) ParsedValue {
	return ParsedValue{kind: KindFloat, present: true, fl: f}
}

func arrayValue(items *[]string) ParsedValue {
	return ParsedValue{kind: KindArray, present: true, items: items}
}

// Kind returns the kind the value was parsed as.
func (v ParsedValue) Kind() ValueKind {
	return v.kind
}

// Present reports whether the value was recorded at all. For Static kinds
// this is the entire payload.
func (v ParsedValue) Present() bool {
	return v.present
}

// String returns the string payload if the value is a present String.
func (v ParsedValue) String() (string, bool) {
	if !v.present || v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// Int returns the integer payload if the value is a present Integer.
func (v ParsedValue) Int() (int64, bool) {
	if !v.present || v.kind != KindInteger {
		return 0, false
	}
	return v.num, true
}

// Float returns the float payload if the value is a present Float.
func (v ParsedValue) Float() (float64, bool) {
	if !v.present || v.kind != KindFloat {
		return 0, false
	}
	return v.fl, true
}

// Strings returns the accumulated sequence if the value is a present Array.
// An Array closed without consuming any tokens yields an empty, non-nil
// slice.
func (v ParsedValue) Strings() ([]string, bool) {
	if !v.present || v.kind != KindArray || v.items == nil {
		return nil, false
	}
	return *v.items, true
}
