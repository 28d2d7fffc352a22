package cli

import (
	"strconv"

	"github.com/rodrigoo-r/cli/internal/fuzzy"
)

// ErrorCategory classifies parse failures. It drives caller-side handling and
// suggestion logic.
type ErrorCategory string

const (
	ErrorMalformedToken  ErrorCategory = "malformed_token"
	ErrorUnknownFlag     ErrorCategory = "unknown_flag"
	ErrorUnknownCommand  ErrorCategory = "unknown_command"
	ErrorMissingValue    ErrorCategory = "missing_value"
	ErrorMultipleCommand ErrorCategory = "multiple_commands"
	ErrorMissingRequired ErrorCategory = "missing_required_input"
	ErrorAllocation      ErrorCategory = "allocation_failure"
)

// ParseError is the tagged error returned when a parse abandons its pass. It
// carries the offending token, the kind that was expected when one applies,
// and the token's position in the input (or the input length for end-of-input
// failures).
type ParseError struct {
	Category   ErrorCategory
	Message    string
	Token      string
	Position   int
	Expected   ValueKind
	Suggestion string
}

func (e *ParseError) Error() string {
	if e.Suggestion != "" {
		return e.Message + " (did you mean " + e.Suggestion + "?)"
	}
	return e.Message
}

const suggestionMaxDistance = 2

func malformedTokenError(token string, pos int) *ParseError {
	return &ParseError{
		Category: ErrorMalformedToken,
		Message:  "malformed flag token " + strconv.Quote(token),
		Token:    token,
		Position: pos,
	}
}

func unknownFlagError(schema *Schema, name, token string, pos int) *ParseError {
	err := &ParseError{
		Category: ErrorUnknownFlag,
		Message:  "unknown flag: --" + name,
		Token:    token,
		Position: pos,
	}
	if best := fuzzy.FindBestFlag(name, flagNames(schema), suggestionMaxDistance); best != "" {
		err.Suggestion = "--" + best
	}
	return err
}

func unknownCommandError(schema *Schema, token string, pos int) *ParseError {
	err := &ParseError{
		Category: ErrorUnknownCommand,
		Message:  "unknown command: " + token,
		Token:    token,
		Position: pos,
	}
	if best := fuzzy.FindBestCommand(token, commandNames(schema), suggestionMaxDistance); best != "" {
		err.Suggestion = best
	}
	return err
}

func missingValueError(def *Definition, token string, pos int) *ParseError {
	return &ParseError{
		Category: ErrorMissingValue,
		Message:  "missing " + def.Kind.String() + " value for " + def.Name,
		Token:    token,
		Position: pos,
		Expected: def.Kind,
	}
}

func multipleCommandsError(token string, pos int) *ParseError {
	return &ParseError{
		Category: ErrorMultipleCommand,
		Message:  "unexpected second command: " + token,
		Token:    token,
		Position: pos,
	}
}

func missingRequiredFlagError(name string, pos int) *ParseError {
	return &ParseError{
		Category: ErrorMissingRequired,
		Message:  "required flag not provided: --" + name,
		Token:    name,
		Position: pos,
	}
}

func missingCommandError(pos int) *ParseError {
	return &ParseError{
		Category: ErrorMissingRequired,
		Message:  "no command provided",
		Position: pos,
	}
}

func allocationError(name string, pos int) *ParseError {
	return &ParseError{
		Category: ErrorAllocation,
		Message:  "could not allocate accumulator for " + name,
		Token:    name,
		Position: pos,
	}
}

func flagNames(schema *Schema) []string {
	names := make([]string, 0, len(schema.flagOrder)*2)
	for _, d := range schema.flagOrder {
		names = append(names, d.Name)
		if d.Alias != "" {
			names = append(names, d.Alias)
		}
	}
	return names
}

func commandNames(schema *Schema) []string {
	names := make([]string, 0, len(schema.commandOrder)*2)
	for _, d := range schema.commandOrder {
		names = append(names, d.Name)
		if d.Alias != "" {
			names = append(names, d.Alias)
		}
	}
	return names
}
