package cli

import (
	"strconv"

	"github.com/rodrigoo-r/cli/internal/pool"
)

// parseState represents the current state of the parser state machine.
type parseState int

const (
	stateFlagOrCommand parseState = iota
	stateValue
	stateArrayValue
)

// Parser runs a single left-to-right pass over a token slice against a
// Schema. A Parser holds no per-call state, so one Parser per Schema can
// serve sequential or concurrent parses once registration is finished.
//
// Token conventions: "--name" is a long flag, "-name" a short one; a bare "-"
// or a flag token with an empty name is malformed. Any token with a leading
// '-' is classified as a flag marker, so negative numbers cannot be passed as
// values. A later occurrence of a flag overwrites an earlier one.
type Parser struct {
	schema *Schema
}

// NewParser creates a parser bound to schema.
func NewParser(schema *Schema) *Parser {
	return &Parser{schema: schema}
}

// parseContext is the transient per-call state threaded through the machine.
type parseContext struct {
	result   *ParseResult
	required map[string]struct{} // private snapshot, crossed off as flags are seen
	state    parseState

	// Scalar target while in stateValue.
	target        *Definition
	targetCommand bool

	// Open accumulator while in stateArrayValue.
	acc        *[]string
	accDef     *Definition
	accCommand bool

	commandSeen bool
}

// Parse consumes tokens (program name excluded) and produces the typed
// result. It fails fast: on the first offending token the pass is abandoned,
// every buffer the call allocated is released, and the returned result has
// Success false with no other meaningful field. The returned error is always
// a *ParseError on failure.
func (p *Parser) Parse(tokens []string) (*ParseResult, error) {
	result := newParseResult()
	ctx := &parseContext{
		result:   result,
		required: p.schema.requiredCopy(),
		state:    stateFlagOrCommand,
	}

	ok := false
	defer func() {
		if !ok {
			result.Dispose()
		}
	}()

	for pos, tok := range tokens {
		if err := p.step(ctx, tok, pos); err != nil {
			return result, err
		}
	}
	if err := p.finish(ctx, len(tokens)); err != nil {
		return result, err
	}

	result.Success = true
	ok = true
	return result, nil
}

// step feeds one token to the state machine.
func (p *Parser) step(ctx *parseContext, tok string, pos int) error {
	flagToken := len(tok) > 0 && tok[0] == '-'

	switch ctx.state {
	case stateValue:
		if flagToken {
			return missingValueError(ctx.target, tok, pos)
		}
		p.storeScalar(ctx, tok)
		return nil

	case stateArrayValue:
		if flagToken {
			// Greedy consumption ends here; the token is re-dispatched as if
			// the machine were back at its initial state.
			p.closeArray(ctx)
			return p.dispatch(ctx, tok, pos)
		}
		*ctx.acc = append(*ctx.acc, tok)
		return nil

	default:
		return p.dispatch(ctx, tok, pos)
	}
}

// dispatch handles a token in stateFlagOrCommand.
func (p *Parser) dispatch(ctx *parseContext, tok string, pos int) error {
	if len(tok) > 0 && tok[0] == '-' {
		name, err := flagTokenName(tok, pos)
		if err != nil {
			return err
		}

		def, found := p.schema.flags[name]
		if !found {
			return unknownFlagError(p.schema, name, tok, pos)
		}

		// Satisfaction is keyed by the canonical name, so an alias
		// occurrence crosses off the same entry.
		delete(ctx.required, def.Name)

		switch def.Kind {
		case KindStatic:
			ctx.result.values[def.Name] = staticValue()
		case KindArray:
			return p.openArray(ctx, def, false, pos)
		default:
			ctx.target = def
			ctx.targetCommand = false
			ctx.state = stateValue
		}
		return nil
	}

	// Plain token: the positional command.
	if ctx.commandSeen {
		return multipleCommandsError(tok, pos)
	}
	def, found := p.schema.commands[tok]
	if !found {
		return unknownCommandError(p.schema, tok, pos)
	}
	ctx.commandSeen = true
	ctx.result.commandDef = def

	switch def.Kind {
	case KindStatic:
		ctx.result.command = staticValue()
	case KindArray:
		return p.openArray(ctx, def, true, pos)
	default:
		ctx.target = def
		ctx.targetCommand = true
		ctx.state = stateValue
	}
	return nil
}

// finish applies the end-of-input rules.
func (p *Parser) finish(ctx *parseContext, end int) error {
	switch ctx.state {
	case stateValue:
		return missingValueError(ctx.target, "", end)
	case stateArrayValue:
		// An array may close empty.
		p.closeArray(ctx)
	}

	if p.schema.HasCommands() && !ctx.commandSeen {
		return missingCommandError(end)
	}
	if len(ctx.required) > 0 {
		return missingRequiredFlagError(p.schema.firstMissingRequired(ctx.required), end)
	}
	return nil
}

// storeScalar converts the token per the remembered kind and records it under
// the canonical name (or the command slot).
func (p *Parser) storeScalar(ctx *parseContext, tok string) {
	var v ParsedValue
	switch ctx.target.Kind {
	case KindString:
		v = stringValue(tok)
	case KindInteger:
		// Locale-independent base-10; malformed text degrades to zero
		// rather than aborting the pass.
		n, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			n = 0
		}
		v = integerValue(n)
	case KindFloat:
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			f = 0
		}
		v = floatValue(f)
	}

	if ctx.targetCommand {
		ctx.result.command = v
	} else {
		ctx.result.values[ctx.target.Name] = v
	}
	ctx.target = nil
	ctx.state = stateFlagOrCommand
}

// openArray acquires a pooled accumulator and enters stateArrayValue. The
// accumulator is registered with the result immediately so that every exit
// path, including failures, releases it through Dispose.
func (p *Parser) openArray(ctx *parseContext, def *Definition, forCommand bool, pos int) error {
	acc := pool.GetStringSlice()
	if acc == nil {
		return allocationError(def.Name, pos)
	}
	ctx.result.accumulators = append(ctx.result.accumulators, acc)

	ctx.acc = acc
	ctx.accDef = def
	ctx.accCommand = forCommand
	ctx.state = stateArrayValue
	return nil
}

// closeArray seals the open accumulator into a ParsedValue.
func (p *Parser) closeArray(ctx *parseContext) {
	v := arrayValue(ctx.acc)
	if ctx.accCommand {
		ctx.result.command = v
	} else {
		ctx.result.values[ctx.accDef.Name] = v
	}
	ctx.acc = nil
	ctx.accDef = nil
	ctx.accCommand = false
	ctx.state = stateFlagOrCommand
}

// flagTokenName strips the marker from a flag token. "--name" and "-name"
// both resolve through the same namespace; a bare "-" or "--" is malformed.
func flagTokenName(tok string, pos int) (string, error) {
	name := tok[1:]
	if len(name) > 0 && name[0] == '-' {
		name = name[1:]
	}
	if name == "" {
		return "", malformedTokenError(tok, pos)
	}
	return name, nil
}
