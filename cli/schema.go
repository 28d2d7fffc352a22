package cli

import "fmt"

// Definition describes a single flag or command a Schema accepts. Definitions
// are immutable once registered; the Schema owns its stored copies.
type Definition struct {
	Name        string // canonical name, always the storage key for values
	Alias       string // optional secondary name, "" for none
	Description string
	Kind        ValueKind
	Required    bool // flags only; ignored for commands
}

// Namespace identifies which side of a Schema a name resolved to.
type Namespace int

const (
	NamespaceFlag Namespace = iota
	NamespaceCommand
)

// String returns the namespace name used in error messages.
func (n Namespace) String() string {
	if n == NamespaceCommand {
		return "command"
	}
	return "flag"
}

// Schema holds the flag and command definitions an invocation is parsed
// against. Flags and commands live in separate namespaces, but names and
// aliases must be unique across both. Once registration is finished a Schema
// is read-only and safe for concurrent parses: each Parse call works against
// its own snapshot of the required-name set.
type Schema struct {
	flags    map[string]*Definition // keyed by canonical name and alias
	commands map[string]*Definition
	required map[string]struct{} // canonical names of required flags

	// Registration order, preserved for help output and deterministic
	// required-flag reporting.
	flagOrder    []*Definition
	commandOrder []*Definition
}

// NewSchema creates an empty Schema.
func NewSchema() *Schema {
	return &Schema{
		flags:    make(map[string]*Definition),
		commands: make(map[string]*Definition),
		required: make(map[string]struct{}),
	}
}

// RegisterFlag adds def to the flag namespace. It fails if the name or alias
// collides with any registered flag, command, or alias, or if the name is
// empty; on failure the Schema is left unchanged.
func (s *Schema) RegisterFlag(def Definition) error {
	if err := s.checkNames(def); err != nil {
		return err
	}

	d := &def
	s.flags[d.Name] = d
	if d.Alias != "" {
		s.flags[d.Alias] = d
	}
	if d.Required {
		s.required[d.Name] = struct{}{}
	}
	s.flagOrder = append(s.flagOrder, d)
	return nil
}

// RegisterCommand adds def to the command namespace under the same
// uniqueness rule as RegisterFlag. Declaring at least one command makes a
// command token mandatory for every parse against this Schema.
func (s *Schema) RegisterCommand(def Definition) error {
	if err := s.checkNames(def); err != nil {
		return err
	}

	d := &def
	d.Required = false
	s.commands[d.Name] = d
	if d.Alias != "" {
		s.commands[d.Alias] = d
	}
	s.commandOrder = append(s.commandOrder, d)
	return nil
}

// Lookup resolves a name or alias to its definition and namespace. Flags are
// checked before commands, though the uniqueness rule means a name can only
// ever live in one of them.
func (s *Schema) Lookup(name string) (Namespace, *Definition, bool) {
	if def, ok := s.flags[name]; ok {
		return NamespaceFlag, def, true
	}
	if def, ok := s.commands[name]; ok {
		return NamespaceCommand, def, true
	}
	return NamespaceFlag, nil, false
}

// Flags returns the registered flag definitions in registration order. The
// returned slice holds copies; mutating it does not affect the Schema.
func (s *Schema) Flags() []Definition {
	defs := make([]Definition, 0, len(s.flagOrder))
	for _, d := range s.flagOrder {
		defs = append(defs, *d)
	}
	return defs
}

// Commands returns the registered command definitions in registration order.
func (s *Schema) Commands() []Definition {
	defs := make([]Definition, 0, len(s.commandOrder))
	for _, d := range s.commandOrder {
		defs = append(defs, *d)
	}
	return defs
}

// HasCommands reports whether any command is declared, which makes supplying
// one mandatory.
func (s *Schema) HasCommands() bool {
	return len(s.commandOrder) > 0
}

func (s *Schema) checkNames(def Definition) error {
	if def.Name == "" {
		return fmt.Errorf("definition has no name")
	}
	if s.taken(def.Name) {
		return fmt.Errorf("name %q already registered", def.Name)
	}
	if def.Alias != "" {
		if def.Alias == def.Name {
			return fmt.Errorf("alias %q duplicates the canonical name", def.Alias)
		}
		if s.taken(def.Alias) {
			return fmt.Errorf("alias %q already registered", def.Alias)
		}
	}
	return nil
}

func (s *Schema) taken(name string) bool {
	if _, ok := s.flags[name]; ok {
		return true
	}
	_, ok := s.commands[name]
	return ok
}

// requiredCopy snapshots the required-name set for a single parse. The
// parser crosses names off its copy; the Schema's own set is never touched,
// so one Schema can serve any number of sequential or concurrent parses.
func (s *Schema) requiredCopy() map[string]struct{} {
	cp := make(map[string]struct{}, len(s.required))
	for name := range s.required {
		cp[name] = struct{}{}
	}
	return cp
}

// firstMissingRequired returns the earliest-registered required flag still in
// the remaining set, keeping failure reporting deterministic.
func (s *Schema) firstMissingRequired(remaining map[string]struct{}) string {
	for _, d := range s.flagOrder {
		if _, ok := remaining[d.Name]; ok {
			return d.Name
		}
	}
	return ""
}

// DefBuilder configures a pending definition before registration, in the
// usual fluent style. Register finalizes it.
type DefBuilder struct {
	schema  *Schema
	def     Definition
	command bool
}

// Flag starts a fluent flag definition.
func (s *Schema) Flag(name, description string, kind ValueKind) *DefBuilder {
	return &DefBuilder{
		schema: s,
		def:    Definition{Name: name, Description: description, Kind: kind},
	}
}

// Command starts a fluent command definition.
func (s *Schema) Command(name, description string, kind ValueKind) *DefBuilder {
	return &DefBuilder{
		schema:  s,
		def:     Definition{Name: name, Description: description, Kind: kind},
		command: true,
	}
}

// Alias sets a secondary name for the definition.
func (b *DefBuilder) Alias(alias string) *DefBuilder {
	b.def.Alias = alias
	return b
}

// Required marks the flag as required. It has no effect on commands.
func (b *DefBuilder) Required() *DefBuilder {
	b.def.Required = true
	return b
}

// Register adds the definition to the Schema.
func (b *DefBuilder) Register() error {
	if b.command {
		return b.schema.RegisterCommand(b.def)
	}
	return b.schema.RegisterFlag(b.def)
}
