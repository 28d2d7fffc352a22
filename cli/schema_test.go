//nolint:testpackage // using package name 'cli' to match the package under test
package cli

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegisterFlagCollisions(t *testing.T) {
	s := NewSchema()
	if err := s.RegisterFlag(Definition{Name: "verbose", Alias: "v", Kind: KindStatic}); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	cases := []struct {
		name string
		def  Definition
	}{
		{"duplicate name", Definition{Name: "verbose", Kind: KindStatic}},
		{"duplicate alias as name", Definition{Name: "v", Kind: KindStatic}},
		{"name colliding with alias", Definition{Name: "quiet", Alias: "v", Kind: KindStatic}},
		{"alias colliding with name", Definition{Name: "quiet", Alias: "verbose", Kind: KindStatic}},
		{"alias equal to own name", Definition{Name: "quiet", Alias: "quiet", Kind: KindStatic}},
		{"empty name", Definition{Kind: KindStatic}},
	}

	for _, tc := range cases {
		if err := s.RegisterFlag(tc.def); err == nil {
			t.Errorf("%s: expected registration to fail", tc.name)
		}
	}

	// Failed registrations must leave the schema unchanged.
	if len(s.Flags()) != 1 {
		t.Errorf("expected exactly one registered flag, got %d", len(s.Flags()))
	}
	if _, _, ok := s.Lookup("quiet"); ok {
		t.Error("rejected definition leaked into the schema")
	}
}

func TestRegisterAcrossNamespaces(t *testing.T) {
	s := NewSchema()
	if err := s.RegisterFlag(Definition{Name: "build", Kind: KindStatic}); err != nil {
		t.Fatalf("flag registration failed: %v", err)
	}

	if err := s.RegisterCommand(Definition{Name: "build", Kind: KindArray}); err == nil {
		t.Error("command name colliding with a flag must fail")
	}
	if err := s.RegisterCommand(Definition{Name: "run", Alias: "build", Kind: KindArray}); err == nil {
		t.Error("command alias colliding with a flag must fail")
	}
	if err := s.RegisterCommand(Definition{Name: "run", Kind: KindArray}); err != nil {
		t.Errorf("non-colliding command failed: %v", err)
	}
	if err := s.RegisterFlag(Definition{Name: "run", Kind: KindStatic}); err == nil {
		t.Error("flag name colliding with a command must fail")
	}
}

func TestLookup(t *testing.T) {
	s := buildSchema(t)

	ns, def, ok := s.Lookup("count")
	if !ok || ns != NamespaceFlag || def.Name != "count" {
		t.Errorf("lookup count: got %v %+v ok=%v", ns, def, ok)
	}

	ns, def, ok = s.Lookup("c")
	if !ok || ns != NamespaceFlag || def.Name != "count" {
		t.Errorf("lookup alias c must resolve to count, got %+v", def)
	}

	ns, def, ok = s.Lookup("build")
	if !ok || ns != NamespaceCommand || def.Name != "build" {
		t.Errorf("lookup build: got %v %+v ok=%v", ns, def, ok)
	}

	if _, _, ok = s.Lookup("missing"); ok {
		t.Error("lookup of an unregistered name must fail")
	}
}

func TestOrderedViews(t *testing.T) {
	s := NewSchema()
	for _, name := range []string{"alpha", "bravo", "charlie"} {
		if err := s.RegisterFlag(Definition{Name: name, Kind: KindString}); err != nil {
			t.Fatal(err)
		}
	}

	var got []string
	for _, d := range s.Flags() {
		got = append(got, d.Name)
	}
	if diff := cmp.Diff([]string{"alpha", "bravo", "charlie"}, got); diff != "" {
		t.Errorf("registration order not preserved (-want +got):\n%s", diff)
	}
}

func TestViewsAreCopies(t *testing.T) {
	s := buildSchema(t)

	defs := s.Flags()
	defs[0].Name = "mutated"

	if _, _, ok := s.Lookup("mutated"); ok {
		t.Error("mutating the returned view must not affect the schema")
	}
	if _, _, ok := s.Lookup("verbose"); !ok {
		t.Error("original definition lost after view mutation")
	}
}

func TestCommandRequiredFieldIgnored(t *testing.T) {
	s := NewSchema()
	if err := s.RegisterCommand(Definition{Name: "build", Kind: KindStatic, Required: true}); err != nil {
		t.Fatal(err)
	}

	// Required-ness is a flag concept; a declared command is mandatory by
	// existence, not by this field.
	if cmds := s.Commands(); cmds[0].Required {
		t.Error("command definitions must not carry the Required flag")
	}
}

func TestBuilderRegistersEquivalentDefinition(t *testing.T) {
	a := NewSchema()
	if err := a.Flag("count", "iterations", KindInteger).Alias("c").Required().Register(); err != nil {
		t.Fatal(err)
	}

	b := NewSchema()
	if err := b.RegisterFlag(Definition{
		Name:        "count",
		Alias:       "c",
		Description: "iterations",
		Kind:        KindInteger,
		Required:    true,
	}); err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(b.Flags(), a.Flags()); diff != "" {
		t.Errorf("builder and direct registration diverge (-direct +builder):\n%s", diff)
	}
}
