//nolint:testpackage // using package name 'cli' to match the package under test
package cli

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
)

func TestHelpRender(t *testing.T) {
	s := buildSchema(t)

	var sb strings.Builder
	if err := NewHelpFormatter(s).Render(&sb); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	want := []string{
		"Flags:",
		"  --verbose, -v          Enable verbose output",
		"  --count, -c <integer>  Number of iterations (required)",
		"",
		"Commands:",
		"  build <array>          Build the given targets",
		"",
	}
	got := strings.Split(sb.String(), "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("help output mismatch (-want +got):\n%s", diff)
	}
}

func TestHelpRenderFlagsOnly(t *testing.T) {
	s := NewSchema()
	if err := s.Flag("name", "Target name", KindString).Register(); err != nil {
		t.Fatal(err)
	}

	var sb strings.Builder
	if err := NewHelpFormatter(s).Render(&sb); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	out := sb.String()
	if strings.Contains(out, "Commands:") {
		t.Error("command section must be omitted for a command-free schema")
	}
	if !strings.Contains(out, "--name <string>") {
		t.Errorf("flag label missing from output:\n%s", out)
	}
}

func TestHelpRenderColored(t *testing.T) {
	s := buildSchema(t)

	// The color package disables itself off a terminal; force it on so the
	// escape codes are observable.
	prev := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = prev }()

	var sb strings.Builder
	if err := NewHelpFormatter(s).Color(true).Render(&sb); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	out := sb.String()
	if !strings.Contains(out, "\x1b[") {
		t.Error("expected escape codes in colored output")
	}
	for _, label := range []string{"--verbose, -v", "--count, -c <integer>", "build <array>"} {
		if !strings.Contains(out, label) {
			t.Errorf("label %q missing from colored output:\n%s", label, out)
		}
	}
	if !strings.Contains(out, "Number of iterations (required)") {
		t.Errorf("descriptions must stay uncolored and intact:\n%s", out)
	}
}

func TestHelpRendersNoParsingSideEffects(t *testing.T) {
	s := buildSchema(t)

	var sb strings.Builder
	if err := NewHelpFormatter(s).Render(&sb); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	// Rendering help must leave the schema fully usable.
	result, err := NewParser(s).Parse([]string{"--count", "2", "build"})
	if err != nil {
		t.Fatalf("parse after render failed: %v", err)
	}
	result.Dispose()
}
