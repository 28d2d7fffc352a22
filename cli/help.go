package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// HelpFormatter renders a Schema's registered definitions as aligned help
// text. It is a pure read-only view over the Schema in registration order;
// it performs no parsing.
type HelpFormatter struct {
	schema   *Schema
	colorize bool
}

// NewHelpFormatter creates a formatter for schema. Color is off by default.
func NewHelpFormatter(schema *Schema) *HelpFormatter {
	return &HelpFormatter{schema: schema}
}

// Color enables or disables colored names in the output. Color honors the
// usual NO_COLOR/terminal detection through the color package.
func (h *HelpFormatter) Color(enabled bool) *HelpFormatter {
	h.colorize = enabled
	return h
}

// Render writes the formatted help for all flags and commands to w.
func (h *HelpFormatter) Render(w io.Writer) error {
	flags := h.schema.Flags()
	commands := h.schema.Commands()

	width := 0
	for _, d := range flags {
		if n := len(flagLabel(d)); n > width {
			width = n
		}
	}
	for _, d := range commands {
		if n := len(commandLabel(d)); n > width {
			width = n
		}
	}

	paint := func(s string) string { return s }
	if h.colorize {
		c := color.New(color.FgCyan)
		paint = func(s string) string { return c.Sprint(s) }
	}

	if len(flags) > 0 {
		if _, err := fmt.Fprintln(w, "Flags:"); err != nil {
			return err
		}
		for _, d := range flags {
			label := flagLabel(d)
			pad := strings.Repeat(" ", width-len(label)+2)
			if _, err := fmt.Fprintf(w, "  %s%s%s\n", paint(label), pad, flagDescription(d)); err != nil {
				return err
			}
		}
	}

	if len(commands) > 0 {
		if len(flags) > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "Commands:"); err != nil {
			return err
		}
		for _, d := range commands {
			label := commandLabel(d)
			pad := strings.Repeat(" ", width-len(label)+2)
			if _, err := fmt.Fprintf(w, "  %s%s%s\n", paint(label), pad, d.Description); err != nil {
				return err
			}
		}
	}

	return nil
}

func flagLabel(d Definition) string {
	label := "--" + d.Name
	if d.Alias != "" {
		label += ", -" + d.Alias
	}
	if d.Kind.RequiresValue() {
		label += " <" + d.Kind.String() + ">"
	}
	return label
}

func commandLabel(d Definition) string {
	label := d.Name
	if d.Alias != "" {
		label += ", " + d.Alias
	}
	if d.Kind.RequiresValue() {
		label += " <" + d.Kind.String() + ">"
	}
	return label
}

func flagDescription(d Definition) string {
	if d.Required {
		return d.Description + " (required)"
	}
	return d.Description
}
