// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/run-mailcap/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.DebugReport:
		return r.renderDebug(v)
	default:
		// For unknown types, just print them
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderDebug(report *display.DebugReport) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%-10s%s\n", "File:", report.Filename)
	fmt.Fprintf(&b, "%-10s%s\n", "Type:", report.MIMEType)
	fmt.Fprintf(&b, "%-10s%s\n", "Action:", report.Action)
	fmt.Fprintf(&b, "%-10s%s\n", "Mailcaps:", strings.Join(report.MailcapPaths, ":"))

	if len(report.Entries) == 0 {
		fmt.Fprintf(&b, "\nNo mailcap entries match %s\n", report.MIMEType)
		_, err := io.WriteString(r.output, b.String())
		return err
	}

	for i, entry := range report.Entries {
		fmt.Fprintf(&b, "\n%d. %s (%s)\n", i+1, entry.MIMEType, entry.Source)
		writeField(&b, "view", entry.View)
		writeField(&b, "edit", entry.Edit)
		writeField(&b, "compose", entry.Compose)
		writeField(&b, "print", entry.Print)
		writeField(&b, "test", entry.Test)
		writeField(&b, "flags", strings.Join(display.Flags(entry), ", "))
	}

	_, err := io.WriteString(r.output, b.String())
	return err
}

func writeField(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "   %-9s%s\n", name+":", value)
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
