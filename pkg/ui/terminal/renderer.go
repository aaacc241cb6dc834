// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/run-mailcap/pkg/ui/display"
	"github.com/arthur-debert/run-mailcap/pkg/ui/styles"
)

// Renderer provides rich terminal output: a styled header and a table of
// candidate entries
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders any result type with rich terminal formatting
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

	b.WriteString(styles.TitleStyle.Render("run-mailcap") + "\n")
	b.WriteString(label("File") + styles.PathStyle.Render(report.Filename) + "\n")
	b.WriteString(label("Type") + report.MIMEType + "\n")
	b.WriteString(label("Action") + report.Action + "\n")
	for i, path := range report.MailcapPaths {
		name := ""
		if i == 0 {
			name = "Mailcaps"
		}
		b.WriteString(label(name) + styles.PathStyle.Render(path) + "\n")
	}
	b.WriteString("\n")

	if len(report.Entries) == 0 {
		b.WriteString(styles.MutedStyle.Render("No mailcap entries match "+report.MIMEType) + "\n")
		_, err := io.WriteString(r.output, b.String())
		return err
	}

	data := pterm.TableData{{"#", "Type", "View", "Edit", "Print", "Test", "Flags", "Source"}}
	for i, entry := range report.Entries {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			entry.MIMEType,
			styles.CodeStyle.Render(entry.View),
			entry.Edit,
			entry.Print,
			entry.Test,
			strings.Join(display.Flags(entry), ","),
			entry.Source,
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	b.WriteString(table + "\n")

	_, err = io.WriteString(r.output, b.String())
	return err
}

func label(name string) string {
	if name != "" {
		name += ":"
	}
	return styles.LabelStyle.Render(name)
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "%s %s\n", styles.ErrorStyle.Render("Error:"), err.Error())
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintf(r.output, "%s %s\n", pterm.Info.Prefix.Text, msg)
	return err
}
