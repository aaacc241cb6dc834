package topics

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Renderer turns the raw content of a topic file into what help prints
type Renderer interface {
	// Render formats content read from a file with extension format
	Render(content string, format string) string
}

// PlainRenderer prints topics as they are written
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}

// GlamourRenderer renders markdown topics for the terminal. Other formats
// and any rendering failure fall back to the raw content.
type GlamourRenderer struct {
	// Style is a glamour standard style ("dark", "light", "notty") or the
	// path of a JSON style file. Empty or "auto" follows the terminal.
	Style string
	// Width wraps rendered text, 0 leaves glamour's default
	Width int

	once     sync.Once
	renderer *glamour.TermRenderer
	err      error
}

// NewGlamourRenderer creates a markdown renderer that adapts to the terminal
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

func isMarkdown(format string) bool {
	switch strings.ToLower(format) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// Render implements Renderer
func (r *GlamourRenderer) Render(content string, format string) string {
	if !isMarkdown(format) {
		return content
	}

	r.once.Do(func() {
		options := []glamour.TermRendererOption{}
		if r.Style == "" || r.Style == "auto" {
			options = append(options, glamour.WithAutoStyle())
		} else {
			options = append(options, glamour.WithStylePath(r.Style))
		}
		if r.Width > 0 {
			options = append(options, glamour.WithWordWrap(r.Width))
		}
		r.renderer, r.err = glamour.NewTermRenderer(options...)
	})
	if r.err != nil {
		return content
	}

	rendered, err := r.renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
