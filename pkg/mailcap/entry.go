package mailcap

import "github.com/arthur-debert/run-mailcap/pkg/types"

// Entry is one mailcap record: a logical database line that matched the
// requested MIME type. Only View is guaranteed to be set.
type Entry struct {
	// MIMEType is the pattern as written in the database
	MIMEType string `json:"mimeType" yaml:"mimeType"`
	// Source is the database file the entry came from
	Source string `json:"source" yaml:"source"`

	View    string `json:"view" yaml:"view"`
	Edit    string `json:"edit,omitempty" yaml:"edit,omitempty"`
	Compose string `json:"compose,omitempty" yaml:"compose,omitempty"`
	Print   string `json:"print,omitempty" yaml:"print,omitempty"`
	Test    string `json:"test,omitempty" yaml:"test,omitempty"`

	NeedsTerminal bool `json:"needsTerminal" yaml:"needsTerminal"`
	CopiousOutput bool `json:"copiousOutput" yaml:"copiousOutput"`
}

// Template returns the command template used for action. Cat shares the
// view command.
func (e Entry) Template(action types.Action) string {
	switch action {
	case types.ActionView, types.ActionCat:
		return e.View
	case types.ActionEdit:
		return e.Edit
	case types.ActionCompose:
		return e.Compose
	case types.ActionPrint:
		return e.Print
	default:
		return ""
	}
}
