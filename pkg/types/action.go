package types

import (
	"path/filepath"
	"strings"
)

// Action is the kind of operation requested for a file
type Action int

const (
	// ActionView displays the file
	ActionView Action = iota
	// ActionCat writes the file as text to stdout, only through copiousoutput entries
	ActionCat
	// ActionEdit opens the file for editing
	ActionEdit
	// ActionCompose creates a new file of the type
	ActionCompose
	// ActionPrint prints the file
	ActionPrint
)

// String returns the name used on the command line and in config files
func (a Action) String() string {
	switch a {
	case ActionView:
		return "view"
	case ActionCat:
		return "cat"
	case ActionEdit:
		return "edit"
	case ActionCompose:
		return "compose"
	case ActionPrint:
		return "print"
	default:
		return "unknown"
	}
}

// ParseAction maps an action name to an Action. Unknown names fall back to
// ActionView and ok is false.
func ParseAction(s string) (action Action, ok bool) {
	switch s {
	case "view":
		return ActionView, true
	case "cat":
		return ActionCat, true
	case "edit":
		return ActionEdit, true
	case "compose":
		return ActionCompose, true
	case "print":
		return ActionPrint, true
	default:
		return ActionView, false
	}
}

// ActionFromProgramName derives the default action from the name the binary
// was invoked as, so that symlinks such as see, change or create behave like
// the classic run-mailcap aliases. A trailing "-suffix" is ignored, which lets
// the aliases be installed next to the system ones as see-go, print-new and
// so on.
func ActionFromProgramName(argv0 string) Action {
	name := filepath.Base(argv0)
	name = strings.TrimSuffix(name, filepath.Ext(name))

	if action, ok := aliasAction(name); ok {
		return action
	}
	if i := strings.LastIndexByte(name, '-'); i > 0 {
		if action, ok := aliasAction(name[:i]); ok {
			return action
		}
	}
	return ActionView
}

func aliasAction(name string) (Action, bool) {
	switch name {
	case "see":
		return ActionView, true
	case "change":
		return ActionEdit, true
	case "create":
		return ActionCompose, true
	}
	return ParseAction(name)
}

// MarshalText implements encoding.TextMarshaler
func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}
