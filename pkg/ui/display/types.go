// Package display holds the data structures the renderers present
package display

import "github.com/arthur-debert/run-mailcap/pkg/mailcap"

// DebugReport is what --debug shows before a command is resolved: the file,
// its detected type and every candidate entry in priority order.
type DebugReport struct {
	Filename     string          `json:"filename" yaml:"filename"`
	MIMEType     string          `json:"mimeType" yaml:"mimeType"`
	Action       string          `json:"action" yaml:"action"`
	MailcapPaths []string        `json:"mailcapPaths" yaml:"mailcapPaths"`
	Entries      []mailcap.Entry `json:"entries" yaml:"entries"`
}

// Flags lists the flags set on entry, in database syntax
func Flags(entry mailcap.Entry) []string {
	var flags []string
	if entry.NeedsTerminal {
		flags = append(flags, "needsterminal")
	}
	if entry.CopiousOutput {
		flags = append(flags, "copiousoutput")
	}
	return flags
}
