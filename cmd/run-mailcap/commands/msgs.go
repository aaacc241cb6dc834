package commands

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Run the mailcap command for a file"
	MsgGenConfigShort  = "Print a configuration file"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate the man page"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagAction      = "Action to perform: view, cat, edit, compose or print (default from the program name)"
	MsgFlagType        = "MIME type of the file, skips detection"
	MsgFlagDebug       = "Print the MIME type and candidate entries before resolving"
	MsgFlagNoPager     = "Do not pipe copiousoutput commands into the pager"
	MsgFlagNoRun       = "Print the command instead of running it"
	MsgFlagFormat      = "Debug output format (auto, term, text, json, yaml)"
	MsgFlagConfig      = "Configuration file (default $XDG_CONFIG_HOME/run-mailcap/config.toml)"
	MsgFlagTestTimeout = "Limit for each test= command, 0 waits forever"
	MsgFlagEffective   = "Print the configuration in force instead of the defaults"

	// Status messages
	MsgNoCommand     = "No mailcap entry applies"
	MsgUnknownAction = "Unknown action, using view"
	MsgNoFileGiven   = "no file given"
	MsgExitStatusFmt = "command exited with status %d"
	MsgManSource     = "run-mailcap "
	MsgManManual     = "run-mailcap manual"
	MsgHelpNotFound  = "help command not found"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
