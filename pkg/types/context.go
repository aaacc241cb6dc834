package types

// Context is everything the resolver needs to know about one invocation.
// It is built once by the config layer and only read afterwards.
type Context struct {
	Filename string
	MIMEType string
	Action   Action

	// Pager is appended to copiousoutput view commands
	Pager string
	// XTermCmd launches a terminal emulator for needsterminal entries
	XTermCmd string

	NoPager    bool
	NoRun      bool
	RunningInX bool
	Debug      bool
}
