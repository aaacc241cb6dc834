package config

import (
	"time"

	"github.com/arthur-debert/run-mailcap/pkg/types"
)

// Config is the merged run-mailcap configuration
type Config struct {
	Pager      string `koanf:"pager" json:"pager" yaml:"pager"`
	XTermCmd   string `koanf:"xterm_cmd" json:"xtermCmd" yaml:"xtermCmd"`
	NoPager    bool   `koanf:"nopager" json:"nopager" yaml:"nopager"`
	NoRun      bool   `koanf:"norun" json:"norun" yaml:"norun"`
	Debug      bool   `koanf:"debug" json:"debug" yaml:"debug"`
	RunningInX bool   `koanf:"running_in_x" json:"runningInX" yaml:"runningInX"`

	// TestTimeout bounds every test= command, zero means no limit
	TestTimeout time.Duration `koanf:"test_timeout" json:"testTimeout" yaml:"testTimeout"`

	// Format selects the debug output renderer
	Format string `koanf:"format" json:"format" yaml:"format"`

	MailcapPaths    []string `koanf:"mailcap_paths" json:"mailcapPaths" yaml:"mailcapPaths"`
	MimeTypesPaths  []string `koanf:"mimetypes_paths" json:"mimetypesPaths" yaml:"mimetypesPaths"`
	SharedMIMEPaths []string `koanf:"shared_mime_paths" json:"sharedMimePaths" yaml:"sharedMimePaths"`
}

// ToContext builds the resolution context for one file
func (c *Config) ToContext(filename, mimeType string, action types.Action) types.Context {
	return types.Context{
		Filename:   filename,
		MIMEType:   mimeType,
		Action:     action,
		Pager:      c.Pager,
		XTermCmd:   c.XTermCmd,
		NoPager:    c.NoPager,
		NoRun:      c.NoRun,
		RunningInX: c.RunningInX,
		Debug:      c.Debug,
	}
}
