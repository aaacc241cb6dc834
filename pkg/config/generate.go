package config

import (
	"strings"

	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/run-mailcap/pkg/errors"
)

// GenerateConfigContent generates the configuration file content with commented values
func GenerateConfigContent() string {
	return commentOutConfigValues(GetDefaultsContent())
}

// effectiveConfig is the file form of Config
type effectiveConfig struct {
	Pager           string   `toml:"pager"`
	XTermCmd        string   `toml:"xterm_cmd"`
	NoPager         bool     `toml:"nopager"`
	NoRun           bool     `toml:"norun"`
	Debug           bool     `toml:"debug"`
	TestTimeout     string   `toml:"test_timeout"`
	Format          string   `toml:"format"`
	MailcapPaths    []string `toml:"mailcap_paths"`
	MimeTypesPaths  []string `toml:"mimetypes_paths"`
	SharedMIMEPaths []string `toml:"shared_mime_paths"`
}

// GenerateEffectiveContent encodes cfg as a configuration file. Values that
// only come from the environment, such as running_in_x, are left out.
func GenerateEffectiveContent(cfg *Config) (string, error) {
	data, err := gotoml.Marshal(effectiveConfig{
		Pager:           cfg.Pager,
		XTermCmd:        cfg.XTermCmd,
		NoPager:         cfg.NoPager,
		NoRun:           cfg.NoRun,
		Debug:           cfg.Debug,
		TestTimeout:     cfg.TestTimeout.String(),
		Format:          cfg.Format,
		MailcapPaths:    cfg.MailcapPaths,
		MimeTypesPaths:  cfg.MimeTypesPaths,
		SharedMIMEPaths: cfg.SharedMIMEPaths,
	})
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return string(data), nil
}

// commentOutConfigValues takes the TOML content and comments out every line
// that is not blank or already a comment. Array continuation lines are
// commented as well so the result stays valid TOML.
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Keep blank lines as-is
		if trimmed == "" {
			result = append(result, line)
			continue
		}

		// Keep lines that are already comments
		if strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Comment out configuration value lines
		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
