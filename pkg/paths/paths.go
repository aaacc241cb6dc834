package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvMailcaps is the RFC 1524 colon-separated mailcap search path
	EnvMailcaps = "MAILCAPS"

	// EnvConfigDir overrides the XDG config directory for run-mailcap
	EnvConfigDir = "RUN_MAILCAP_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for run-mailcap
	EnvStateDir = "RUN_MAILCAP_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// AppDirName is the directory name used below the XDG base directories
	AppDirName = "run-mailcap"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "run-mailcap.log"

	// sharedMIMEPackagesDir is where shared-mime-info keeps its XML sources,
	// relative to each XDG data directory
	sharedMIMEPackagesDir = "mime/packages"
)

// DefaultMailcapPaths is the mailcap search list used when neither the
// configuration nor MAILCAPS provide one. Earlier entries take priority.
var DefaultMailcapPaths = []string{
	"~/.mailcap",
	"/etc/mailcap",
	"/usr/share/etc/mailcap",
	"/usr/local/etc/mailcap",
	"/usr/etc/mailcap",
}

// DefaultMimeTypesPaths is the mime.types search list
var DefaultMimeTypesPaths = []string{
	"~/.mime.types",
	"/usr/share/etc/mime.types",
	"/usr/local/etc/mime.types",
	"/etc/mime.types",
}

// Paths provides centralized path management for run-mailcap
type Paths interface {
	ConfigDir() string
	ConfigFilePath() string
	StateDir() string
	LogFilePath() string
	SharedMIMEPackageDirs() []string
}

type paths struct {
	xdgConfig string
	xdgState  string
	dataDirs  []string
}

// New creates a Paths instance from the XDG environment, honouring the
// RUN_MAILCAP_* overrides.
func New() Paths {
	p := &paths{}

	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		p.xdgConfig = ExpandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if stateDir := os.Getenv(EnvStateDir); stateDir != "" {
		p.xdgState = ExpandHome(stateDir)
	} else {
		p.xdgState = filepath.Join(xdg.StateHome, AppDirName)
	}

	p.dataDirs = append([]string{xdg.DataHome}, xdg.DataDirs...)

	return p
}

// ConfigDir returns the run-mailcap configuration directory
func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

// ConfigFilePath returns the path of the user configuration file
func (p *paths) ConfigFilePath() string {
	return filepath.Join(p.xdgConfig, ConfigFileName)
}

// StateDir returns the run-mailcap state directory
func (p *paths) StateDir() string {
	return p.xdgState
}

// LogFilePath returns the path to the run-mailcap log file
func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// SharedMIMEPackageDirs lists the shared-mime-info package directories,
// user data directory first.
func (p *paths) SharedMIMEPackageDirs() []string {
	dirs := make([]string, 0, len(p.dataDirs))
	for _, dir := range p.dataDirs {
		if dir == "" {
			continue
		}
		dirs = append(dirs, filepath.Join(dir, sharedMIMEPackagesDir))
	}
	return dirs
}

// MailcapSearchPath returns the mailcap search list from MAILCAPS when that
// is set, otherwise fallback.
func MailcapSearchPath(fallback []string) []string {
	if env := os.Getenv(EnvMailcaps); env != "" {
		return SplitSearchPath(env)
	}
	return fallback
}

// SplitSearchPath splits a colon-separated list, dropping empty elements
func SplitSearchPath(list string) []string {
	var result []string
	for _, p := range filepath.SplitList(list) {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~user forms are left alone
	return path
}

// ExpandAll applies ExpandHome to every element of list
func ExpandAll(list []string) []string {
	expanded := make([]string, len(list))
	for i, p := range list {
		expanded[i] = ExpandHome(p)
	}
	return expanded
}
