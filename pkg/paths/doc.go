// Package paths provides centralized path handling for run-mailcap.
//
// It implements the XDG Base Directory specification for run-mailcap's own
// files and knows the conventional locations of the system databases the
// resolver reads.
//
// # Environment Variables
//
// The package respects the following environment variables:
//
//   - MAILCAPS: colon-separated mailcap search path, replaces the defaults
//   - RUN_MAILCAP_CONFIG_DIR: Override XDG config directory (default: $XDG_CONFIG_HOME/run-mailcap)
//   - RUN_MAILCAP_STATE_DIR: Override XDG state directory (default: $XDG_STATE_HOME/run-mailcap)
//
// # Database Locations
//
//   - mailcap: ~/.mailcap, /etc/mailcap and the /usr variants, in priority order
//   - mime.types: ~/.mime.types, then the system copies
//   - shared-mime-info: mime/packages below $XDG_DATA_HOME and each of $XDG_DATA_DIRS
//
// # Usage
//
//	p := paths.New()
//	cfg := p.ConfigFilePath()   // ~/.config/run-mailcap/config.toml
//	log := p.LogFilePath()      // ~/.local/state/run-mailcap/run-mailcap.log
//
//	mailcaps := paths.MailcapSearchPath(paths.DefaultMailcapPaths)
package paths
