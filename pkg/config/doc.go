// Package config handles configuration management for run-mailcap.
// It layers embedded defaults, the user's TOML file, conventional and
// RUN_MAILCAP_* environment variables and command-line flags, and turns the
// result into the types.Context the resolver works from.
package config
