// Package types holds the small value types shared across run-mailcap:
// the requested Action, the per-invocation resolution Context and the FS
// abstraction database readers go through.
package types
