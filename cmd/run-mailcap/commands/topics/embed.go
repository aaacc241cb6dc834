// Package topics holds the markdown help topics shipped in the binary
package topics

import "embed"

// FS contains the help topics, one markdown file each
//
//go:embed *.md
var FS embed.FS
