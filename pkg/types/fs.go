package types

import (
	"io"
	"io/fs"
)

// FS is the subset of filesystem operations the databases are read through.
// Production code uses the OS, tests use an in-memory afero filesystem.
type FS interface {
	Open(name string) (io.ReadCloser, error)
	Stat(name string) (fs.FileInfo, error)
	Glob(pattern string) ([]string, error)
}
