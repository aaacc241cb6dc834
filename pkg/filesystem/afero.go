package filesystem

import (
	"io"
	"io/fs"

	"github.com/arthur-debert/run-mailcap/pkg/types"
	"github.com/spf13/afero"
)

// aferoFS implements types.FS using afero
type aferoFS struct {
	fs afero.Fs
}

// NewAferoFS creates a new afero filesystem implementation
func NewAferoFS(fs afero.Fs) types.FS {
	return &aferoFS{fs: fs}
}

// NewMemoryFS returns an empty in-memory filesystem, pre-populated with files
// (path -> content) when given.
func NewMemoryFS(files map[string]string) types.FS {
	mem := afero.NewMemMapFs()
	for name, content := range files {
		// MemMapFs creates parent directories on write
		_ = afero.WriteFile(mem, name, []byte(content), 0644)
	}
	return NewAferoFS(mem)
}

func (a *aferoFS) Open(name string) (io.ReadCloser, error) {
	info, err := a.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	return a.fs.Open(name)
}

func (a *aferoFS) Stat(name string) (fs.FileInfo, error) {
	return a.fs.Stat(name)
}

func (a *aferoFS) Glob(pattern string) ([]string, error) {
	return afero.Glob(a.fs, pattern)
}
