// Package testutil provides filesystem helpers for the srpkg tests.
package testutil

import (
	"io/fs"
	"strings"

	"github.com/spf13/afero"

	"github.com/sunswift/srpkg/pkg/filesystem"
)

// NewMemFS returns an in-memory filesystem for tests.
func NewMemFS() filesystem.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// FailFS wraps an FS and fails selected operations, so tests can force a
// creation step to break at an exact point.
type FailFS struct {
	filesystem.FS

	// FailMkdirAll makes MkdirAll fail for the given path suffix.
	FailMkdirAll string
	// FailWriteFile makes WriteFile fail for the given path suffix.
	FailWriteFile string
	// Err is returned by the failing operation.
	Err error
}

func (f *FailFS) MkdirAll(path string, perm fs.FileMode) error {
	if f.FailMkdirAll != "" && strings.HasSuffix(path, f.FailMkdirAll) {
		return f.Err
	}
	return f.FS.MkdirAll(path, perm)
}

func (f *FailFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if f.FailWriteFile != "" && strings.HasSuffix(name, f.FailWriteFile) {
		return f.Err
	}
	return f.FS.WriteFile(name, data, perm)
}
