// Package filesystem defines the filesystem interface the scaffolding and
// registry code operate against, with an OS-backed implementation for the
// binaries and an afero-backed one for tests.
package filesystem

import "io/fs"

// FS is the set of filesystem operations the tools perform. Implementations
// are not safe for concurrent use; the tools are single-threaded by design.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)
	Remove(name string) error
	RemoveAll(path string) error
	Rename(oldpath, newpath string) error
}
