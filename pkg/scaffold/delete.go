package scaffold

import (
	"path/filepath"
	"time"

	"github.com/sunswift/srpkg/pkg/filesystem"
	"github.com/sunswift/srpkg/pkg/logging"
	"github.com/sunswift/srpkg/pkg/registry"

	srpkgerr "github.com/sunswift/srpkg/pkg/errors"
)

// Info summarizes an existing package tree, shown to the user before a
// delete is confirmed.
type Info struct {
	Name     string
	Path     string
	Size     int64
	Modified time.Time
}

// Stat returns size and modification details for a package directory.
func Stat(fsys filesystem.FS, workDir, name string) (*Info, error) {
	path := filepath.Join(workDir, name)
	fi, err := fsys.Stat(path)
	if err != nil {
		return nil, srpkgerr.Newf(srpkgerr.ErrNotFound, "package %q not found at %s", name, path)
	}
	if !fi.IsDir() {
		return nil, srpkgerr.Newf(srpkgerr.ErrNotFound, "%s exists but is not a package directory", path)
	}

	size, err := dirSize(fsys, path)
	if err != nil {
		return nil, err
	}
	return &Info{Name: name, Path: path, Size: size, Modified: fi.ModTime()}, nil
}

// Delete removes a package tree and, when a registry is given, its registry
// entry. It reports whether a registry entry was removed. The caller is
// expected to have confirmed the removal.
func Delete(fsys filesystem.FS, workDir, name string, reg *registry.Registry) (bool, error) {
	log := logging.GetLogger("scaffold")

	path := filepath.Join(workDir, name)
	if _, err := fsys.Stat(path); err != nil {
		return false, srpkgerr.Newf(srpkgerr.ErrNotFound, "package %q not found at %s", name, path)
	}

	if err := fsys.RemoveAll(path); err != nil {
		return false, srpkgerr.Wrapf(err, srpkgerr.ErrInternal, "failed to remove %s", path)
	}
	log.Info().Str("package", name).Str("path", path).Msg("Package removed")

	if reg == nil {
		return false, nil
	}
	err := reg.Remove(name)
	switch {
	case err == nil:
		log.Info().Str("package", name).Msg("Registry entry removed")
		return true, nil
	case srpkgerr.IsErrorCode(err, srpkgerr.ErrNotFound):
		// Tree existed without a registry entry (e.g. created by
		// pkg_create). Nothing to unregister.
		log.Debug().Str("package", name).Msg("Package was not registered")
		return false, nil
	default:
		return false, err
	}
}

// dirSize sums the sizes of regular files under path.
func dirSize(fsys filesystem.FS, path string) (int64, error) {
	entries, err := fsys.ReadDir(path)
	if err != nil {
		return 0, srpkgerr.Wrapf(err, srpkgerr.ErrInternal, "failed to read %s", path)
	}

	var total int64
	for _, entry := range entries {
		child := filepath.Join(path, entry.Name())
		if entry.IsDir() {
			sub, err := dirSize(fsys, child)
			if err != nil {
				return 0, err
			}
			total += sub
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return 0, srpkgerr.Wrapf(err, srpkgerr.ErrInternal, "failed to stat %s", child)
		}
		total += info.Size()
	}
	return total, nil
}
