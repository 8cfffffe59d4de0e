// Package registry maintains the node_registry.json file that records every
// package known to the repository. The file format (sorted keys, two-space
// indent, trailing newline) is shared with the other tooling that reads it.
package registry

import (
	"encoding/json"
	"io/fs"
	"path/filepath"

	"github.com/sunswift/srpkg/pkg/filesystem"
	"github.com/sunswift/srpkg/pkg/logging"

	srpkgerr "github.com/sunswift/srpkg/pkg/errors"
)

// Node is one registry entry. Field order matches the sorted-key layout of
// the file.
type Node struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Target string `json:"target"`
	Type   string `json:"type"`
}

type registryFile struct {
	Nodes []Node `json:"nodes"`
}

// Registry reads and rewrites a node registry file.
type Registry struct {
	fs   filesystem.FS
	path string
}

// Open returns a Registry bound to an existing registry file.
func Open(fsys filesystem.FS, path string) *Registry {
	return &Registry{fs: fsys, path: path}
}

// Discover walks up from startDir looking for a registry file with the
// given name. Returns the file path, the directory containing it, and
// whether one was found.
func Discover(fsys filesystem.FS, startDir, filename string) (string, string, bool) {
	log := logging.GetLogger("registry")

	dir := filepath.Clean(startDir)
	for {
		candidate := filepath.Join(dir, filename)
		if info, err := fsys.Stat(candidate); err == nil && !info.IsDir() {
			log.Debug().Str("path", candidate).Msg("Found node registry")
			return candidate, dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			log.Debug().Str("start", startDir).Str("file", filename).Msg("No node registry found")
			return "", "", false
		}
		dir = parent
	}
}

// Path returns the registry file location.
func (r *Registry) Path() string {
	return r.path
}

// Find looks up a node by name.
func (r *Registry) Find(name string) (*Node, bool, error) {
	reg, err := r.load()
	if err != nil {
		return nil, false, err
	}
	for i := range reg.Nodes {
		if reg.Nodes[i].Name == name {
			return &reg.Nodes[i], true, nil
		}
	}
	return nil, false, nil
}

// Add appends a node entry and rewrites the registry.
func (r *Registry) Add(node Node) error {
	reg, err := r.load()
	if err != nil {
		return err
	}
	for _, existing := range reg.Nodes {
		if existing.Name == node.Name {
			return srpkgerr.Newf(srpkgerr.ErrAlreadyExists,
				"node %q already registered at %q", node.Name, existing.Path)
		}
	}
	reg.Nodes = append(reg.Nodes, node)
	return r.save(reg)
}

// Remove deletes the entry with the given name and rewrites the registry.
func (r *Registry) Remove(name string) error {
	reg, err := r.load()
	if err != nil {
		return err
	}
	for i, node := range reg.Nodes {
		if node.Name == name {
			reg.Nodes = append(reg.Nodes[:i], reg.Nodes[i+1:]...)
			return r.save(reg)
		}
	}
	return srpkgerr.Newf(srpkgerr.ErrNotFound, "node %q not registered", name)
}

func (r *Registry) load() (*registryFile, error) {
	data, err := r.fs.ReadFile(r.path)
	if err != nil {
		return nil, srpkgerr.Wrapf(err, srpkgerr.ErrRegistryRead, "failed to read registry %s", r.path)
	}
	var reg registryFile
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, srpkgerr.Wrapf(err, srpkgerr.ErrRegistryRead, "failed to parse registry %s", r.path)
	}
	return &reg, nil
}

// save rewrites the registry through a temp file + rename so a failed write
// never truncates the existing file.
func (r *Registry) save(reg *registryFile) error {
	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return srpkgerr.Wrap(err, srpkgerr.ErrRegistryWrite, "failed to encode registry")
	}
	data = append(data, '\n')

	tmp := r.path + ".tmp"
	if err := r.fs.WriteFile(tmp, data, fs.FileMode(0644)); err != nil {
		return srpkgerr.Wrapf(err, srpkgerr.ErrRegistryWrite, "failed to write registry %s", tmp)
	}
	if err := r.fs.Rename(tmp, r.path); err != nil {
		_ = r.fs.Remove(tmp)
		return srpkgerr.Wrapf(err, srpkgerr.ErrRegistryWrite, "failed to replace registry %s", r.path)
	}
	return nil
}
