// Package scaffold creates the fixed directory/file skeleton for a new
// package. Creation is all-or-nothing: once the first directory exists, any
// failing step removes everything created so far before the error surfaces.
package scaffold

import (
	"io/fs"
	"path/filepath"

	"github.com/sunswift/srpkg/pkg/config"
	"github.com/sunswift/srpkg/pkg/filesystem"
	"github.com/sunswift/srpkg/pkg/logging"
	"github.com/sunswift/srpkg/pkg/registry"
	"github.com/sunswift/srpkg/pkg/templates"

	srpkgerr "github.com/sunswift/srpkg/pkg/errors"
)

// Subdirs is the fixed, ordered set of directories every package gets.
var Subdirs = []string{"src", "include", "config", "launch", "logs"}

const (
	dirMode  = fs.FileMode(0755)
	fileMode = fs.FileMode(0644)
)

// Options describe one package creation.
type Options struct {
	// Name is the package name, validated before any filesystem access.
	Name string
	// WorkDir is the directory the package root is created under.
	WorkDir string
	// FS is the filesystem all operations run against.
	FS filesystem.FS
	// Config supplies the build file format and README suffix.
	Config *config.Config
	// Registry, when non-nil, receives an entry for the new package as the
	// final creation step. A registry write failure rolls the tree back like
	// any other step failure.
	Registry *registry.Registry
	// RegistryRoot is the directory containing the registry file; recorded
	// paths are relative to it.
	RegistryRoot string
}

// Result reports what a successful creation produced.
type Result struct {
	Name  string
	Path  string
	Dirs  []string
	Files []string
	// Registered is true when a registry entry was written.
	Registered bool
}

// Create validates the name, guards against an existing entry, then builds
// the package tree transactionally. On any creation failure the package
// root is removed before the error is returned; validation and guard
// failures return before any mutation.
//
// The existence check and the build are not atomic against concurrent
// external writers. One invocation at a time per working directory is
// assumed.
func Create(opts Options) (*Result, error) {
	log := logging.GetLogger("scaffold")

	if err := ValidateName(opts.Name); err != nil {
		return nil, err
	}

	path := filepath.Join(opts.WorkDir, opts.Name)
	if _, err := opts.FS.Stat(path); err == nil {
		return nil, srpkgerr.Newf(srpkgerr.ErrAlreadyExists,
			"package %q already exists at %s", opts.Name, path)
	}

	if opts.Registry != nil {
		node, found, err := opts.Registry.Find(opts.Name)
		if err != nil {
			return nil, err
		}
		if found {
			return nil, srpkgerr.Newf(srpkgerr.ErrAlreadyExists,
				"package %q already registered at %q", opts.Name, node.Path)
		}
	}

	log.Debug().Str("package", opts.Name).Str("path", path).Msg("Creating package")

	result, err := build(opts, path)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("package", opts.Name).
		Str("path", path).
		Int("dirs", len(result.Dirs)).
		Int("files", len(result.Files)).
		Msg("Package created")
	return result, nil
}

// build is the creation phase. The deferred handler is the rollback
// controller: it fires only for errors raised inside this function, after
// mutation has begun, and removes the package root on the way out.
func build(opts Options, path string) (result *Result, err error) {
	log := logging.GetLogger("scaffold")

	defer func() {
		if err == nil {
			return
		}
		log.Error().Err(err).Str("path", path).Msg("Creation step failed, rolling back")
		if rmErr := opts.FS.RemoveAll(path); rmErr != nil {
			err = srpkgerr.Wrapf(rmErr, srpkgerr.ErrRollback,
				"rollback failed after creation error: %v", err)
		}
	}()

	result = &Result{Name: opts.Name, Path: path}

	for _, dir := range Subdirs {
		if mkErr := opts.FS.MkdirAll(filepath.Join(path, dir), dirMode); mkErr != nil {
			return nil, srpkgerr.Wrapf(mkErr, srpkgerr.ErrDirCreate,
				"failed to create directory %s", dir)
		}
		result.Dirs = append(result.Dirs, dir)
	}

	for _, file := range packageFiles(opts) {
		content, renderErr := file.render()
		if renderErr != nil {
			return nil, renderErr
		}
		if wrErr := opts.FS.WriteFile(filepath.Join(path, file.name), content, fileMode); wrErr != nil {
			return nil, srpkgerr.Wrapf(wrErr, srpkgerr.ErrFileWrite,
				"failed to write %s", file.name)
		}
		result.Files = append(result.Files, file.name)
	}

	// Registering is the last step so a registry failure only ever has the
	// tree to undo, never the other way around.
	if opts.Registry != nil {
		relPath := path
		if opts.RegistryRoot != "" {
			if rel, relErr := filepath.Rel(opts.RegistryRoot, path); relErr == nil {
				relPath = rel
			}
		}
		node := registry.Node{
			Name:   opts.Name,
			Path:   relPath,
			Target: opts.Config.Registry.Target,
			Type:   opts.Config.Registry.NodeType,
		}
		if regErr := opts.Registry.Add(node); regErr != nil {
			return nil, regErr
		}
		result.Registered = true
	}

	return result, nil
}

// packageFile pairs a scaffold filename with its content renderer.
type packageFile struct {
	name   string
	render func() ([]byte, error)
}

// packageFiles returns the fixed file set in write order: build file,
// README, node config stub, launch file stub.
func packageFiles(opts Options) []packageFile {
	buildName, buildContent, buildErr := templates.BuildFile(opts.Config.Scaffold.BuildFile, opts.Name)

	return []packageFile{
		{name: buildName, render: func() ([]byte, error) { return buildContent, buildErr }},
		{name: "README.md", render: func() ([]byte, error) {
			return templates.Readme(opts.Name, opts.Config.Scaffold.ReadmeSuffix)
		}},
		{name: filepath.Join("config", opts.Name+".json"), render: func() ([]byte, error) {
			return templates.NodeConfig(opts.Name)
		}},
		{name: filepath.Join("launch", opts.Name+".launch"), render: func() ([]byte, error) {
			return templates.Launch(opts.Name)
		}},
	}
}
