package main

import (
	"os"

	"github.com/sunswift/srpkg/pkg/config"
	"github.com/sunswift/srpkg/pkg/filesystem"
	"github.com/sunswift/srpkg/pkg/registry"

	srpkgerr "github.com/sunswift/srpkg/pkg/errors"
)

// toolEnv bundles what every subcommand needs: the working directory, the
// effective configuration, the filesystem, and the registry when one was
// discovered in a parent directory.
type toolEnv struct {
	workDir      string
	cfg          *config.Config
	fs           filesystem.FS
	reg          *registry.Registry
	registryRoot string
}

func newToolEnv() (*toolEnv, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, srpkgerr.Wrap(err, srpkgerr.ErrInternal, "failed to resolve working directory")
	}

	cfg, err := config.Load(workDir)
	if err != nil {
		return nil, err
	}

	env := &toolEnv{
		workDir: workDir,
		cfg:     cfg,
		fs:      filesystem.NewOSFS(),
	}

	if path, root, ok := registry.Discover(env.fs, workDir, cfg.Registry.File); ok {
		env.reg = registry.Open(env.fs, path)
		env.registryRoot = root
	}
	return env, nil
}
