package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	srpkgerr "github.com/sunswift/srpkg/pkg/errors"
)

func newFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find <package_name>",
		Short: "Locate a package by directory or registry entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			env, err := newToolEnv()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			// The working directory wins over the registry, mirroring the
			// existence checks create performs.
			path := filepath.Join(env.workDir, name)
			if info, statErr := env.fs.Stat(path); statErr == nil && info.IsDir() {
				fmt.Fprintf(out, "Package: '%s' found at '%s'\n", name, path)
				return nil
			}

			if env.reg != nil {
				node, found, regErr := env.reg.Find(name)
				if regErr != nil {
					return regErr
				}
				if found {
					fmt.Fprintf(out, "Package: '%s' registered at '%s'\n", name, filepath.Join(env.registryRoot, node.Path))
					return nil
				}
			}

			return srpkgerr.Newf(srpkgerr.ErrNotFound, "package %q not found", name)
		},
	}
}
