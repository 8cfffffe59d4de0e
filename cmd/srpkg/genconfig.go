package main

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sunswift/srpkg/pkg/config"

	srpkgerr "github.com/sunswift/srpkg/pkg/errors"
)

func newGenconfigCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "genconfig",
		Short: "Write a .srpkg.toml with the current effective settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newToolEnv()
			if err != nil {
				return err
			}

			path := filepath.Join(env.workDir, config.FileName)
			if _, statErr := env.fs.Stat(path); statErr == nil && !force {
				return srpkgerr.Newf(srpkgerr.ErrAlreadyExists,
					"%s already exists (use --force to overwrite)", path)
			}

			data, err := config.Generate(env.cfg)
			if err != nil {
				return err
			}
			if err := env.fs.WriteFile(path, data, fs.FileMode(0644)); err != nil {
				return srpkgerr.Wrapf(err, srpkgerr.ErrFileWrite, "failed to write %s", path)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}
