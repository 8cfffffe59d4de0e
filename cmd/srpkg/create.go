package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sunswift/srpkg/pkg/scaffold"
)

func newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <package_name>",
		Short: "Create a new package and register it",
		Long: `Create scaffolds a new package in the current directory and records it
in the node registry when one exists. Creation is all-or-nothing: any
failure removes the partially created tree.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newToolEnv()
			if err != nil {
				return err
			}

			result, err := scaffold.Create(scaffold.Options{
				Name:         args[0],
				WorkDir:      env.workDir,
				FS:           env.fs,
				Config:       env.cfg,
				Registry:     env.reg,
				RegistryRoot: env.registryRoot,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Package: create success")
			fmt.Fprintf(out, "Package: '%s' created at '%s'\n", result.Name, result.Path)
			if result.Registered {
				fmt.Fprintln(out, "Package: registered in node registry")
			}
			return nil
		},
	}
}
