// pkg_create scaffolds a new DDS package in the current directory:
//
//	pkg_create <package_name>
//
// Exactly one positional argument, no flags. Exit code 0 on success, 1 on
// a usage error, a pre-existing target, or any creation failure (in which
// case the partially created tree is rolled back).
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/sunswift/srpkg/pkg/config"
	"github.com/sunswift/srpkg/pkg/filesystem"
	"github.com/sunswift/srpkg/pkg/logging"
	"github.com/sunswift/srpkg/pkg/scaffold"

	srpkgerr "github.com/sunswift/srpkg/pkg/errors"
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pkg_create <package_name>",
		Short: "Scaffold a new DDS package in the current directory",
		Long: `pkg_create creates the skeleton for a new Sunswift DDS package in the
current directory:

  <package_name>/
    src/        .cpp files
    include/    .hpp files
    config/     node config and params
    launch/     launch files
    logs/       node output logs
    Makefile
    README.md

Creation is all-or-nothing: if any step fails, everything created so far
is removed and the tool exits non-zero.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	return cmd
}

func run(name string) error {
	logging.SetupLogger(0)

	workDir, err := os.Getwd()
	if err != nil {
		return srpkgerr.Wrap(err, srpkgerr.ErrInternal, "failed to resolve working directory")
	}

	cfg, err := config.Load(workDir)
	if err != nil {
		return err
	}

	result, err := scaffold.Create(scaffold.Options{
		Name:    name,
		WorkDir: workDir,
		FS:      filesystem.NewOSFS(),
		Config:  cfg,
	})
	if err != nil {
		return err
	}

	fmt.Println("Package: create success")
	fmt.Printf("Package: '%s' created at '%s'\n", result.Name, result.Path)
	return nil
}

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))

		// Argument and flag errors get the usage text; tool errors already
		// name the failing operation.
		var toolErr *srpkgerr.SrpkgError
		if !errors.As(err, &toolErr) {
			fmt.Fprintln(os.Stderr)
			fmt.Fprint(os.Stderr, cmd.UsageString())
		}
		os.Exit(1)
	}
}
