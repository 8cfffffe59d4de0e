package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sunswift/srpkg/internal/version"
	"github.com/sunswift/srpkg/pkg/logging"
)

var verbosity int

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "srpkg",
		Short: "Sunswift DDS package management tool",
		Long: `srpkg creates, deletes, and locates Sunswift DDS packages. Create and
delete operate on the current directory; the repository node registry
(node_registry.json) is kept in sync when one is found in a parent
directory.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(
		newCreateCmd(),
		newDeleteCmd(),
		newFindCmd(),
		newGenconfigCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("srpkg version %s\n", version.Version)
			fmt.Printf("  commit: %s\n", version.Commit)
			fmt.Printf("  built:  %s\n", version.Date)
		},
	}
}
