package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sunswift/srpkg/pkg/scaffold"
)

func newDeleteCmd() *cobra.Command {
	var skipConfirm bool

	cmd := &cobra.Command{
		Use:   "delete <package_name>",
		Short: "Delete a package and its registry entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			env, err := newToolEnv()
			if err != nil {
				return err
			}

			info, err := scaffold.Stat(env.fs, env.workDir, name)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatBold(fmt.Sprintf("Found Sunswift DDS package: %s", name)))
			fmt.Fprintf(out, "Package size (bytes): %d\n", info.Size)
			fmt.Fprintf(out, "Modified: %s\n", info.Modified.Format("2006-01-02 15:04:05"))

			if !skipConfirm {
				fmt.Fprintf(out, "Do you really want to delete %s (y/n): ", name)
				reader := bufio.NewReader(cmd.InOrStdin())
				answer, _ := reader.ReadString('\n')
				if !strings.EqualFold(strings.TrimSpace(answer), "y") {
					fmt.Fprintln(out, "Stopping delete...")
					return nil
				}
			}

			unregistered, err := scaffold.Delete(env.fs, env.workDir, name, env.reg)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Package: %s deleted\n", name)
			if unregistered {
				fmt.Fprintf(out, "Package: %s removed from node registry\n", name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
