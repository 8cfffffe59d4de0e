// srpkg is the Sunswift DDS package management tool. It creates, deletes,
// and locates packages, keeping the repository node registry in sync.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	srpkgerr "github.com/sunswift/srpkg/pkg/errors"
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))

		var toolErr *srpkgerr.SrpkgError
		if !errors.As(err, &toolErr) {
			fmt.Fprintln(os.Stderr)
			fmt.Fprint(os.Stderr, rootCmd.UsageString())
		}
		os.Exit(1)
	}
}
