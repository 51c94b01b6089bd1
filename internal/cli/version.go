package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/testdiff/testdiff/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "testdiff %s (commit %s, built %s)\n",
				version.Version, version.CommitHash, version.BuildDate)
		},
	}
}
