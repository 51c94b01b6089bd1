// Package cli implements the testdiff commands.
package cli

import (
	"errors"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ErrIssuesFound signals a clean run of the tool whose report surfaced
// failures or regressions. main maps it to exit code 1.
var ErrIssuesFound = errors.New("issues found")

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "testdiff",
		Short: "Analyze and compare JUnit XML test result archives",
		Long: `testdiff ingests zip archives of JUnit-style XML test reports from CI
pipeline runs. It produces a browsable failure report for a single run, and
classifies every test's outcome transition between two runs: regressions,
fixes, added, removed, still failing.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				_ = os.Setenv("TESTDIFF_LOG", "DEBUG")
			}
			InitLogging()
			if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
				color.NoColor = true
			}
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	cmd.PersistentFlags().String("config", "", "Path to config file (default .testdiff.yaml)")

	cmd.AddCommand(
		NewReportCmd(),
		NewCompareCmd(),
		NewVersionCmd(),
	)

	return cmd
}
