// testdiff analyzes and compares JUnit XML test result archives from CI
// pipeline runs.
//
// Usage:
//
//	testdiff report results.zip -o ./reports
//	testdiff compare baseline.zip candidate.zip -o ./reports
//
// Exit codes: 0 clean, 1 failures or regressions found, 2 usage or
// processing error.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/testdiff/testdiff/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		if errors.Is(err, cli.ErrIssuesFound) {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, color.RedString("testdiff: %v", err))
		os.Exit(2)
	}
}
