package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/testdiff/testdiff/pkg/diff"
	"github.com/testdiff/testdiff/pkg/mapper"
	"github.com/testdiff/testdiff/pkg/render"
)

// NewCompareCmd creates the two-run comparison command.
func NewCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <baseline.zip> <candidate.zip>",
		Short: "Classify test outcome transitions between two pipeline runs",
		Long: `Compare the test results of two pipeline runs. Every test present in
either run is classified: regression, fix, added, removed, still failing,
or still passing. Regressions sort first in all outputs.`,
		Args: cobra.ExactArgs(2),
		RunE: runCompare,
	}

	cmd.Flags().StringP("output-dir", "o", "", "Output directory for reports")
	cmd.Flags().String("csv-name", "", "CSV output filename")
	cmd.Flags().String("html-name", "", "HTML output filename")
	cmd.Flags().String("baseline-name", "", "Display name for the baseline run")
	cmd.Flags().String("candidate-name", "", "Display name for the candidate run")
	cmd.Flags().String("format", "auto", "Console output format: auto, terminal, plain")
	cmd.Flags().String("theme", "", "Terminal theme: default, mono")

	return cmd
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if v, _ := cmd.Flags().GetString("output-dir"); v != "" {
		cfg.OutputDir = v
	}
	if v, _ := cmd.Flags().GetString("csv-name"); v != "" {
		cfg.ComparisonCSVName = v
	}
	if v, _ := cmd.Flags().GetString("html-name"); v != "" {
		cfg.ComparisonHTMLName = v
	}

	baseline, err := loadRun(cfg, args[:1])
	if err != nil {
		return fmt.Errorf("baseline: %w", err)
	}
	candidate, err := loadRun(cfg, args[1:])
	if err != nil {
		return fmt.Errorf("candidate: %w", err)
	}

	report := diff.Compare(baseline, candidate)
	report.BaselineName = displayName(cmd, "baseline-name", args[0])
	report.CandidateName = displayName(cmd, "candidate-name", args[1])

	csvFile, err := createOutput(cfg.OutputDir, cfg.ComparisonCSVName)
	if err != nil {
		return err
	}
	defer func() { _ = csvFile.Close() }()
	if err := render.WriteComparisonCSV(csvFile, report); err != nil {
		return err
	}

	htmlFile, err := createOutput(cfg.OutputDir, cfg.ComparisonHTMLName)
	if err != nil {
		return err
	}
	defer func() { _ = htmlFile.Close() }()
	if err := render.WriteComparisonHTML(htmlFile, report); err != nil {
		return err
	}

	printPatterns(cmd, cfg, mapper.FromComparison(report))
	fmt.Fprintf(cmd.OutOrStdout(), "\nReports written to %s and %s\n",
		filepath.Join(cfg.OutputDir, cfg.ComparisonCSVName),
		filepath.Join(cfg.OutputDir, cfg.ComparisonHTMLName))

	if regressions := report.RowsOf(diff.Regression); len(regressions) > 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), color.RedString("\n%d regression(s):", len(regressions)))
		for _, row := range regressions {
			fmt.Fprintf(cmd.ErrOrStderr(), "  %s\n", row.ID)
		}
		return fmt.Errorf("%d regression(s): %w", len(regressions), ErrIssuesFound)
	}
	fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("No regressions detected"))
	return nil
}

// displayName resolves the run label: explicit flag, else the archive's
// base name without extension.
func displayName(cmd *cobra.Command, flag, path string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
