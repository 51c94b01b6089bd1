package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/testdiff/testdiff/pkg/diff"
	"github.com/testdiff/testdiff/pkg/mapper"
	"github.com/testdiff/testdiff/pkg/render"
)

// NewReportCmd creates the single-run failure report command.
func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <archive.zip> [archive.zip...]",
		Short: "Report failing tests from one pipeline run",
		Long: `Extract JUnit XML results from one or more zip archives belonging to the
same pipeline run and write CSV and HTML reports of the failing tests.
Multiple archives merge in argument order; on duplicate test identities the
later archive wins.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runReport,
	}

	cmd.Flags().StringP("output-dir", "o", "", "Output directory for reports")
	cmd.Flags().String("csv-name", "", "CSV output filename")
	cmd.Flags().String("html-name", "", "HTML output filename")
	cmd.Flags().String("format", "auto", "Console output format: auto, terminal, plain")
	cmd.Flags().String("theme", "", "Terminal theme: default, mono")

	return cmd
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if v, _ := cmd.Flags().GetString("output-dir"); v != "" {
		cfg.OutputDir = v
	}
	if v, _ := cmd.Flags().GetString("csv-name"); v != "" {
		cfg.FailuresCSVName = v
	}
	if v, _ := cmd.Flags().GetString("html-name"); v != "" {
		cfg.FailuresHTMLName = v
	}

	archives := existingArchives(args)
	if len(archives) == 0 {
		return fmt.Errorf("no readable archives among %s", strings.Join(args, ", "))
	}

	run, err := loadRun(cfg, archives)
	if err != nil {
		return err
	}
	failures := diff.Failures(run)

	names := make([]string, len(archives))
	for i, a := range archives {
		names[i] = filepath.Base(a)
	}

	csvFile, err := createOutput(cfg.OutputDir, cfg.FailuresCSVName)
	if err != nil {
		return err
	}
	defer func() { _ = csvFile.Close() }()
	if err := render.WriteFailuresCSV(csvFile, failures); err != nil {
		return err
	}

	htmlFile, err := createOutput(cfg.OutputDir, cfg.FailuresHTMLName)
	if err != nil {
		return err
	}
	defer func() { _ = htmlFile.Close() }()
	if err := render.WriteFailuresHTML(htmlFile, failures, len(run), names); err != nil {
		return err
	}

	label := fmt.Sprintf("Run: %s", strings.Join(names, ", "))
	printPatterns(cmd, cfg, mapper.FromFailures(label, len(run), failures))
	fmt.Fprintf(cmd.OutOrStdout(), "\nReports written to %s and %s\n",
		filepath.Join(cfg.OutputDir, cfg.FailuresCSVName),
		filepath.Join(cfg.OutputDir, cfg.FailuresHTMLName))

	if len(failures) > 0 {
		return fmt.Errorf("%d failing test(s): %w", len(failures), ErrIssuesFound)
	}
	return nil
}

// existingArchives filters args to readable files, warning on the rest.
// The analyzer accepts globs expanded by the shell, so a stale path is a
// warning, not a hard stop.
func existingArchives(args []string) []string {
	var archives []string
	for _, a := range args {
		if info, err := os.Stat(a); err != nil || info.IsDir() {
			fmt.Fprintln(os.Stderr, color.YellowString("warning: %s not found, skipping", a))
			continue
		}
		archives = append(archives, a)
	}
	return archives
}
