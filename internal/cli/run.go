package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/testdiff/testdiff/internal/config"
	"github.com/testdiff/testdiff/pkg/junit"
	"github.com/testdiff/testdiff/pkg/pattern"
	"github.com/testdiff/testdiff/pkg/render"
	"github.com/testdiff/testdiff/pkg/result"
)

// loadConfig reads the config named by the persistent --config flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// loadRun extracts and normalizes one run from the given archives.
// Archives merge in argument order, so under the last-write-wins dedup
// policy a later archive's outcome supersedes an earlier one's.
func loadRun(cfg *config.Config, archives []string) (result.RunSet, error) {
	var records []result.RawRecord
	for _, path := range archives {
		recs, skipped, err := junit.ReadArchive(path)
		if err != nil {
			return nil, err
		}
		for _, name := range skipped {
			fmt.Fprintln(os.Stderr, color.YellowString("warning: skipping unparseable entry %s in %s", name, path))
		}
		Logger.Debug("extracted archive", "path", path, "records", len(recs), "skipped", len(skipped))
		records = append(records, recs...)
	}

	var opts []result.Option
	if overrides := cfg.TokenOverrides(); overrides != nil {
		opts = append(opts, result.WithTokens(overrides))
	}
	run, err := result.Normalize(records, opts...)
	if err != nil {
		return nil, fmt.Errorf("normalizing results: %w", err)
	}
	Logger.Debug("normalized run", "records", len(records), "tests", len(run))
	return run, nil
}

// createOutput opens path under dir for writing, creating dir if needed.
func createOutput(dir, name string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", name, err)
	}
	return f, nil
}

// printPatterns renders patterns to stdout, styled when attached to a TTY.
func printPatterns(cmd *cobra.Command, cfg *config.Config, patterns []pattern.Pattern) {
	format, _ := cmd.Flags().GetString("format")
	themeName, _ := cmd.Flags().GetString("theme")
	if themeName == "" {
		themeName = cfg.Theme
	}

	fmt.Fprint(cmd.OutOrStdout(), selectRenderer(format, themeName, cfg).Render(patterns))
}

func selectRenderer(format, themeName string, cfg *config.Config) render.Renderer {
	if format == "auto" || format == "" {
		format = "plain"
		if term.IsTerminal(int(os.Stdout.Fd())) {
			format = "terminal"
		}
	}
	if format != "terminal" {
		return render.NewPlain()
	}

	theme := render.ThemeByName(themeName)
	if cfg.NoColor || os.Getenv("NO_COLOR") != "" {
		theme = render.MonoTheme()
	}
	width := 80
	if tw, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && tw > 0 {
		width = tw
	}
	return render.NewTerminal(theme, width)
}
