package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/testdiff/testdiff/pkg/result"
)

// chdir switches to dir for the duration of the test, restoring the
// previous working directory on cleanup. Stands in for t.Chdir, which
// requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingDefaultFileUsesDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
	assert.Equal(t, DefaultFailuresCSVName, cfg.FailuresCSVName)
	assert.Equal(t, DefaultComparisonHTMLName, cfg.ComparisonHTMLName)
	assert.Equal(t, DefaultTheme, cfg.Theme)
	assert.Nil(t, cfg.TokenOverrides())
}

func TestLoad_MissingExplicitFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
output_dir: reports
failures_csv: failures.csv
theme: mono
no_color: true
tokens:
  flaky: failed
  pending: skipped
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "reports", cfg.OutputDir)
	assert.Equal(t, "failures.csv", cfg.FailuresCSVName)
	// Unset keys keep their defaults.
	assert.Equal(t, DefaultFailuresHTMLName, cfg.FailuresHTMLName)
	assert.Equal(t, "mono", cfg.Theme)
	assert.True(t, cfg.NoColor)

	overrides := cfg.TokenOverrides()
	assert.Equal(t, result.OutcomeFailed, overrides["flaky"])
	assert.Equal(t, result.OutcomeSkipped, overrides["pending"])
}

func TestLoad_UnknownTokenOutcomeRejected(t *testing.T) {
	path := writeConfig(t, `
tokens:
  flaky: wobbly
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wobbly")
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "output_dir: [unclosed")

	_, err := Load(path)
	require.Error(t, err)
}

func TestValidate_EmptyOutputDir(t *testing.T) {
	cfg := Default()
	cfg.OutputDir = ""
	require.Error(t, cfg.Validate())
}
