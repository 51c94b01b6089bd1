// Package config loads testdiff's optional .testdiff.yaml configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/testdiff/testdiff/pkg/result"
)

// DefaultFileName is looked up in the working directory when no --config
// flag is given.
const DefaultFileName = ".testdiff.yaml"

// Defaults for output file names, matching the report archive layout the
// comparison side expects.
const (
	DefaultOutputDir          = "."
	DefaultFailuresCSVName    = "test_failures.csv"
	DefaultFailuresHTMLName   = "test_failures.html"
	DefaultComparisonCSVName  = "comparison.csv"
	DefaultComparisonHTMLName = "comparison.html"
	DefaultTheme              = "default"
)

// Config is the application configuration from .testdiff.yaml.
type Config struct {
	OutputDir          string            `yaml:"output_dir"`
	FailuresCSVName    string            `yaml:"failures_csv"`
	FailuresHTMLName   string            `yaml:"failures_html"`
	ComparisonCSVName  string            `yaml:"comparison_csv"`
	ComparisonHTMLName string            `yaml:"comparison_html"`
	Theme              string            `yaml:"theme"`
	NoColor            bool              `yaml:"no_color"`
	// Tokens maps extra source status strings to outcome names
	// (passed, failed, skipped, error), extending the built-in table.
	Tokens map[string]string `yaml:"tokens"`
}

// Default returns a Config populated with defaults.
func Default() *Config {
	return &Config{
		OutputDir:          DefaultOutputDir,
		FailuresCSVName:    DefaultFailuresCSVName,
		FailuresHTMLName:   DefaultFailuresHTMLName,
		ComparisonCSVName:  DefaultComparisonCSVName,
		ComparisonHTMLName: DefaultComparisonHTMLName,
		Theme:              DefaultTheme,
	}
}

// Load reads the config file at path over the defaults. An empty path falls
// back to DefaultFileName; a missing default file is not an error, a missing
// explicit file is.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the loaded values against the closed outcome enumeration.
func (c *Config) Validate() error {
	for token, name := range c.Tokens {
		if _, err := outcomeByName(name); err != nil {
			return fmt.Errorf("token %q: %w", token, err)
		}
	}
	if c.OutputDir == "" {
		return errors.New("output_dir must not be empty")
	}
	return nil
}

// TokenOverrides converts the configured token names into outcomes.
// Call Validate (or Load, which validates) first.
func (c *Config) TokenOverrides() map[string]result.Outcome {
	if len(c.Tokens) == 0 {
		return nil
	}
	overrides := make(map[string]result.Outcome, len(c.Tokens))
	for token, name := range c.Tokens {
		o, err := outcomeByName(name)
		if err != nil {
			continue // rejected by Validate already
		}
		overrides[token] = o
	}
	return overrides
}

func outcomeByName(name string) (result.Outcome, error) {
	switch name {
	case "passed":
		return result.OutcomePassed, nil
	case "failed":
		return result.OutcomeFailed, nil
	case "skipped":
		return result.OutcomeSkipped, nil
	case "error":
		return result.OutcomeError, nil
	default:
		return 0, fmt.Errorf("unknown outcome %q (expected passed, failed, skipped, error)", name)
	}
}
