package render

import (
	"strings"
	"testing"

	"github.com/testdiff/testdiff/pkg/pattern"
)

func testPatterns() []pattern.Pattern {
	return []pattern.Pattern{
		&pattern.Summary{
			Label: "Comparison: base vs head",
			Kind:  pattern.SummaryKindComparison,
			Metrics: []pattern.SummaryItem{
				{Label: "Regressions", Value: "1", Kind: "error"},
				{Label: "Fixed", Value: "2", Kind: "success"},
			},
		},
		&pattern.TransitionTable{
			Label: "Regressions (1)",
			Kind:  "regression",
			Rows: []pattern.TransitionRow{
				{Suite: "S", Name: "t1", Baseline: "passed", Candidate: "failed", Message: "boom"},
			},
		},
		&pattern.FailureTable{
			Label: "Failing Tests (1)",
			Rows: []pattern.FailureRow{
				{Suite: "S", Name: "t2", Outcome: "error", Message: "setup exploded", Duration: "0.100s"},
			},
		},
	}
}

func TestTerminalRender(t *testing.T) {
	out := NewTerminal(MonoTheme(), 100).Render(testPatterns())

	for _, want := range []string{
		"Comparison: base vs head",
		"Regressions: 1",
		"Regressions (1)",
		"S.t1",
		"passed > failed",
		"boom",
		"S.t2",
		"setup exploded",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("terminal output missing %q:\n%s", want, out)
		}
	}
}

func TestTerminalRender_ZeroWidthDefaults(t *testing.T) {
	out := NewTerminal(MonoTheme(), 0).Render(testPatterns())
	if !strings.Contains(out, "S.t1") {
		t.Errorf("zero-width renderer produced no rows:\n%s", out)
	}
}

func TestPlainRender(t *testing.T) {
	out := NewPlain().Render(testPatterns())

	for _, want := range []string{
		"Regressions: 1",
		"S.t1  passed > failed",
		"ERROR S.t2 (0.100s)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("plain output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("plain output contains ANSI escapes")
	}
}

func TestThemeByName(t *testing.T) {
	if got := ThemeByName("mono").Name; got != "mono" {
		t.Errorf("expected mono theme, got %s", got)
	}
	if got := ThemeByName("unknown").Name; got != "default" {
		t.Errorf("expected default theme fallback, got %s", got)
	}
}
