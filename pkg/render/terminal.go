package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/testdiff/testdiff/pkg/pattern"
)

// Terminal renders patterns as styled terminal output via lipgloss.
type Terminal struct {
	theme Theme
	width int
}

// NewTerminal creates a terminal renderer with the given theme.
func NewTerminal(theme Theme, width int) *Terminal {
	if width <= 0 {
		width = 80
	}
	return &Terminal{theme: theme, width: width}
}

// Render formats all patterns for terminal display.
func (t *Terminal) Render(patterns []pattern.Pattern) string {
	var sections []string
	for _, p := range patterns {
		s := t.renderOne(p)
		if s != "" {
			sections = append(sections, s)
		}
	}
	return strings.Join(sections, "\n")
}

func (t *Terminal) renderOne(p pattern.Pattern) string {
	switch v := p.(type) {
	case *pattern.Summary:
		return t.renderSummary(v)
	case *pattern.FailureTable:
		return t.renderFailureTable(v)
	case *pattern.TransitionTable:
		return t.renderTransitionTable(v)
	default:
		return ""
	}
}

func (t *Terminal) renderSummary(s *pattern.Summary) string {
	var sb strings.Builder
	if s.Label != "" {
		sb.WriteString(t.theme.Bold.Render(s.Label))
		sb.WriteString("\n")
	}
	for _, m := range s.Metrics {
		sb.WriteString("  ")
		icon, style := t.iconStyle(m.Kind)
		sb.WriteString(style.Render(icon + " " + m.Label + ": " + m.Value))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *Terminal) renderFailureTable(ft *pattern.FailureTable) string {
	if len(ft.Rows) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(t.theme.Bold.Render(ft.Label))
	sb.WriteString("\n")

	maxName, maxDur := 0, 0
	for _, r := range ft.Rows {
		name := r.Suite + "." + r.Name
		if w := runewidth.StringWidth(name); w > maxName {
			maxName = w
		}
		if len(r.Duration) > maxDur {
			maxDur = len(r.Duration)
		}
	}
	if maxName > 70 {
		maxName = 70
	}

	for _, r := range ft.Rows {
		sb.WriteString("  ")
		icon, style := t.outcomeIconStyle(r.Outcome)
		sb.WriteString(style.Render(icon + " "))
		sb.WriteString(padRight(truncate(r.Suite+"."+r.Name, maxName), maxName))
		if r.Duration != "" {
			sb.WriteString("  ")
			sb.WriteString(t.theme.Muted.Render(padLeft(r.Duration, maxDur)))
		}
		if r.Message != "" {
			sb.WriteString("\n    ")
			sb.WriteString(t.theme.Muted.Render(firstLine(r.Message)))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *Terminal) renderTransitionTable(tt *pattern.TransitionTable) string {
	if len(tt.Rows) == 0 {
		return ""
	}
	var sb strings.Builder
	style := t.kindStyle(tt.Kind)
	sb.WriteString(style.Render(t.theme.Bold.Render(tt.Label)))
	sb.WriteString("\n")

	maxName := 0
	for _, r := range tt.Rows {
		if w := runewidth.StringWidth(r.Suite + "." + r.Name); w > maxName {
			maxName = w
		}
	}
	if maxName > 70 {
		maxName = 70
	}

	for _, r := range tt.Rows {
		sb.WriteString("  ")
		sb.WriteString(style.Render(t.theme.Icons.Bullet))
		sb.WriteString(" ")
		sb.WriteString(padRight(truncate(r.Suite+"."+r.Name, maxName), maxName))
		sb.WriteString("  ")
		sb.WriteString(t.theme.Muted.Render(outcomePair(r.Baseline, r.Candidate)))
		if r.Message != "" {
			sb.WriteString("\n    ")
			sb.WriteString(t.theme.Muted.Render(firstLine(r.Message)))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// outcomePair formats the before/after outcomes, with "-" for an absent side.
func outcomePair(baseline, candidate string) string {
	if baseline == "" {
		baseline = "-"
	}
	if candidate == "" {
		candidate = "-"
	}
	return baseline + " > " + candidate
}

func (t *Terminal) iconStyle(kind string) (string, lipgloss.Style) {
	switch kind {
	case "success":
		return t.theme.Icons.Pass, t.theme.Success
	case "error":
		return t.theme.Icons.Fail, t.theme.Error
	case "warning":
		return t.theme.Icons.Warn, t.theme.Warning
	default:
		return t.theme.Icons.Info, t.theme.Primary
	}
}

func (t *Terminal) outcomeIconStyle(outcome string) (string, lipgloss.Style) {
	switch outcome {
	case "passed":
		return t.theme.Icons.Pass, t.theme.Success
	case "failed":
		return t.theme.Icons.Fail, t.theme.Error
	case "error":
		return t.theme.Icons.Fail, t.theme.Error
	case "skipped":
		return t.theme.Icons.Warn, t.theme.Warning
	default:
		return t.theme.Icons.Info, t.theme.Muted
	}
}

func (t *Terminal) kindStyle(kind string) lipgloss.Style {
	switch kind {
	case "regression", "still-failing":
		return t.theme.Error
	case "removed":
		return t.theme.Warning
	case "fix":
		return t.theme.Success
	default:
		return t.theme.Primary
	}
}

func truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "...")
}

func padRight(s string, width int) string {
	if w := runewidth.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func padLeft(s string, width int) string {
	if w := runewidth.StringWidth(s); w < width {
		return strings.Repeat(" ", width-w) + s
	}
	return s
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
