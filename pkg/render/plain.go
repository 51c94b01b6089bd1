package render

import (
	"strings"

	"github.com/testdiff/testdiff/pkg/pattern"
)

// Plain renders patterns as terse plain text with zero ANSI codes, for
// piped output and CI logs.
type Plain struct{}

// NewPlain creates a plain-text renderer.
func NewPlain() *Plain {
	return &Plain{}
}

// Render formats all patterns as plain text.
func (p *Plain) Render(patterns []pattern.Pattern) string {
	var sb strings.Builder
	for _, pt := range patterns {
		switch v := pt.(type) {
		case *pattern.Summary:
			p.renderSummary(&sb, v)
		case *pattern.FailureTable:
			p.renderFailureTable(&sb, v)
		case *pattern.TransitionTable:
			p.renderTransitionTable(&sb, v)
		}
	}
	return sb.String()
}

func (p *Plain) renderSummary(sb *strings.Builder, s *pattern.Summary) {
	if s.Label != "" {
		sb.WriteString(s.Label + "\n")
	}
	for _, m := range s.Metrics {
		sb.WriteString("  " + m.Label + ": " + m.Value + "\n")
	}
}

func (p *Plain) renderFailureTable(sb *strings.Builder, ft *pattern.FailureTable) {
	sb.WriteString("\n" + ft.Label + "\n")
	for _, r := range ft.Rows {
		sb.WriteString("  " + strings.ToUpper(r.Outcome) + " " + r.Suite + "." + r.Name)
		if r.Duration != "" {
			sb.WriteString(" (" + r.Duration + ")")
		}
		sb.WriteString("\n")
		if r.Message != "" {
			sb.WriteString("    " + firstLine(r.Message) + "\n")
		}
	}
}

func (p *Plain) renderTransitionTable(sb *strings.Builder, tt *pattern.TransitionTable) {
	sb.WriteString("\n" + tt.Label + "\n")
	for _, r := range tt.Rows {
		sb.WriteString("  " + r.Suite + "." + r.Name + "  " + outcomePair(r.Baseline, r.Candidate) + "\n")
		if r.Message != "" {
			sb.WriteString("    " + firstLine(r.Message) + "\n")
		}
	}
}
