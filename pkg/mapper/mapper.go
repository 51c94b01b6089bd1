// Package mapper converts comparison reports and failure lists into
// console output patterns.
package mapper

import (
	"fmt"
	"strconv"

	"github.com/testdiff/testdiff/pkg/diff"
	"github.com/testdiff/testdiff/pkg/pattern"
	"github.com/testdiff/testdiff/pkg/result"
)

// FromFailures converts a single-run failure list into patterns: a Summary,
// a FailureTable when there is anything to show, and a per-namespace tally
// when the failures span more than one suite namespace.
func FromFailures(label string, total int, failures []result.Result) []pattern.Pattern {
	var failed, errored int
	for _, f := range failures {
		if f.Outcome == result.OutcomeError {
			errored++
		} else {
			failed++
		}
	}

	summary := &pattern.Summary{
		Label: label,
		Kind:  pattern.SummaryKindRun,
		Metrics: []pattern.SummaryItem{
			{Label: "Tests", Value: strconv.Itoa(total), Kind: "info"},
			{Label: "Failures", Value: strconv.Itoa(failed), Kind: kindFor(failed, "error")},
			{Label: "Errors", Value: strconv.Itoa(errored), Kind: kindFor(errored, "error")},
		},
	}

	patterns := []pattern.Pattern{summary}
	if len(failures) == 0 {
		return patterns
	}

	table := &pattern.FailureTable{
		Label: fmt.Sprintf("Failing Tests (%d)", len(failures)),
	}
	for _, f := range failures {
		table.Rows = append(table.Rows, pattern.FailureRow{
			Suite:    f.ID.Suite,
			Name:     f.ID.Name,
			Outcome:  f.Outcome.String(),
			Message:  f.Message,
			Duration: formatDuration(f.Duration),
		})
	}
	patterns = append(patterns, table)

	if tally := namespaceTally(failures); tally != nil {
		patterns = append(patterns, tally)
	}
	return patterns
}

// namespaceTally counts failures per suite namespace. A single namespace is
// not worth a breakdown.
func namespaceTally(failures []result.Result) *pattern.Summary {
	counts := make(map[string]int)
	var order []string
	for _, f := range failures {
		ns := f.ID.Namespace()
		if _, ok := counts[ns]; !ok {
			order = append(order, ns)
		}
		counts[ns]++
	}
	if len(order) < 2 {
		return nil
	}

	tally := &pattern.Summary{
		Label: "Failures by Namespace",
		Kind:  pattern.SummaryKindRun,
	}
	for _, ns := range order {
		tally.Metrics = append(tally.Metrics, pattern.SummaryItem{
			Label: ns,
			Value: strconv.Itoa(counts[ns]),
			Kind:  "error",
		})
	}
	return tally
}

// FromComparison converts a comparison report into patterns.
// Returns: Summary + one TransitionTable per actionable kind with rows.
// StillPassing rows are counted in the summary but never tabulated.
func FromComparison(r *diff.Report) []pattern.Pattern {
	summary := &pattern.Summary{
		Label: comparisonLabel(r),
		Kind:  pattern.SummaryKindComparison,
		Metrics: []pattern.SummaryItem{
			{Label: "Regressions", Value: strconv.Itoa(r.Count(diff.Regression)), Kind: kindFor(r.Count(diff.Regression), "error")},
			{Label: "Removed", Value: strconv.Itoa(r.Count(diff.Removed)), Kind: kindFor(r.Count(diff.Removed), "warning")},
			{Label: "Fixed", Value: strconv.Itoa(r.Count(diff.Fix)), Kind: "success"},
			{Label: "Added", Value: strconv.Itoa(r.Count(diff.Added)), Kind: "info"},
			{Label: "Still Failing", Value: strconv.Itoa(r.Count(diff.StillFailing)), Kind: kindFor(r.Count(diff.StillFailing), "warning")},
			{Label: "Still Passing", Value: strconv.Itoa(r.Count(diff.StillPassing)), Kind: "success"},
		},
	}

	patterns := []pattern.Pattern{summary}
	for _, k := range diff.Kinds() {
		if k == diff.StillPassing {
			continue
		}
		rows := r.RowsOf(k)
		if len(rows) == 0 {
			continue
		}
		patterns = append(patterns, transitionTable(k, rows))
	}
	return patterns
}

func transitionTable(k diff.TransitionKind, rows []diff.Row) *pattern.TransitionTable {
	table := &pattern.TransitionTable{
		Label: fmt.Sprintf("%s (%d)", kindHeading(k), len(rows)),
		Kind:  k.String(),
	}
	for _, row := range rows {
		tr := pattern.TransitionRow{
			Suite: row.ID.Suite,
			Name:  row.ID.Name,
		}
		if row.Baseline != nil {
			tr.Baseline = row.Baseline.Outcome.String()
			tr.Message = row.Baseline.Message
		}
		if row.Candidate != nil {
			tr.Candidate = row.Candidate.Outcome.String()
			tr.Message = row.Candidate.Message
		}
		table.Rows = append(table.Rows, tr)
	}
	return table
}

func kindHeading(k diff.TransitionKind) string {
	switch k {
	case diff.Regression:
		return "Regressions"
	case diff.Removed:
		return "Removed Tests"
	case diff.Fix:
		return "Fixed Tests"
	case diff.Added:
		return "Added Tests"
	case diff.StillFailing:
		return "Still Failing"
	default:
		return "Still Passing"
	}
}

func comparisonLabel(r *diff.Report) string {
	if r.BaselineName != "" && r.CandidateName != "" {
		return fmt.Sprintf("Comparison: %s vs %s", r.BaselineName, r.CandidateName)
	}
	return "Comparison"
}

func kindFor(count int, nonZero string) string {
	if count > 0 {
		return nonZero
	}
	return "success"
}

func formatDuration(seconds float64) string {
	if seconds <= 0 {
		return ""
	}
	return fmt.Sprintf("%.3fs", seconds)
}
