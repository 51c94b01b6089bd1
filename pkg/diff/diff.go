// Package diff classifies test outcome transitions between two runs.
//
// Compare is the core of the tool: it normalizes two RunSets into a single
// canonical key space and produces a deterministic, fully classified report.
// It is a total function — any pair of well-formed RunSets, including empty
// ones, yields a report with every identity from the union exactly once.
package diff

import (
	"sort"

	"github.com/testdiff/testdiff/pkg/result"
)

// TransitionKind classifies one identity's status delta across two runs.
// The numeric order is the report sort priority: most actionable first.
type TransitionKind int

const (
	Regression   TransitionKind = iota // passed in baseline, failing in candidate
	Removed                            // present in baseline only
	Fix                                // failing in baseline, passed in candidate
	Added                              // present in candidate only
	StillFailing                       // failing-class on both sides
	StillPassing                       // neutral: no failure on either side
)

func (k TransitionKind) String() string {
	switch k {
	case Regression:
		return "regression"
	case Removed:
		return "removed"
	case Fix:
		return "fix"
	case Added:
		return "added"
	case StillFailing:
		return "still-failing"
	case StillPassing:
		return "still-passing"
	default:
		return "unknown"
	}
}

// Kinds lists all transition kinds in priority order.
func Kinds() []TransitionKind {
	return []TransitionKind{Regression, Removed, Fix, Added, StillFailing, StillPassing}
}

// Row is one identity's classified transition. A nil Baseline or Candidate
// means the test is absent on that side.
type Row struct {
	ID        result.Identity
	Kind      TransitionKind
	Baseline  *result.Result
	Candidate *result.Result
}

// Report is the classified comparison of two runs. Rows are sorted by
// (kind priority, suite, name). Constructed once by Compare, then read-only.
type Report struct {
	BaselineName  string
	CandidateName string
	Rows          []Row
	Summary       map[TransitionKind]int
}

// Count returns the number of rows with the given kind.
func (r *Report) Count(k TransitionKind) int { return r.Summary[k] }

// RowsOf returns the rows with the given kind, preserving report order.
func (r *Report) RowsOf(k TransitionKind) []Row {
	var rows []Row
	for _, row := range r.Rows {
		if row.Kind == k {
			rows = append(rows, row)
		}
	}
	return rows
}

// Compare classifies every identity present in either run.
//
// Classification when present on both sides goes by failing-class
// membership, not literal outcome equality: Error → Failed is StillFailing.
// Skipped is neutral against Passed or Skipped, but against a failing-class
// outcome it takes the failing side's direction — a skip is not evidence of
// passing, so baseline Skipped + candidate Failed is a Regression.
func Compare(baseline, candidate result.RunSet) *Report {
	union := make(map[result.Identity]struct{}, len(baseline)+len(candidate))
	for id := range baseline {
		union[id] = struct{}{}
	}
	for id := range candidate {
		union[id] = struct{}{}
	}

	rows := make([]Row, 0, len(union))
	for id := range union {
		row := Row{ID: id}
		if b, ok := baseline[id]; ok {
			v := b
			row.Baseline = &v
		}
		if c, ok := candidate[id]; ok {
			v := c
			row.Candidate = &v
		}
		row.Kind = classify(row.Baseline, row.Candidate)
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Kind != rows[j].Kind {
			return rows[i].Kind < rows[j].Kind
		}
		return rows[i].ID.Less(rows[j].ID)
	})

	summary := make(map[TransitionKind]int)
	for _, row := range rows {
		summary[row.Kind]++
	}

	return &Report{Rows: rows, Summary: summary}
}

func classify(baseline, candidate *result.Result) TransitionKind {
	switch {
	case baseline == nil:
		return Added
	case candidate == nil:
		return Removed
	}

	bFail := baseline.Outcome.FailingClass()
	cFail := candidate.Outcome.FailingClass()

	switch {
	case bFail && cFail:
		return StillFailing
	case !bFail && cFail:
		return Regression
	case bFail && !cFail:
		return Fix
	default:
		// Neither side failing: Passed/Skipped in any combination is neutral.
		return StillPassing
	}
}

// Failures projects the failing-class results of a single run, sorted by
// (suite, name). It shares FailingClass with Compare so the two reports can
// never disagree on what counts as a failure.
func Failures(run result.RunSet) []result.Result {
	var failures []result.Result
	for _, r := range run {
		if r.Outcome.FailingClass() {
			failures = append(failures, r)
		}
	}
	sort.Slice(failures, func(i, j int) bool { return failures[i].ID.Less(failures[j].ID) })
	return failures
}
