package pattern

// SummaryKind identifies what a summary describes, for renderer dispatch.
type SummaryKind string

const (
	SummaryKindRun        SummaryKind = "run"        // single-run failure counts
	SummaryKindComparison SummaryKind = "comparison" // transition counts
)

// Summary represents high-level counts for a run or a comparison.
type Summary struct {
	Label   string
	Kind    SummaryKind
	Metrics []SummaryItem
}

// SummaryItem is a single metric in a summary.
type SummaryItem struct {
	Label string // e.g., "Regressions", "Fixed", "Failures"
	Value string // formatted count
	Kind  string // "success", "error", "warning", "info" — affects coloring
}

func (s *Summary) Type() PatternType { return PatternTypeSummary }
