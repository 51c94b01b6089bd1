package pattern

// FailureTable lists failing-class tests from a single run.
type FailureTable struct {
	Label string
	Rows  []FailureRow
}

// FailureRow is one failing test.
type FailureRow struct {
	Suite    string
	Name     string
	Outcome  string // "failed" or "error"
	Message  string
	Duration string // formatted seconds, "" when unknown
}

func (t *FailureTable) Type() PatternType { return PatternTypeFailureTable }

// TransitionTable lists the rows of one transition kind from a comparison.
type TransitionTable struct {
	Label string // e.g., "Regressions"
	Kind  string // transition kind string, e.g. "regression"
	Rows  []TransitionRow
}

// TransitionRow is one classified identity.
type TransitionRow struct {
	Suite     string
	Name      string
	Baseline  string // outcome string, "" when absent
	Candidate string // outcome string, "" when absent
	Message   string // candidate message, baseline's when candidate absent
}

func (t *TransitionTable) Type() PatternType { return PatternTypeTransitionTable }
