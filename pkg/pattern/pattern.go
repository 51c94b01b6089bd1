// Package pattern defines the semantic data types for testdiff's console
// output. Patterns are pure data — renderers decide presentation.
package pattern

// PatternType identifies the kind of output pattern.
type PatternType string

const (
	PatternTypeSummary         PatternType = "summary"
	PatternTypeFailureTable    PatternType = "failure-table"
	PatternTypeTransitionTable PatternType = "transition-table"
)

// Pattern is the interface all output patterns implement.
// Patterns hold data; renderers decide how to present it.
type Pattern interface {
	Type() PatternType
}
