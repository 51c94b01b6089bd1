// Package result defines the canonical test result model shared by the
// extractor, the comparison engine, and the renderers.
package result

import "strings"

// Outcome is the normalized status of a single test case.
type Outcome int

const (
	OutcomePassed Outcome = iota
	OutcomeFailed
	OutcomeSkipped
	// OutcomeError marks infrastructure or setup failures, as opposed to
	// assertion failures. Sources that don't make the distinction collapse
	// to OutcomeFailed.
	OutcomeError
)

func (o Outcome) String() string {
	switch o {
	case OutcomePassed:
		return "passed"
	case OutcomeFailed:
		return "failed"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeError:
		return "error"
	default:
		return "unknown"
	}
}

// FailingClass reports whether o counts as a failure. Failed and Error are
// the failing class; Passed and Skipped are not. Both the comparison engine
// and the single-run failure report use this predicate, never their own.
func (o Outcome) FailingClass() bool {
	return o == OutcomeFailed || o == OutcomeError
}

// Identity is the stable key for a test case across runs: the trimmed
// (suite, test) name pair. Duration, timestamps, and failure text never
// participate in identity.
type Identity struct {
	Suite string
	Name  string
}

func (id Identity) String() string {
	if id.Suite == "" {
		return id.Name
	}
	return id.Suite + "." + id.Name
}

// Namespace returns the dotted package prefix of the suite name, used for
// grouping in reports. "org.example.sql.JoinSuite" → "org.example.sql";
// an undotted suite name is its own namespace.
func (id Identity) Namespace() string {
	if i := strings.LastIndex(id.Suite, "."); i > 0 {
		return id.Suite[:i]
	}
	return id.Suite
}

// Less orders identities by (suite, name).
func (id Identity) Less(other Identity) bool {
	if id.Suite != other.Suite {
		return id.Suite < other.Suite
	}
	return id.Name < other.Name
}

// Result is one test case outcome within a single run. Immutable once
// constructed.
type Result struct {
	ID       Identity
	Outcome  Outcome
	Message  string
	Duration float64 // seconds; zero when the source omits it
}

// RunSet maps each identity to its result for one pipeline run. Keys are
// unique by construction (Normalize enforces the dedup policy).
type RunSet map[Identity]Result

// Identities returns the keys sorted by (suite, name).
func (rs RunSet) Identities() []Identity {
	ids := make([]Identity, 0, len(rs))
	for id := range rs {
		ids = append(ids, id)
	}
	sortIdentities(ids)
	return ids
}
