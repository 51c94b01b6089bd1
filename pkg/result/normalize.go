package result

import (
	"fmt"
	"sort"
	"strings"
)

// RawRecord is one test case as reported by the extractor, before
// normalization. Token carries the source's status string verbatim.
type RawRecord struct {
	Suite    string
	Name     string
	Token    string
	Message  string
	Duration float64
}

// MalformedRecordError reports a raw record that cannot yield a valid
// identity. Normalization stops on the first one; silently dropping records
// would corrupt comparison completeness.
type MalformedRecordError struct {
	Index int // position in the input sequence
	Suite string
	Name  string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("record %d: missing test name (suite %q)", e.Index, e.Suite)
}

// defaultTokens maps source status strings to outcomes. Lookup is
// case-insensitive. "aborted" lands in the error class: the source tooling
// counts aborted tests as issues, not skips.
var defaultTokens = map[string]Outcome{
	"pass":    OutcomePassed,
	"passed":  OutcomePassed,
	"success": OutcomePassed,
	"run":     OutcomePassed, // JUnit status attr on executed, failure-free cases
	"notrun":  OutcomeSkipped,
	"fail":    OutcomeFailed,
	"failed":  OutcomeFailed,
	"failure": OutcomeFailed,
	"error":   OutcomeError,
	"errored": OutcomeError,
	"skip":    OutcomeSkipped,
	"skipped": OutcomeSkipped,
	"ignored": OutcomeSkipped,
	"aborted": OutcomeError,
}

// Option adjusts normalization behavior.
type Option func(*normalizer)

// WithTokens merges extra token → outcome mappings into the default table.
// Extra entries win over defaults for the same token.
func WithTokens(extra map[string]Outcome) Option {
	return func(n *normalizer) {
		for tok, o := range extra {
			n.tokens[strings.ToLower(tok)] = o
		}
	}
}

type normalizer struct {
	tokens map[string]Outcome
}

// Normalize maps raw records into a RunSet keyed by identity.
//
// Policies, both load-bearing for comparison correctness:
//   - last-write-wins: when the same identity appears more than once, the
//     later record overwrites the earlier one (reruns within a pipeline
//     append updated outcomes);
//   - unrecognized tokens map to OutcomeError with the token recorded in
//     the message, rather than being dropped.
//
// A record with an empty test name after trimming is a hard error.
func Normalize(records []RawRecord, opts ...Option) (RunSet, error) {
	n := &normalizer{tokens: make(map[string]Outcome, len(defaultTokens))}
	for tok, o := range defaultTokens {
		n.tokens[tok] = o
	}
	for _, opt := range opts {
		opt(n)
	}

	set := make(RunSet, len(records))
	for i, rec := range records {
		suite := strings.TrimSpace(rec.Suite)
		name := strings.TrimSpace(rec.Name)
		if name == "" {
			return nil, &MalformedRecordError{Index: i, Suite: suite}
		}

		id := Identity{Suite: suite, Name: name}
		r := Result{
			ID:       id,
			Message:  rec.Message,
			Duration: rec.Duration,
		}

		outcome, ok := n.tokens[strings.ToLower(strings.TrimSpace(rec.Token))]
		if !ok {
			outcome = OutcomeError
			note := fmt.Sprintf("unrecognized outcome token %q", rec.Token)
			if r.Message != "" {
				note += ": " + r.Message
			}
			r.Message = note
		}
		r.Outcome = outcome

		set[id] = r
	}
	return set, nil
}

func sortIdentities(ids []Identity) {
	sort.Slice(ids, func(i, j int) bool { return ids[i].Less(ids[j]) })
}
