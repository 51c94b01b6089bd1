package result

import (
	"errors"
	"strings"
	"testing"
)

func TestNormalize_LastWriteWins(t *testing.T) {
	records := []RawRecord{
		{Suite: "SuiteA", Name: "t1", Token: "failed"},
		{Suite: "SuiteA", Name: "t1", Token: "passed"},
	}

	run, err := Normalize(records)
	if err != nil {
		t.Fatal(err)
	}
	if len(run) != 1 {
		t.Fatalf("expected 1 result, got %d", len(run))
	}
	r := run[Identity{Suite: "SuiteA", Name: "t1"}]
	if r.Outcome != OutcomePassed {
		t.Errorf("expected later record to win with passed, got %s", r.Outcome)
	}
}

func TestNormalize_TrimsNames(t *testing.T) {
	records := []RawRecord{
		{Suite: "  SuiteA  ", Name: "\tt1 ", Token: "passed"},
	}

	run, err := Normalize(records)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := run[Identity{Suite: "SuiteA", Name: "t1"}]; !ok {
		t.Errorf("expected trimmed identity, got keys %v", run.Identities())
	}
}

func TestNormalize_EmptyNameIsMalformed(t *testing.T) {
	records := []RawRecord{
		{Suite: "SuiteA", Name: "t1", Token: "passed"},
		{Suite: "SuiteB", Name: "   ", Token: "failed"},
	}

	_, err := Normalize(records)
	if err == nil {
		t.Fatal("expected malformed record error")
	}
	var malformed *MalformedRecordError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedRecordError, got %T", err)
	}
	if malformed.Index != 1 {
		t.Errorf("expected index 1, got %d", malformed.Index)
	}
	if malformed.Suite != "SuiteB" {
		t.Errorf("expected suite SuiteB, got %q", malformed.Suite)
	}
}

func TestNormalize_TokenTable(t *testing.T) {
	tests := []struct {
		token string
		want  Outcome
	}{
		{"passed", OutcomePassed},
		{"PASS", OutcomePassed},
		{"run", OutcomePassed},
		{"failure", OutcomeFailed},
		{"Failed", OutcomeFailed},
		{"error", OutcomeError},
		{"aborted", OutcomeError},
		{"skipped", OutcomeSkipped},
		{"notrun", OutcomeSkipped},
		{"ignored", OutcomeSkipped},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			run, err := Normalize([]RawRecord{{Suite: "S", Name: "t", Token: tt.token}})
			if err != nil {
				t.Fatal(err)
			}
			got := run[Identity{Suite: "S", Name: "t"}].Outcome
			if got != tt.want {
				t.Errorf("token %q: expected %s, got %s", tt.token, tt.want, got)
			}
		})
	}
}

func TestNormalize_UnrecognizedTokenBecomesError(t *testing.T) {
	records := []RawRecord{
		{Suite: "S", Name: "t", Token: "quarantined", Message: "flaky"},
	}

	run, err := Normalize(records)
	if err != nil {
		t.Fatal(err)
	}
	r := run[Identity{Suite: "S", Name: "t"}]
	if r.Outcome != OutcomeError {
		t.Errorf("expected error outcome for unknown token, got %s", r.Outcome)
	}
	if !strings.Contains(r.Message, `"quarantined"`) {
		t.Errorf("expected original token preserved in message, got %q", r.Message)
	}
	if !strings.Contains(r.Message, "flaky") {
		t.Errorf("expected original message preserved, got %q", r.Message)
	}
}

func TestNormalize_TokenOverrides(t *testing.T) {
	records := []RawRecord{
		{Suite: "S", Name: "t", Token: "quarantined"},
	}

	run, err := Normalize(records, WithTokens(map[string]Outcome{"quarantined": OutcomeSkipped}))
	if err != nil {
		t.Fatal(err)
	}
	if got := run[Identity{Suite: "S", Name: "t"}].Outcome; got != OutcomeSkipped {
		t.Errorf("expected override to map quarantined to skipped, got %s", got)
	}
}

func TestNormalize_Empty(t *testing.T) {
	run, err := Normalize(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(run) != 0 {
		t.Errorf("expected empty run, got %d results", len(run))
	}
}

func TestFailingClass(t *testing.T) {
	if !OutcomeFailed.FailingClass() || !OutcomeError.FailingClass() {
		t.Error("failed and error must be failing class")
	}
	if OutcomePassed.FailingClass() || OutcomeSkipped.FailingClass() {
		t.Error("passed and skipped must not be failing class")
	}
}

func TestIdentityNamespace(t *testing.T) {
	tests := []struct {
		suite string
		want  string
	}{
		{"org.example.sql.JoinSuite", "org.example.sql"},
		{"JoinSuite", "JoinSuite"},
		{"", ""},
	}
	for _, tt := range tests {
		id := Identity{Suite: tt.suite, Name: "t"}
		if got := id.Namespace(); got != tt.want {
			t.Errorf("Namespace(%q) = %q, want %q", tt.suite, got, tt.want)
		}
	}
}
