package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/testdiff/testdiff/pkg/diff"
	"github.com/testdiff/testdiff/pkg/result"
)

func TestWriteFailuresHTML(t *testing.T) {
	failures := []result.Result{
		{
			ID:      result.Identity{Suite: "org.example.sql.JoinSuite", Name: "joins two tables"},
			Outcome: result.OutcomeFailed,
			Message: "expected 3 rows, got 2",
		},
		{
			ID:      result.Identity{Suite: "org.example.sql.ScanSuite", Name: "scans <scripts>"},
			Outcome: result.OutcomeError,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteFailuresHTML(&buf, failures, 120, []string{"run1.zip"}))
	out := buf.String()

	assert.Contains(t, out, "joins two tables")
	assert.Contains(t, out, "org.example.sql", "namespace grouping present")
	assert.Contains(t, out, "expected 3 rows, got 2")
	assert.Contains(t, out, "&lt;scripts&gt;", "test names are escaped")
	assert.Contains(t, out, ">120<", "total test count rendered")
}

func TestWriteFailuresHTML_NoFailures(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFailuresHTML(&buf, nil, 10, []string{"run1.zip"}))
	assert.Contains(t, buf.String(), "No failing tests")
}

func TestWriteComparisonHTML(t *testing.T) {
	baseline := result.RunSet{
		{Suite: "S", Name: "t1"}: {ID: result.Identity{Suite: "S", Name: "t1"}, Outcome: result.OutcomePassed},
		{Suite: "S", Name: "t2"}: {ID: result.Identity{Suite: "S", Name: "t2"}, Outcome: result.OutcomeFailed},
	}
	candidate := result.RunSet{
		{Suite: "S", Name: "t1"}: {ID: result.Identity{Suite: "S", Name: "t1"}, Outcome: result.OutcomeFailed, Message: "boom"},
		{Suite: "S", Name: "t2"}: {ID: result.Identity{Suite: "S", Name: "t2"}, Outcome: result.OutcomePassed},
	}
	report := diff.Compare(baseline, candidate)
	report.BaselineName = "pr-success"
	report.CandidateName = "current"

	var buf bytes.Buffer
	require.NoError(t, WriteComparisonHTML(&buf, report))
	out := buf.String()

	assert.Contains(t, out, "pr-success")
	assert.Contains(t, out, "current")
	assert.Contains(t, out, "1 regression(s) detected")
	assert.Contains(t, out, "Regressions")
	assert.Contains(t, out, "Fixed")
	assert.Contains(t, out, "boom")

	// regressions section precedes fixed section
	assert.Less(t, strings.Index(out, `class="section regression"`), strings.Index(out, `class="section fix"`))
}

func TestWriteComparisonHTML_NoRegressions(t *testing.T) {
	run := result.RunSet{
		{Suite: "S", Name: "t1"}: {ID: result.Identity{Suite: "S", Name: "t1"}, Outcome: result.OutcomePassed},
	}
	report := diff.Compare(run, run)

	var buf bytes.Buffer
	require.NoError(t, WriteComparisonHTML(&buf, report))
	assert.NotContains(t, buf.String(), "regression(s) detected")
}
