package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/testdiff/testdiff/pkg/diff"
	"github.com/testdiff/testdiff/pkg/result"
)

// WriteFailuresCSV writes a single-run failure list as CSV. Column layout
// follows the report archive convention: one row per failing-class test.
func WriteFailuresCSV(w io.Writer, failures []result.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Suite", "Test Name", "Status", "Message", "Duration (s)"}); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, f := range failures {
		rec := []string{
			f.ID.Suite,
			f.ID.Name,
			f.Outcome.String(),
			f.Message,
			strconv.FormatFloat(f.Duration, 'f', 3, 64),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteComparisonCSV writes a comparison report as CSV. Rows appear in
// report order, so the most actionable transitions come first.
func WriteComparisonCSV(w io.Writer, report *diff.Report) error {
	cw := csv.NewWriter(w)
	header := []string{
		"Transition", "Suite", "Test Name",
		"Baseline Status", "Candidate Status",
		"Baseline Message", "Candidate Message",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, row := range report.Rows {
		rec := []string{
			row.Kind.String(),
			row.ID.Suite,
			row.ID.Name,
			outcomeOrEmpty(row.Baseline),
			outcomeOrEmpty(row.Candidate),
			messageOrEmpty(row.Baseline),
			messageOrEmpty(row.Candidate),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func outcomeOrEmpty(r *result.Result) string {
	if r == nil {
		return ""
	}
	return r.Outcome.String()
}

func messageOrEmpty(r *result.Result) string {
	if r == nil {
		return ""
	}
	return r.Message
}
