package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/testdiff/testdiff/pkg/diff"
	"github.com/testdiff/testdiff/pkg/result"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var htmlTemplates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

type failuresPage struct {
	GeneratedAt string
	Archives    []string
	Total       int
	Failed      int
	Errored     int
	Namespaces  []namespaceCount
	Rows        []failureHTMLRow
}

type namespaceCount struct {
	Name    string
	Failed  int
	Errored int
	Total   int
}

type failureHTMLRow struct {
	Suite    string
	Name     string
	Outcome  string
	Message  string
	Duration string
}

// WriteFailuresHTML writes the browsable single-run failure report.
// total is the number of tests in the run, archives the input names.
func WriteFailuresHTML(w io.Writer, failures []result.Result, total int, archives []string) error {
	page := failuresPage{
		GeneratedAt: time.Now().Format("2006-01-02 15:04:05"),
		Archives:    archives,
		Total:       total,
	}

	counts := make(map[string]*namespaceCount)
	var order []string
	for _, f := range failures {
		ns := f.ID.Namespace()
		nc, ok := counts[ns]
		if !ok {
			nc = &namespaceCount{Name: ns}
			counts[ns] = nc
			order = append(order, ns)
		}
		nc.Total++
		if f.Outcome == result.OutcomeError {
			page.Errored++
			nc.Errored++
		} else {
			page.Failed++
			nc.Failed++
		}

		page.Rows = append(page.Rows, failureHTMLRow{
			Suite:    f.ID.Suite,
			Name:     f.ID.Name,
			Outcome:  f.Outcome.String(),
			Message:  f.Message,
			Duration: formatSeconds(f.Duration),
		})
	}
	// failures arrive sorted by (suite, name), so namespaces are ordered too
	for _, ns := range order {
		page.Namespaces = append(page.Namespaces, *counts[ns])
	}

	if err := htmlTemplates.ExecuteTemplate(w, "failures.html.tmpl", page); err != nil {
		return fmt.Errorf("rendering failure report: %w", err)
	}
	return nil
}

type comparisonPage struct {
	GeneratedAt   string
	BaselineName  string
	CandidateName string
	Counts        []kindCount
	Regressions   int
	Sections      []comparisonSection
}

type kindCount struct {
	Heading string
	Kind    string
	Count   int
}

type comparisonSection struct {
	Heading string
	Kind    string
	Rows    []transitionHTMLRow
}

type transitionHTMLRow struct {
	Suite     string
	Name      string
	Baseline  string
	Candidate string
	Message   string
}

// WriteComparisonHTML writes the browsable two-run comparison report.
// Sections appear in transition priority order; StillPassing is summarized
// but not tabulated.
func WriteComparisonHTML(w io.Writer, report *diff.Report) error {
	page := comparisonPage{
		GeneratedAt:   time.Now().Format("2006-01-02 15:04:05"),
		BaselineName:  report.BaselineName,
		CandidateName: report.CandidateName,
		Regressions:   report.Count(diff.Regression),
	}

	for _, k := range diff.Kinds() {
		page.Counts = append(page.Counts, kindCount{
			Heading: kindHeading(k),
			Kind:    k.String(),
			Count:   report.Count(k),
		})
		if k == diff.StillPassing {
			continue
		}
		rows := report.RowsOf(k)
		if len(rows) == 0 {
			continue
		}
		section := comparisonSection{Heading: kindHeading(k), Kind: k.String()}
		for _, row := range rows {
			hr := transitionHTMLRow{Suite: row.ID.Suite, Name: row.ID.Name}
			if row.Baseline != nil {
				hr.Baseline = row.Baseline.Outcome.String()
				hr.Message = row.Baseline.Message
			}
			if row.Candidate != nil {
				hr.Candidate = row.Candidate.Outcome.String()
				hr.Message = row.Candidate.Message
			}
			section.Rows = append(section.Rows, hr)
		}
		page.Sections = append(page.Sections, section)
	}

	if err := htmlTemplates.ExecuteTemplate(w, "comparison.html.tmpl", page); err != nil {
		return fmt.Errorf("rendering comparison report: %w", err)
	}
	return nil
}

func kindHeading(k diff.TransitionKind) string {
	switch k {
	case diff.Regression:
		return "Regressions"
	case diff.Removed:
		return "Removed"
	case diff.Fix:
		return "Fixed"
	case diff.Added:
		return "Added"
	case diff.StillFailing:
		return "Still Failing"
	default:
		return "Still Passing"
	}
}

func formatSeconds(seconds float64) string {
	if seconds <= 0 {
		return ""
	}
	return fmt.Sprintf("%.3fs", seconds)
}
