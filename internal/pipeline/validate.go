package pipeline

import (
	"context"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/archivelab/metacheck/pkg/metadata"
	"github.com/archivelab/metacheck/pkg/rules"
)

// Result pairs the loaded table with per-record diagnostics.
// Diagnostics[i] belongs to Records[i]; rows with no findings hold nil.
type Result struct {
	Header      []string
	Records     []metadata.Record
	Diagnostics [][]rules.Diagnostic
}

// Validate runs the analyzer over every record. Records are independent, so
// they are evaluated in parallel; results land in index-addressed slots which
// keeps the output in input order.
func Validate(ctx context.Context, table *Table, analyzer *rules.Analyzer) (*Result, error) {
	diagnostics := make([][]rules.Diagnostic, len(table.Records))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, rec := range table.Records {
		g.Go(func() error {
			diagnostics[i] = analyzer.Analyze(rec)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Result{
		Header:      table.Header,
		Records:     table.Records,
		Diagnostics: diagnostics,
	}, nil
}

// IssueStrings returns the per-row issue column values: diagnostic messages
// joined by "; ", empty string for clean rows.
func (r *Result) IssueStrings() []string {
	out := make([]string, len(r.Diagnostics))
	for i, diags := range r.Diagnostics {
		msgs := make([]string, len(diags))
		for j, d := range diags {
			msgs[j] = d.Message
		}
		out[i] = strings.Join(msgs, "; ")
	}
	return out
}

// Summary aggregates a validation result for console output and run history.
type Summary struct {
	TotalRows      int            `json:"total_rows"`
	RowsWithIssues int            `json:"rows_with_issues"`
	IssueCount     int            `json:"issue_count"`
	PerRule        map[string]int `json:"per_rule"`
}

// Summarize counts rows and findings per rule.
func (r *Result) Summarize() Summary {
	s := Summary{
		TotalRows: len(r.Records),
		PerRule:   make(map[string]int),
	}
	for _, diags := range r.Diagnostics {
		if len(diags) > 0 {
			s.RowsWithIssues++
		}
		s.IssueCount += len(diags)
		for _, d := range diags {
			s.PerRule[d.RuleID]++
		}
	}
	return s
}
