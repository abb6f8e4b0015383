// Package pipeline implements the load -> validate -> report batch flow.
// All rows are loaded into memory before validation, each row is validated
// independently, and the report is written once at the end or not at all.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/archivelab/metacheck/internal/report"
	"github.com/archivelab/metacheck/pkg/rules"
)

// Report formats supported by Run.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Config holds everything a single validation run needs. Paths come in
// explicitly so tests can run the pipeline against temp files.
type Config struct {
	InputPath  string
	ReportPath string
	Format     string // csv (default) or xlsx

	Rules  *rules.Config
	Logger *slog.Logger

	// OnLoad, when set, is called with the row count right after the input
	// table is loaded and before validation starts.
	OnLoad func(rows int)
}

// Run executes one full validation pass: load the input table, apply every
// rule to every row, write the annotated report. Row-level findings never
// abort the run; any I/O error does.
func Run(ctx context.Context, cfg Config) (*Result, Summary, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	table, err := Load(cfg.InputPath)
	if err != nil {
		return nil, Summary{}, err
	}
	logger.Debug("loaded input table", "path", cfg.InputPath, "rows", len(table.Records))
	if cfg.OnLoad != nil {
		cfg.OnLoad(len(table.Records))
	}

	analyzer := rules.NewAnalyzer(cfg.Rules)
	result, err := Validate(ctx, table, analyzer)
	if err != nil {
		return nil, Summary{}, err
	}

	issues := result.IssueStrings()
	switch cfg.Format {
	case "", FormatCSV:
		err = report.WriteCSV(cfg.ReportPath, result.Header, result.Records, issues)
	case FormatXLSX:
		err = report.WriteXLSX(cfg.ReportPath, result.Header, result.Records, issues)
	default:
		err = fmt.Errorf("unknown report format %q", cfg.Format)
	}
	if err != nil {
		return nil, Summary{}, err
	}
	logger.Debug("wrote report", "path", cfg.ReportPath, "format", cfg.Format)

	return result, result.Summarize(), nil
}
