package commands

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/archivelab/metacheck/internal/cli/output"
	"github.com/archivelab/metacheck/internal/state"
)

// HistoryOptions holds options for the history command.
type HistoryOptions struct {
	Limit int // Maximum runs to show
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand() *cobra.Command {
	opts := &HistoryOptions{}
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past validation runs",
		Long: `Show recent validation runs recorded by 'metacheck check'.

Runs are listed newest first with their input, report, and issue counts.

Output adapts to environment:
  - Terminal: Styled table
  - Piped/Scripted: Markdown table
  - JSON: Machine-readable format`,
		Example: `  # Show the last 20 runs
  metacheck history

  # Show the last 5 runs
  metacheck history --limit 5

  # Output as JSON
  metacheck history -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHistory(cmd, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 20, "Maximum number of runs to show")

	return cmd
}

func runHistory(cmd *cobra.Command, opts *HistoryOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	if _, err := os.Stat(cfg.StatePath); err != nil {
		r.Muted("No run history yet. Run 'metacheck check' first.")
		return nil
	}

	store := state.NewStore()
	if err := store.Open(cfg.StatePath); err != nil {
		return fmt.Errorf("failed to open run history: %w", err)
	}
	defer func() { _ = store.Close() }()

	runs, err := store.ListRuns(opts.Limit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(map[string]any{"runs": runs, "count": len(runs)})
	}

	if len(runs) == 0 {
		r.Muted("No run history yet. Run 'metacheck check' first.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.AppendHeader(table.Row{"Started", "Input", "Report", "Rows", "With Issues", "Issues"})
	for _, run := range runs {
		t.AppendRow(table.Row{
			run.StartedAt.Local().Format("2006-01-02 15:04:05"),
			run.InputPath,
			run.ReportPath,
			run.TotalRows,
			run.RowsWithIssues,
			run.IssueCount,
		})
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		t.RenderMarkdown()
	} else {
		t.SetStyle(table.StyleLight)
		t.Render()
	}
	r.Printf("(%d runs)\n", len(runs))

	return nil
}
