package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/archivelab/metacheck/internal/cli/config"
	"github.com/archivelab/metacheck/internal/cli/output"
	"github.com/archivelab/metacheck/internal/pipeline"
	"github.com/archivelab/metacheck/internal/state"
	"github.com/archivelab/metacheck/internal/watch"
	"github.com/archivelab/metacheck/pkg/rules"
	_ "github.com/archivelab/metacheck/pkg/rules/checks" // register metadata rules
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Input   string   // Positional input path, overrides config
	Disable []string // Rule IDs to disable
	Rules   []string // Run only specific rules
	Strict  bool     // Non-zero exit when rows have issues
	Watch   bool     // Re-run on input changes
	NoSave  bool     // Skip recording the run in history
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check [input]",
		Short: "Validate a metadata CSV and write an annotated report",
		Long: `Validate every row of the input CSV against the metadata rule set
and write a report that mirrors the input with one extra "issues" column.

Rows that fail one or more checks get their findings joined by "; " in
the issues column; clean rows get an empty cell. Row-level findings do
not fail the command unless --strict is set.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Validate metadata.csv into report.csv
  metacheck check

  # Explicit paths and Excel output
  metacheck check -i batch42.csv -r batch42-report.xlsx -f xlsx

  # Disable the filename convention rule
  metacheck check --disable MD04

  # Fail the build when any row has issues
  metacheck check --strict

  # Re-validate whenever the input file changes
  metacheck check --watch`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Input = args[0]
			}
			return runCheck(cmd, opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Run only specific rules")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Exit non-zero when any row has issues")
	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "Re-run validation when the input file changes")
	cmd.Flags().BoolVar(&opts.NoSave, "no-save", false, "Do not record this run in history")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *CheckOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	if opts.Input != "" {
		cfg.InputPath = opts.Input
	}

	runOnce := func() error {
		return executeCheck(cmd, cmdCtx, opts)
	}

	if opts.Watch {
		if r.EffectiveMode() != output.ModeJSON {
			r.Muted(fmt.Sprintf("Watching %s for changes (ctrl-c to stop)", cfg.InputPath))
		}
		if err := runOnce(); err != nil {
			// In watch mode a failing pass is reported, not fatal
			r.Printf("%s %v\n", r.Styles().Error.Render("error:"), err)
		}
		err := watch.Run(cmd.Context(), cfg.InputPath, cmdCtx.Logger, runOnce)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	return runOnce()
}

func executeCheck(cmd *cobra.Command, cmdCtx *CommandContext, opts *CheckOptions) error {
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	ruleCfg := buildRuleConfig(cfg, opts)

	_, summary, err := pipeline.Run(cmd.Context(), pipeline.Config{
		InputPath:  cfg.InputPath,
		ReportPath: cfg.ReportPath,
		Format:     cfg.ReportFormat,
		Rules:      ruleCfg,
		Logger:     cmdCtx.Logger,
		OnLoad: func(rows int) {
			if r.EffectiveMode() != output.ModeJSON {
				r.Printf("Loaded %d rows.\n", rows)
			}
		},
	})
	if err != nil {
		return err
	}

	saveRunHistory(cmdCtx, opts, summary)

	if r.EffectiveMode() == output.ModeJSON {
		_ = r.JSON(checkJSONOutput{
			Input:   cfg.InputPath,
			Report:  cfg.ReportPath,
			Summary: summary,
		})
	} else {
		r.Printf("Wrote %s. %d/%d rows have issues.\n", cfg.ReportPath, summary.RowsWithIssues, summary.TotalRows)
		renderRuleBreakdown(r, summary)
	}

	if opts.Strict && summary.RowsWithIssues > 0 {
		return fmt.Errorf("%d of %d rows have issues", summary.RowsWithIssues, summary.TotalRows)
	}
	return nil
}

// checkJSONOutput is the machine-readable shape of a check run.
type checkJSONOutput struct {
	Input   string           `json:"input"`
	Report  string           `json:"report"`
	Summary pipeline.Summary `json:"summary"`
}

// buildRuleConfig merges the project rule config with CLI overrides.
func buildRuleConfig(cfg *config.Config, opts *CheckOptions) *rules.Config {
	ruleCfg := cfg.BuildRulesConfig()

	// CLI overrides (higher precedence)
	for _, id := range opts.Disable {
		ruleCfg.Disable(strings.TrimSpace(id))
	}

	// If --rule specified, disable all others
	if len(opts.Rules) > 0 {
		enabledSet := make(map[string]bool)
		for _, id := range opts.Rules {
			enabledSet[strings.TrimSpace(id)] = true
		}
		for _, rule := range rules.GetAll() {
			if !enabledSet[rule.ID] {
				ruleCfg.Disable(rule.ID)
			}
		}
	}

	return ruleCfg
}

// renderRuleBreakdown prints a per-rule issue table when anything fired.
func renderRuleBreakdown(r *output.Renderer, summary pipeline.Summary) {
	if summary.IssueCount == 0 {
		r.Success("All rows passed validation")
		return
	}

	ids := make([]string, 0, len(summary.PerRule))
	for id := range summary.PerRule {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	names := make(map[string]string)
	for _, def := range rules.GetAll() {
		names[def.ID] = def.Name
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.AppendHeader(table.Row{"Rule", "Name", "Issues"})
	for _, id := range ids {
		t.AppendRow(table.Row{id, names[id], summary.PerRule[id]})
	}
	t.AppendFooter(table.Row{"", "Total", summary.IssueCount})

	if r.EffectiveMode() == output.ModeMarkdown {
		t.RenderMarkdown()
	} else {
		t.SetStyle(table.StyleLight)
		t.Render()
	}
}

// saveRunHistory records the run in the state store. History is best-effort:
// a store failure is logged and the run still succeeds.
func saveRunHistory(cmdCtx *CommandContext, opts *CheckOptions, summary pipeline.Summary) {
	if opts.NoSave || cmdCtx.Cfg.StatePath == "" {
		return
	}

	stateDir := filepath.Dir(cmdCtx.Cfg.StatePath)
	if stateDir != "." && stateDir != "" {
		if err := os.MkdirAll(stateDir, 0750); err != nil {
			cmdCtx.Logger.Warn("failed to create state directory", "path", stateDir, "error", err)
			return
		}
	}

	store := state.NewStore()
	if err := store.Open(cmdCtx.Cfg.StatePath); err != nil {
		cmdCtx.Logger.Warn("failed to open run history store", "path", cmdCtx.Cfg.StatePath, "error", err)
		return
	}
	defer func() { _ = store.Close() }()

	if _, err := store.SaveRun(cmdCtx.Cfg.InputPath, cmdCtx.Cfg.ReportPath, summary.TotalRows, summary.RowsWithIssues, summary.IssueCount); err != nil {
		cmdCtx.Logger.Warn("failed to record run", "error", err)
	}
}
