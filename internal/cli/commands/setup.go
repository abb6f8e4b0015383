package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/archivelab/metacheck/internal/cli/config"
	"github.com/archivelab/metacheck/internal/cli/output"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the command's flags and context.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// Helper functions shared across commands

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	// Fallback: read from environment with defaults
	input := getEnvOrDefault("METACHECK_INPUT", config.DefaultInputPath)
	report := getEnvOrDefault("METACHECK_REPORT", config.DefaultReportPath)
	format := getEnvOrDefault("METACHECK_FORMAT", config.DefaultReportFormat)
	statePath := getEnvOrDefault("METACHECK_STATE_PATH", config.DefaultStateFile)
	verbose := os.Getenv("METACHECK_VERBOSE") == "true"
	outputFormat := os.Getenv("METACHECK_OUTPUT")

	return &config.Config{
		InputPath:    input,
		ReportPath:   report,
		ReportFormat: format,
		StatePath:    statePath,
		Verbose:      verbose,
		OutputFormat: outputFormat,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
