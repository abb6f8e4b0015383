// Package config provides configuration management for the metacheck CLI.
// Precedence from highest to lowest: flags > environment variables >
// config file > built-in defaults.
package config

// Config holds all CLI configuration options.
type Config struct {
	InputPath    string       `koanf:"input"`
	ReportPath   string       `koanf:"report"`
	ReportFormat string       `koanf:"format"`
	StatePath    string       `koanf:"state_path"`
	Verbose      bool         `koanf:"verbose"`
	OutputFormat string       `koanf:"output"`
	Rules        *RulesConfig `koanf:"rules"`
}

// RulesConfig tunes the fixed rule set. Rules cannot be added through
// configuration, only disabled or re-tuned.
type RulesConfig struct {
	// Disabled lists rule IDs to skip, e.g. ["MD04"].
	Disabled []string `koanf:"disabled"`

	// Severity overrides the default severity per rule ID,
	// e.g. {"MD03": "warning"}.
	Severity map[string]string `koanf:"severity"`

	// Options holds rule-specific options per rule ID,
	// e.g. {"MD03": {"allowed_licenses": ["MIT"]}}.
	Options map[string]map[string]any `koanf:"options"`
}

// Default configuration values.
const (
	DefaultInputPath    = "metadata.csv"
	DefaultReportPath   = "report.csv"
	DefaultReportFormat = "csv"
	DefaultStateFile    = ".metacheck/state.db"
	DefaultOutput       = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)
