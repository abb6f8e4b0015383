package config

import (
	"fmt"

	"github.com/archivelab/metacheck/pkg/metadata"
	"github.com/archivelab/metacheck/pkg/rules"
)

// Validate checks if the configuration is valid. Input file existence is not
// checked here so help and rules commands work without an input file.
func Validate(c *Config) error {
	if c.InputPath == "" {
		return fmt.Errorf("input is required")
	}
	if c.ReportPath == "" {
		return fmt.Errorf("report is required")
	}
	switch c.ReportFormat {
	case "", "csv", "xlsx":
	default:
		return fmt.Errorf("unknown report format %q (expected csv or xlsx)", c.ReportFormat)
	}

	if c.Rules != nil {
		for id, sev := range c.Rules.Severity {
			if _, ok := metadata.ParseSeverity(sev); !ok {
				return fmt.Errorf("invalid severity %q for rule %s", sev, id)
			}
		}
	}
	return nil
}

// BuildRulesConfig converts the declarative rules section into a runtime
// rules.Config, applying disables, severity overrides, and per-rule options.
func (c *Config) BuildRulesConfig() *rules.Config {
	rc := rules.NewConfig()
	if c == nil || c.Rules == nil {
		return rc
	}

	for _, id := range c.Rules.Disabled {
		rc.Disable(id)
	}
	for id, sev := range c.Rules.Severity {
		if s, ok := metadata.ParseSeverity(sev); ok {
			rc.SetSeverity(id, s)
		}
	}
	for id, opts := range c.Rules.Options {
		rc.SetRuleOptions(id, opts)
	}
	return rc
}
