package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/archivelab/metacheck/internal/cli/output"
	"github.com/archivelab/metacheck/pkg/rules/checks"
)

// initConfig is the shape of the generated metacheck.yaml. The default rule
// options are written out so curators can see and tune them in place.
type initConfig struct {
	Input  string `yaml:"input"`
	Report string `yaml:"report"`
	Format string `yaml:"format"`
	Rules  struct {
		Disabled []string                  `yaml:"disabled"`
		Severity map[string]string         `yaml:"severity,omitempty"`
		Options  map[string]map[string]any `yaml:"options"`
	} `yaml:"rules"`
}

const exampleCSV = `filename,title,creator,date,license,format
20230405_herbarium_spec_v01.tif,Herbarium specimen scan,Jane Archivist,2023-04-05,CC0-1.0,image/tiff
20230406_herbarium_spec_v02.tif,,Jane Archivist,2023-4-6,Apache-2.0,image/tiff
`

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool
	var example bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a metacheck workspace",
		Long: `Initialize a metacheck workspace with a default configuration file.

This creates a metacheck.yaml with the default input, report, and rule
settings. Use --example to also write a small sample metadata.csv to
validate against.`,
		Example: `  # Initialize in current directory
  metacheck init

  # Initialize with a sample metadata file
  metacheck init --example

  # Initialize in a new directory
  metacheck init batch42

  # Force overwrite existing config
  metacheck init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			cfg := getConfig()
			mode := output.Mode(cfg.OutputFormat)
			r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

			return runInit(r, dir, force, example)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")
	cmd.Flags().BoolVar(&example, "example", false, "Also write a sample metadata.csv")

	return cmd
}

func runInit(r *output.Renderer, dir string, force, example bool) error {
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	configPath := filepath.Join(dir, "metacheck.yaml")
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("metacheck.yaml already exists. Use --force to overwrite")
	}

	var cfg initConfig
	cfg.Input = "metadata.csv"
	cfg.Report = "report.csv"
	cfg.Format = "csv"
	cfg.Rules.Disabled = []string{}
	cfg.Rules.Options = map[string]map[string]any{
		"MD01": {"required_fields": checks.DefaultRequiredFields},
		"MD03": {"allowed_licenses": checks.DefaultAllowedLicenses},
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}
	r.Printf("Created %s\n", configPath)

	if example {
		csvPath := filepath.Join(dir, "metadata.csv")
		if _, err := os.Stat(csvPath); err == nil && !force {
			return fmt.Errorf("metadata.csv already exists. Use --force to overwrite")
		}
		if err := os.WriteFile(csvPath, []byte(exampleCSV), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", csvPath, err)
		}
		r.Printf("Created %s\n", csvPath)
	}

	r.Println("")
	r.Success("metacheck workspace initialized!")
	r.Println("")
	r.Println("Next steps:")
	r.Println("  1. Point 'input' at your metadata CSV (or use --example data)")
	r.Println("  2. Run 'metacheck check' to validate and write the report")
	r.Println("  3. Run 'metacheck rules' to see what is checked")

	return nil
}
