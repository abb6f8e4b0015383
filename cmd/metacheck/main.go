// Package main provides the CLI for the metacheck metadata validator.
package main

import (
	"os"

	"github.com/archivelab/metacheck/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
