// Package main provides tests for the metacheck CLI.
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/archivelab/metacheck/internal/cli"
	"github.com/archivelab/metacheck/internal/cli/config"
)

const sampleCSV = `filename,title,creator,date,license,format
20230405_herbarium_spec_v01.tif,Herbarium specimen scan,Jane Archivist,2023-04-05,CC0-1.0,image/tiff
notebook-scan.tif,,John Scanner,2023-13-40,Apache-2.0,image/tiff
`

func writeSampleInput(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "metadata.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0644); err != nil {
		t.Fatalf("failed to write sample input: %v", err)
	}
	return path
}

func TestVersionCommand(t *testing.T) {
	config.ResetConfig()
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"version"})

	err := cmd.Execute()
	if err != nil {
		t.Errorf("version command error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "metacheck") {
		t.Errorf("version output should contain 'metacheck', got: %s", output)
	}
}

func TestHelpCommand(t *testing.T) {
	config.ResetConfig()
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	if err != nil {
		t.Errorf("help command error = %v", err)
	}

	output := buf.String()
	expectedCommands := []string{"check", "rules", "history", "init"}
	for _, expected := range expectedCommands {
		if !strings.Contains(output, expected) {
			t.Errorf("help output should contain '%s', got: %s", expected, output)
		}
	}
}

func TestCheckCommand(t *testing.T) {
	config.ResetConfig()
	tmpDir := t.TempDir()
	input := writeSampleInput(t, tmpDir)
	report := filepath.Join(tmpDir, "report.csv")

	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{
		"check",
		"--input", input,
		"--report", report,
		"--state", filepath.Join(tmpDir, "state.db"),
	})

	err := cmd.Execute()
	if err != nil {
		t.Fatalf("check command error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "Loaded 2 rows.") {
		t.Errorf("output should report loaded rows, got: %s", output)
	}
	if !strings.Contains(output, "1/2 rows have issues") {
		t.Errorf("output should report issue counts, got: %s", output)
	}

	data, err := os.ReadFile(report)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "issues") {
		t.Errorf("report should have an issues column, got: %s", content)
	}
	if !strings.Contains(content, "Missing title; Invalid date format (expected YYYY-MM-DD); License not allowed: Apache-2.0; Filename does not follow expected structure") {
		t.Errorf("report should carry joined issue messages, got: %s", content)
	}
}

func TestCheckCommandStrict(t *testing.T) {
	config.ResetConfig()
	tmpDir := t.TempDir()
	input := writeSampleInput(t, tmpDir)

	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{
		"check",
		"--strict",
		"--input", input,
		"--report", filepath.Join(tmpDir, "report.csv"),
		"--state", filepath.Join(tmpDir, "state.db"),
	})

	err := cmd.Execute()
	if err == nil {
		t.Error("strict check with dirty rows should return an error")
	}
}

func TestCheckCommandMissingInput(t *testing.T) {
	config.ResetConfig()
	tmpDir := t.TempDir()

	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{
		"check",
		"--input", filepath.Join(tmpDir, "does-not-exist.csv"),
		"--report", filepath.Join(tmpDir, "report.csv"),
		"--state", filepath.Join(tmpDir, "state.db"),
	})

	err := cmd.Execute()
	if err == nil {
		t.Error("check with missing input should return an error")
	}
}

func TestRulesCommand(t *testing.T) {
	config.ResetConfig()
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"rules"})

	err := cmd.Execute()
	if err != nil {
		t.Errorf("rules command error = %v", err)
	}

	output := buf.String()
	for _, id := range []string{"MD01", "MD02", "MD03", "MD04"} {
		if !strings.Contains(output, id) {
			t.Errorf("rules output should contain %s, got: %s", id, output)
		}
	}
}

func TestHistoryCommand(t *testing.T) {
	config.ResetConfig()
	tmpDir := t.TempDir()
	input := writeSampleInput(t, tmpDir)
	statePath := filepath.Join(tmpDir, "state.db")

	// Record one run
	cmd := cli.NewRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{
		"check",
		"--input", input,
		"--report", filepath.Join(tmpDir, "report.csv"),
		"--state", statePath,
	})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("check command error = %v", err)
	}

	config.ResetConfig()
	cmd2 := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd2.SetOut(buf)
	cmd2.SetErr(buf)
	cmd2.SetArgs([]string{"history", "--state", statePath})

	if err := cmd2.Execute(); err != nil {
		t.Fatalf("history command error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "metadata.csv") {
		t.Errorf("history output should list the run, got: %s", output)
	}
}

func TestInitCommand(t *testing.T) {
	config.ResetConfig()
	tmpDir := t.TempDir()
	dir := filepath.Join(tmpDir, "batch")

	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"init", dir, "--example"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("init command error = %v", err)
	}

	for _, name := range []string{"metacheck.yaml", "metadata.csv"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("init should create %s: %v", name, err)
		}
	}
}

func TestCompletionCommand(t *testing.T) {
	shells := []string{"bash", "zsh", "fish", "powershell"}

	for _, shell := range shells {
		t.Run(shell, func(t *testing.T) {
			config.ResetConfig()
			cmd := cli.NewRootCmd()
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs([]string{"completion", shell})

			err := cmd.Execute()
			if err != nil {
				t.Errorf("completion %s command error = %v", shell, err)
			}
		})
	}
}

func TestUnknownCommand(t *testing.T) {
	config.ResetConfig()
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"unknown-command"})

	err := cmd.Execute()
	if err == nil {
		t.Error("unknown command should return an error")
	}
}

func TestMain(m *testing.M) {
	os.Exit(m.Run())
}
