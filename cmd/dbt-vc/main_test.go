// Package main provides tests for the dbt-vc CLI.
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sparkbrains-DE/dbt-vc/internal/cli"
)

func writeFixtureProject(t *testing.T, schema string) string {
	t.Helper()
	dir := t.TempDir()
	modelsDir := filepath.Join(dir, "models")
	if err := os.MkdirAll(modelsDir, 0o750); err != nil {
		t.Fatalf("failed to create models dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(modelsDir, "schema.yml"), []byte(schema), 0o644); err != nil {
		t.Fatalf("failed to write schema: %v", err)
	}
	return dir
}

func TestVersionCommand(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Errorf("version command error = %v", err)
	}

	if !strings.Contains(buf.String(), "dbt-vc") {
		t.Errorf("version output should contain 'dbt-vc', got: %s", buf.String())
	}
}

func TestHelpCommand(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--help"})

	if err := cmd.Execute(); err != nil {
		t.Errorf("help command error = %v", err)
	}

	output := buf.String()
	for _, expected := range []string{"validate", "diff", "rules", "version"} {
		if !strings.Contains(output, expected) {
			t.Errorf("help output should contain '%s', got: %s", expected, output)
		}
	}
}

func TestRulesCommand(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"rules", "--format", "markdown"})

	if err := cmd.Execute(); err != nil {
		t.Errorf("rules command error = %v", err)
	}

	output := buf.String()
	for _, id := range []string{"MD01", "MD08"} {
		if !strings.Contains(output, id) {
			t.Errorf("rules output should contain '%s', got: %s", id, output)
		}
	}
}

func TestValidateCommand(t *testing.T) {
	dir := writeFixtureProject(t, `version: 2
models:
  - name: users
    description: All registered users of the platform.
    tags: [core]
    columns:
      - name: user_id
        description: Primary key for users.
        tests:
          - unique
          - not_null
`)

	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"validate", "--project-dir", dir, "--no-report"})

	if err := cmd.Execute(); err != nil {
		t.Errorf("validate command error = %v", err)
	}

	if !strings.Contains(buf.String(), "All validation checks passed") {
		t.Errorf("validate output should report success, got: %s", buf.String())
	}
}

func TestValidateCommandFails(t *testing.T) {
	dir := writeFixtureProject(t, "version: 2\nmodels:\n  - name: orders\n")

	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"validate", "--project-dir", dir, "--no-report"})

	if err := cmd.Execute(); err == nil {
		t.Error("validate should fail for a model without a description")
	}
}
