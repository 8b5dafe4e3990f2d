package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkbrains-DE/dbt-vc/internal/cli/config"
	"github.com/sparkbrains-DE/dbt-vc/internal/cli/output"
	"github.com/sparkbrains-DE/dbt-vc/internal/testutil"
)

const baseSchema = `version: 2
models:
  - name: users
    columns:
      - name: user_id
      - name: email
  - name: orders
`

const changedSchema = `version: 2
models:
  - name: users
    columns:
      - name: user_id
      - name: signup_date
  - name: payments
`

func executeDiff(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewDiffCommand()
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetContext(context.WithValue(context.Background(), config.LoggerKey(), testutil.NewTestLogger(t)))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// initDiffRepo builds a git repository with a base commit holding
// baseSchema and a second commit holding changedSchema.
func initDiffRepo(t *testing.T) (dir, baseRef string) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	dir = t.TempDir()
	modelsDir := filepath.Join(dir, "models")
	require.NoError(t, os.MkdirAll(modelsDir, 0o750))
	schemaPath := filepath.Join(modelsDir, "schema.yml")

	run := func(args ...string) string {
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		cmd.Env = append(os.Environ(),
			"GIT_AUTHOR_NAME=test", "GIT_AUTHOR_EMAIL=test@example.com",
			"GIT_COMMITTER_NAME=test", "GIT_COMMITTER_EMAIL=test@example.com",
		)
		out, err := cmd.Output()
		require.NoError(t, err, "git %v", args)
		return strings.TrimSpace(string(out))
	}

	run("init", "-q")
	require.NoError(t, os.WriteFile(schemaPath, []byte(baseSchema), 0o644))
	run("add", ".")
	run("commit", "-q", "-m", "base schema")
	baseRef = run("rev-parse", "HEAD")

	require.NoError(t, os.WriteFile(schemaPath, []byte(changedSchema), 0o644))
	run("add", ".")
	run("commit", "-q", "-m", "rework schema")

	config.ResetConfig()
	t.Setenv("DBTVC_PROJECT_DIR", dir)
	t.Setenv("DBTVC_MODELS_DIR", modelsDir)
	t.Setenv("DBTVC_REPORT_DIR", filepath.Join(dir, ".dbtvc"))
	return dir, baseRef
}

func TestDiff_NoRepository(t *testing.T) {
	dir := t.TempDir()
	config.ResetConfig()
	t.Setenv("DBTVC_PROJECT_DIR", dir)
	t.Setenv("DBTVC_MODELS_DIR", filepath.Join(dir, "models"))
	t.Setenv("DBTVC_REPORT_DIR", filepath.Join(dir, ".dbtvc"))

	out, err := executeDiff(t, "--no-report")
	require.NoError(t, err)
	assert.Contains(t, out, "No schema documents changed")
}

func TestDiff_ClassifiesChanges(t *testing.T) {
	dir, baseRef := initDiffRepo(t)

	out, err := executeDiff(t, "--base-ref", baseRef)
	require.NoError(t, err, "findings must not fail the run")

	assert.Contains(t, out, "Model 'orders' was removed")
	assert.Contains(t, out, "New model: payments")
	assert.Contains(t, out, "removed columns: email")
	assert.Contains(t, out, "added columns: signup_date")
	assert.Contains(t, out, "breaking")

	// Report document is persisted
	data, err := os.ReadFile(filepath.Join(dir, ".dbtvc", "schema_changes.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "models/schema.yml")
}

func TestDiff_JSONOutput(t *testing.T) {
	_, baseRef := initDiffRepo(t)

	out, err := executeDiff(t, "--base-ref", baseRef, "--format", "json", "--no-report")
	require.NoError(t, err)

	var parsed output.ChangeOutput
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, 1, parsed.Summary.FilesCompared)
	assert.Equal(t, 2, parsed.Summary.Breaking)
	assert.Equal(t, 2, parsed.Summary.NonBreaking)
	require.Len(t, parsed.Files, 1)
	assert.Equal(t, "models/schema.yml", parsed.Files[0].Path)
}

func TestDiff_SameContentNoFindings(t *testing.T) {
	_, _ = initDiffRepo(t)

	// HEAD against itself changes nothing
	out, err := executeDiff(t, "--base-ref", "HEAD", "--no-report")
	require.NoError(t, err)
	assert.Contains(t, out, "No schema documents changed")
}
