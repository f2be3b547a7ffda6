package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prittamravi/clines/internal/config"
	"github.com/prittamravi/clines/internal/db"
	"github.com/prittamravi/clines/internal/diff"
)

// setupProject creates a project in a fresh working directory and returns
// its path. The test runs with that directory as cwd.
func setupProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	files := map[string]string{
		"src/main.go":       "package main\n\n// entry point\nfunc main() {}\n",
		"src/app.py":        "# comment\n\nx = 1\n",
		"node_modules/a.js": "a();\n",
		"README.md":         "# Demo\n\n" + config.PlaceholderStart + "\nold\n" + config.PlaceholderEnd + "\n",
	}
	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCountUpdatesReadme(t *testing.T) {
	dir := setupProject(t)

	out, err := execute(t, "src")
	require.NoError(t, err)
	assert.Contains(t, out, "3 effective lines in 2 files")

	data, err := os.ReadFile(filepath.Join(dir, "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Lines of Code: **3**")
	assert.NotContains(t, string(data), "\nold\n")
	assert.FileExists(t, filepath.Join(dir, config.ConfigFileName))
}

func TestCountDefaultsToCurrentDirectory(t *testing.T) {
	setupProject(t)

	out, err := execute(t, "--json")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, ".", got["root"])
	assert.Equal(t, "tiny", got["category"])
	assert.Equal(t, "replaced", got["readme"])
}

func TestCountDryRunPrintsDiff(t *testing.T) {
	dir := setupProject(t)

	out, err := execute(t, "--dry-run", "src")
	require.NoError(t, err)
	assert.Contains(t, out, "-old")
	assert.Contains(t, out, "+Lines of Code: **3**")

	data, err := os.ReadFile(filepath.Join(dir, "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "\nold\n")
	assert.NoFileExists(t, filepath.Join(dir, config.ConfigFileName))
}

func TestCountBasicVariant(t *testing.T) {
	dir := setupProject(t)

	_, err := execute(t, "--basic", "src")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `<span style="color: green;">Tiny scriptlet 💡</span>`)
	assert.NoFileExists(t, filepath.Join(dir, config.ConfigFileName))
}

func TestCountMissingRootFails(t *testing.T) {
	setupProject(t)

	_, err := execute(t, "nope")
	require.Error(t, err)
}

func TestCountRejectsExtraArgs(t *testing.T) {
	setupProject(t)

	_, err := execute(t, "a", "b")
	require.Error(t, err)
}

func TestRecordAndHistory(t *testing.T) {
	setupProject(t)

	out, err := execute(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No runs recorded yet")

	_, err = execute(t, "--record", "src")
	require.NoError(t, err)
	_, err = execute(t, "--record", "src")
	require.NoError(t, err)

	out, err = execute(t, "history", "--json")
	require.NoError(t, err)
	var runs []db.Run
	require.NoError(t, json.Unmarshal([]byte(out), &runs))
	require.Len(t, runs, 2)
	assert.Equal(t, 3, runs[0].TotalLines)

	out, err = execute(t, "history", "--no-color")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "3 lines"))
	assert.Contains(t, out, "(+0)")
}

func TestInitWritesConfigOnce(t *testing.T) {
	dir := setupProject(t)

	out, err := execute(t, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote default config")
	assert.FileExists(t, filepath.Join(dir, config.ConfigFileName))

	_, err = execute(t, "init")
	require.Error(t, err)

	_, err = execute(t, "init", "--force")
	require.NoError(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "clines "+Version+"\n", out)
}

func TestRootArg(t *testing.T) {
	assert.Equal(t, ".", rootArg(nil))
	assert.Equal(t, ".", rootArg([]string{""}))
	assert.Equal(t, "src", rootArg([]string{"src"}))
}

func TestHistoryBreakdown(t *testing.T) {
	dir := setupProject(t)

	out, err := execute(t, "history", "--breakdown")
	require.NoError(t, err)
	assert.Contains(t, out, "Need at least two recorded runs")

	_, err = execute(t, "--record", "src")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "lib.rs"), []byte("fn main() {}\n"), 0o644))
	require.NoError(t, os.Remove(filepath.Join(dir, "src", "app.py")))
	_, err = execute(t, "--record", "src")
	require.NoError(t, err)

	out, err = execute(t, "history", "--breakdown", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "+ .rs")
	assert.Contains(t, out, "- .py")
	assert.NotContains(t, out, ".go")

	out, err = execute(t, "history", "--breakdown", "--json")
	require.NoError(t, err)
	var got diff.Result
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Added, 1)
	assert.Equal(t, 1, got.Added[0].ToLines)
	require.Len(t, got.Removed, 1)
	assert.Equal(t, ".py", got.Removed[0].Extension)
}

func TestWatchIgnorerSkipsStateDir(t *testing.T) {
	for _, variant := range []config.Variant{config.Basic, config.Extended} {
		t.Run(variant.String(), func(t *testing.T) {
			globals := &globalFlags{configPath: config.ConfigFileName, readmePath: config.ReadmeFileName}
			ig := watchIgnorer(".", config.Default(variant), globals)

			assert.True(t, ig.Ignored(filepath.Join(config.StateDirName, config.DBFileName)))
			assert.True(t, ig.Ignored(filepath.Join(config.StateDirName, config.DBFileName+"-wal")))
			assert.True(t, ig.Ignored(config.ReadmeFileName))
			assert.False(t, ig.Ignored(filepath.Join("src", "main.go")))
		})
	}
}

func TestWatchIgnorerKeepsConfigDirs(t *testing.T) {
	globals := &globalFlags{configPath: config.ConfigFileName, readmePath: config.ReadmeFileName}
	cfg := config.Config{IgnoreDirs: []string{"tmp"}}
	ig := watchIgnorer(".", cfg, globals)

	assert.True(t, ig.Ignored(filepath.Join("tmp", "a.go")))
	assert.Equal(t, []string{"tmp"}, cfg.IgnoreDirs)
}

func TestCountRootNamedLikeSubcommand(t *testing.T) {
	dir := setupProject(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "init"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "init", "boot.sh"), []byte("#!/bin/sh\necho hi\n"), 0o644))

	out, err := execute(t, "./init")
	require.NoError(t, err)
	assert.Contains(t, out, "1 effective lines in 1 files")
	assert.Contains(t, NewRootCmd().Long, "'clines ./init'")
}
