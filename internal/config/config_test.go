package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingExtendedWritesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)

	cfg, err := Load(path, Extended)
	require.NoError(t, err)
	assert.Contains(t, cfg.IgnoreDirs, "node_modules")
	assert.Contains(t, cfg.IgnoreFiles, ".log")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var onDisk map[string][]string
	require.NoError(t, json.Unmarshal(data, &onDisk))
	assert.Equal(t, cfg.IgnoreDirs, onDisk["ignoreDirs"])
	assert.Equal(t, cfg.IgnoreFiles, onDisk["ignoreFiles"])
}

func TestLoadMissingBasicUsesEmptyDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)

	cfg, err := Load(path, Basic)
	require.NoError(t, err)
	assert.Empty(t, cfg.IgnoreDirs)
	assert.Empty(t, cfg.IgnoreFiles)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "basic variant must not create %s", path)
}

func TestLoadReadsCamelCaseKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	body := `{"ignoreFiles": [".min.js", " ", ".min.js"], "ignoreDirs": ["node_modules"], "ignorePaths": ["docs/**"], "extra": true}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path, Extended)
	require.NoError(t, err)
	assert.Equal(t, []string{".min.js"}, cfg.IgnoreFiles)
	assert.Equal(t, []string{"node_modules"}, cfg.IgnoreDirs)
	assert.Equal(t, []string{"docs/**"}, cfg.IgnorePaths)
}

func TestLoadMissingKeysDefaultToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(`{"ignoreDirs": ["tmp"]}`), 0o644))

	cfg, err := Load(path, Extended)
	require.NoError(t, err)
	assert.Equal(t, []string{"tmp"}, cfg.IgnoreDirs)
	assert.Empty(t, cfg.IgnoreFiles)
	assert.Empty(t, cfg.IgnorePaths)
}

func TestLoadMalformedFallsBackToDefault(t *testing.T) {
	for _, variant := range []Variant{Basic, Extended} {
		t.Run(variant.String(), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ConfigFileName)
			require.NoError(t, os.WriteFile(path, []byte(`{"ignoreDirs": [`), 0o644))

			cfg, err := Load(path, variant)
			require.Error(t, err)
			assert.Equal(t, Default(variant), cfg)
		})
	}
}

func TestLoadDropsInvalidGlobs(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(`{"ignorePaths": ["a/[", "gen/**"]}`), 0o644))

	cfg, err := Load(path, Extended)
	require.ErrorIs(t, err, ErrInvalidPattern)
	assert.Equal(t, []string{"gen/**"}, cfg.IgnorePaths)
}

func TestDefaultReturnsFreshSlices(t *testing.T) {
	a := Default(Extended)
	a.IgnoreDirs[0] = "mutated"
	b := Default(Extended)
	assert.NotEqual(t, "mutated", b.IgnoreDirs[0])
}

func TestReadMissingExtendedWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)

	cfg, err := Read(path, Extended)
	require.NoError(t, err)
	assert.Equal(t, Default(Extended), cfg)
	assert.NoFileExists(t, path)
}
