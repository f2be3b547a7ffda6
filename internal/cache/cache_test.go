package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statFile(t *testing.T, path string) os.FileInfo {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	return info
}

func TestGetReturnsStoredCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.go")
	require.NoError(t, os.WriteFile(path, []byte("package a\n"), 0o644))

	c, err := New(8)
	require.NoError(t, err)
	info := statFile(t, path)

	_, ok := c.Get(path, info)
	assert.False(t, ok)

	c.Add(path, info, 7)
	lines, ok := c.Get(path, info)
	require.True(t, ok)
	assert.Equal(t, 7, lines)
}

func TestGetInvalidatesChangedFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.go")
	require.NoError(t, os.WriteFile(path, []byte("package a\n"), 0o644))

	c, err := New(8)
	require.NoError(t, err)
	c.Add(path, statFile(t, path), 1)

	require.NoError(t, os.WriteFile(path, []byte("package a\nvar b = 2\n"), 0o644))
	later := time.Now().Add(time.Minute)
	require.NoError(t, os.Chtimes(path, later, later))

	_, ok := c.Get(path, statFile(t, path))
	assert.False(t, ok)
	assert.Zero(t, c.Len())
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	dir := t.TempDir()
	c, err := New(2)
	require.NoError(t, err)

	for _, name := range []string{"a", "b", "c"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(name), 0o644))
		c.Add(path, statFile(t, path), 1)
	}
	assert.Equal(t, 2, c.Len())

	_, ok := c.Get(filepath.Join(dir, "a"), statFile(t, filepath.Join(dir, "a")))
	assert.False(t, ok)
}

func TestNewRejectsNonPositiveSize(t *testing.T) {
	_, err := New(0)
	assert.Error(t, err)
}
