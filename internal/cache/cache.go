// Package cache keeps per-file line counts between walks so repeated scans
// only re-read files whose size or modification time changed.
package cache

import (
	"io/fs"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

type entry struct {
	modTime time.Time
	size    int64
	lines   int
}

// Cache is safe for concurrent use.
type Cache struct {
	entries *lru.Cache[string, entry]
}

func New(size int) (*Cache, error) {
	entries, err := lru.New[string, entry](size)
	if err != nil {
		return nil, err
	}
	return &Cache{entries: entries}, nil
}

// Get returns the cached count for path if info still matches.
func (c *Cache) Get(path string, info fs.FileInfo) (int, bool) {
	e, ok := c.entries.Get(path)
	if !ok {
		return 0, false
	}
	if e.size != info.Size() || !e.modTime.Equal(info.ModTime()) {
		c.entries.Remove(path)
		return 0, false
	}
	return e.lines, true
}

func (c *Cache) Add(path string, info fs.FileInfo, lines int) {
	c.entries.Add(path, entry{modTime: info.ModTime(), size: info.Size(), lines: lines})
}

func (c *Cache) Len() int {
	return c.entries.Len()
}

func (c *Cache) Purge() {
	c.entries.Purge()
}
