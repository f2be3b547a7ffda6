// Package scan walks a project tree and aggregates effective line counts
// per file extension.
package scan

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"

	"github.com/prittamravi/clines/internal/config"
	"github.com/prittamravi/clines/internal/logging"
	"github.com/prittamravi/clines/internal/loc"
)

// Cache remembers line counts of files that have not changed since they
// were last counted.
type Cache interface {
	Get(path string, info fs.FileInfo) (int, bool)
	Add(path string, info fs.FileInfo, lines int)
}

type Options struct {
	Config config.Config
	// SkipBinaryAssets skips config.BinaryAssetSuffixes in addition to the
	// configured ignore rules.
	SkipBinaryAssets bool
	Cache            Cache
}

type Walker struct {
	opts       Options
	ignoreDirs map[string]struct{}
	suffixes   []string
}

func New(opts Options) *Walker {
	w := &Walker{
		opts:       opts,
		ignoreDirs: make(map[string]struct{}, len(opts.Config.IgnoreDirs)),
	}
	for _, d := range opts.Config.IgnoreDirs {
		w.ignoreDirs[d] = struct{}{}
	}
	w.suffixes = append(w.suffixes, opts.Config.IgnoreFiles...)
	if opts.SkipBinaryAssets {
		w.suffixes = append(w.suffixes, config.BinaryAssetSuffixes...)
	}
	return w
}

// Walk counts every eligible file under root depth-first. Entries are
// visited in name order. A directory that cannot be listed aborts the walk;
// a file that cannot be read is logged and contributes nothing. Symlinks
// are read through, while named pipes, sockets and devices are skipped
// without being read since opening them can block.
func (w *Walker) Walk(ctx context.Context, root string) (*Result, error) {
	result := newResult(root)
	stack := []string{root}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if w.ignoredDir(root, dir) {
			logging.L().Debug("skip directory", zap.String("dir", dir))
			continue
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", dir, err)
		}

		var subdirs []string
		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())
			if entry.IsDir() {
				subdirs = append(subdirs, path)
				continue
			}
			if !isReadable(entry.Type()) {
				logging.L().Debug("skip special file", zap.String("path", path))
				continue
			}
			if w.ignoredFile(root, path, entry.Name()) {
				continue
			}
			w.countFile(result, path, entry)
		}
		for i := len(subdirs) - 1; i >= 0; i-- {
			stack = append(stack, subdirs[i])
		}
	}
	return result, nil
}

func (w *Walker) countFile(result *Result, path string, entry fs.DirEntry) {
	var info fs.FileInfo
	if w.opts.Cache != nil {
		if fi, err := entry.Info(); err == nil {
			info = fi
			if lines, ok := w.opts.Cache.Get(path, info); ok {
				result.Record(Ext(entry.Name()), lines)
				return
			}
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logging.L().Warn("read file", zap.String("path", path), zap.Error(err))
		return
	}
	lines := loc.CountLOC(entry.Name(), string(data))
	if w.opts.Cache != nil && info != nil {
		w.opts.Cache.Add(path, info, lines)
	}
	result.Record(Ext(entry.Name()), lines)
}

func (w *Walker) ignoredDir(root, dir string) bool {
	if _, ok := w.ignoreDirs[filepath.Base(dir)]; ok {
		return true
	}
	return dir != root && w.matchesPath(root, dir)
}

func (w *Walker) ignoredFile(root, path, name string) bool {
	for _, suffix := range w.suffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return w.matchesPath(root, path)
}

func (w *Walker) matchesPath(root, path string) bool {
	if len(w.opts.Config.IgnorePaths) == 0 {
		return false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range w.opts.Config.IgnorePaths {
		if matched, err := doublestar.Match(pattern, rel); err == nil && matched {
			return true
		}
	}
	return false
}

// Symlinks are read through; pipes, sockets and devices would block or
// yield no text.
func isReadable(mode fs.FileMode) bool {
	return mode.IsRegular() || mode&fs.ModeSymlink != 0
}
