package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/prittamravi/clines/internal/logging"
)

type Debouncer struct {
	mu       sync.Mutex
	timer    *time.Timer
	duration time.Duration
	fn       func()
}

func NewDebouncer(duration time.Duration, fn func()) *Debouncer {
	return &Debouncer{duration: duration, fn: fn}
}

func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, d.fn)
}

// Stop cancels a pending call.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
}

// Ignorer decides which paths produce no rescans: anything below a
// directory named in dirs, and the exact files listed (the README and
// config the callback itself rewrites).
type Ignorer struct {
	root  string
	dirs  map[string]struct{}
	files map[string]struct{}
}

func NewIgnorer(root string, dirs []string, files ...string) *Ignorer {
	ig := &Ignorer{
		root:  root,
		dirs:  make(map[string]struct{}, len(dirs)),
		files: make(map[string]struct{}, len(files)),
	}
	for _, d := range dirs {
		ig.dirs[d] = struct{}{}
	}
	for _, f := range files {
		if abs, err := filepath.Abs(f); err == nil {
			ig.files[abs] = struct{}{}
		}
	}
	return ig
}

func (ig *Ignorer) Ignored(path string) bool {
	if abs, err := filepath.Abs(path); err == nil {
		if _, ok := ig.files[abs]; ok {
			return true
		}
	}
	rel, err := filepath.Rel(ig.root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	if rel == "." {
		return false
	}
	for _, part := range strings.Split(rel, "/") {
		if _, ignored := ig.dirs[part]; ignored {
			return true
		}
	}
	return false
}

type OnChange func() error

// Watch calls onChange once per burst of filesystem events under root.
// Callbacks never overlap. It returns when ctx is done, or with the first
// callback or watcher error.
func Watch(ctx context.Context, root string, debounce time.Duration, ig *Ignorer, onChange OnChange) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := addDirsRecursive(watcher, root, ig); err != nil {
		return err
	}

	debouncedChanges := make(chan struct{}, 1)
	debouncer := NewDebouncer(debounce, func() {
		select {
		case debouncedChanges <- struct{}{}:
		default:
		}
	})
	defer debouncer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-debouncedChanges:
			if err := onChange(); err != nil {
				return fmt.Errorf("watch callback: %w", err)
			}
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ig.Ignored(event.Name) {
				continue
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := addDirsRecursive(watcher, event.Name, ig); err != nil {
						logging.L().Warn("watch new directory", zap.String("dir", event.Name), zap.Error(err))
					}
				}
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				logging.L().Debug("change detected", zap.String("path", event.Name), zap.Stringer("op", event.Op))
				debouncer.Trigger()
			}
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher error: %w", watchErr)
		}
	}
}

func addDirsRecursive(watcher *fsnotify.Watcher, root string, ig *Ignorer) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if ig.Ignored(path) {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watch add %s: %w", path, err)
		}
		return nil
	})
}
