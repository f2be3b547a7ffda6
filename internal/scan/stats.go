package scan

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/prittamravi/clines/internal/config"
)

// ExtensionStat accumulates the files and effective lines seen for one
// extension during a walk.
type ExtensionStat struct {
	Extension string `json:"extension"`
	Files     int    `json:"files"`
	Lines     int    `json:"lines"`
}

// Result is the outcome of one walk. It is never shared between walks.
type Result struct {
	Root       string                    `json:"root"`
	TotalLines int                       `json:"total_lines"`
	TotalFiles int                       `json:"total_files"`
	Extensions map[string]*ExtensionStat `json:"extensions"`
}

func newResult(root string) *Result {
	return &Result{Root: root, Extensions: make(map[string]*ExtensionStat)}
}

// Record attributes one file with lines effective lines to ext, creating
// the bucket on first sight.
func (r *Result) Record(ext string, lines int) {
	stat, ok := r.Extensions[ext]
	if !ok {
		stat = &ExtensionStat{Extension: ext}
		r.Extensions[ext] = stat
	}
	stat.Files++
	stat.Lines += lines
	r.TotalFiles++
	r.TotalLines += lines
}

// Sorted returns the buckets by descending line count, ties broken by
// extension so the order is stable.
func (r *Result) Sorted() []ExtensionStat {
	out := make([]ExtensionStat, 0, len(r.Extensions))
	for _, stat := range r.Extensions {
		out = append(out, *stat)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Lines != out[j].Lines {
			return out[i].Lines > out[j].Lines
		}
		return out[i].Extension < out[j].Extension
	})
	return out
}

// Ext returns the bucket key for a filename: its suffix including the dot,
// or config.NoExtension when there is none. A leading dot alone (".env")
// does not make a suffix.
func Ext(name string) string {
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	if ext == "" || ext == base || strings.TrimLeft(base, ".") == strings.TrimPrefix(ext, ".") {
		return config.NoExtension
	}
	return ext
}
