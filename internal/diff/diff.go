// Package diff compares the per-extension breakdowns of two runs.
package diff

import (
	"sort"
)

// Change is the movement of one extension between two runs.
type Change struct {
	Extension string `json:"extension"`
	FromLines int    `json:"from_lines"`
	ToLines   int    `json:"to_lines"`
	FromFiles int    `json:"from_files"`
	ToFiles   int    `json:"to_files"`
}

func (c Change) LineDelta() int {
	return c.ToLines - c.FromLines
}

func (c Change) FileDelta() int {
	return c.ToFiles - c.FromFiles
}

type Result struct {
	Added    []Change `json:"added"`
	Modified []Change `json:"modified"`
	Removed  []Change `json:"removed"`
}

// Counts is one run's breakdown keyed by extension.
type Counts map[string]Count

type Count struct {
	Files int
	Lines int
}

// CompareExtensions classifies every extension present in either run.
// Each list is sorted by extension.
func CompareExtensions(from, to Counts) Result {
	result := Result{}
	for ext, now := range to {
		before, exists := from[ext]
		c := Change{Extension: ext, FromLines: before.Lines, ToLines: now.Lines, FromFiles: before.Files, ToFiles: now.Files}
		if !exists {
			result.Added = append(result.Added, c)
			continue
		}
		if before != now {
			result.Modified = append(result.Modified, c)
		}
	}
	for ext, before := range from {
		if _, exists := to[ext]; !exists {
			result.Removed = append(result.Removed, Change{Extension: ext, FromLines: before.Lines, FromFiles: before.Files})
		}
	}
	sortChanges(result.Added)
	sortChanges(result.Modified)
	sortChanges(result.Removed)
	return result
}

// Empty reports whether the two runs had identical breakdowns.
func (r Result) Empty() bool {
	return len(r.Added) == 0 && len(r.Modified) == 0 && len(r.Removed) == 0
}

func sortChanges(changes []Change) {
	sort.Slice(changes, func(i, j int) bool {
		return changes[i].Extension < changes[j].Extension
	})
}
