// Package readme rewrites the generated report section of a README.
package readme

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/prittamravi/clines/internal/config"
)

type Action int

const (
	// Missing means the README does not exist; nothing is written.
	Missing Action = iota
	Replaced
	Appended
)

func (a Action) String() string {
	switch a {
	case Replaced:
		return "replaced"
	case Appended:
		return "appended"
	default:
		return "missing"
	}
}

// Change describes an update to one README.
type Change struct {
	Path   string
	Action Action
	Before string
	After  string
}

// Changed reports whether the README content differs after the update.
func (c *Change) Changed() bool {
	return c.Action != Missing && c.Before != c.After
}

var section = regexp.MustCompile(
	regexp.QuoteMeta(config.PlaceholderStart) + `(?s:.*?)` + regexp.QuoteMeta(config.PlaceholderEnd),
)

// Apply returns content with block placed between the placeholders. The
// first start marker followed by an end marker delimits the section; when
// there is none, a new section is appended after a blank line.
func Apply(content, block string) (string, Action) {
	wrapped := config.PlaceholderStart + "\n" + strings.TrimRight(block, "\n") + "\n" + config.PlaceholderEnd
	if loc := section.FindStringIndex(content); loc != nil {
		return content[:loc[0]] + wrapped + content[loc[1]:], Replaced
	}
	return content + "\n\n" + wrapped, Appended
}

// Plan computes the change for the README at path without writing it.
func Plan(path, block string) (*Change, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Change{Path: path, Action: Missing}, nil
		}
		return nil, fmt.Errorf("read readme %s: %w", path, err)
	}
	before := string(data)
	after, action := Apply(before, block)
	return &Change{Path: path, Action: action, Before: before, After: after}, nil
}

// Update applies block to the README at path and writes it back when the
// content changed. A missing README is reported through Change.Action.
func Update(path, block string) (*Change, error) {
	change, err := Plan(path, block)
	if err != nil {
		return nil, err
	}
	if !change.Changed() {
		return change, nil
	}
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(change.After), mode); err != nil {
		return nil, fmt.Errorf("write readme %s: %w", path, err)
	}
	return change, nil
}

// Diff renders a line diff of the change, prefixing added lines with "+"
// and removed lines with "-". Unchanged lines are omitted.
func (c *Change) Diff() string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(c.Before, c.After)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out strings.Builder
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		default:
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			out.WriteString(prefix)
			out.WriteString(strings.TrimSuffix(line, "\n"))
			out.WriteString("\n")
		}
	}
	return out.String()
}
