// Package loc counts effective lines: lines that are neither blank nor
// consumed by a comment. Matching is by substring and prefix only.
package loc

import (
	"path/filepath"
	"strings"

	"github.com/prittamravi/clines/internal/lang"
)

// CountLOC counts effective lines of content using the profile registered
// for filename's extension.
func CountLOC(filename string, content string) int {
	return Count(content, lang.For(filepath.Ext(filename)))
}

// Count returns the number of effective lines in content under profile p.
//
// A line containing the block start marker always enters block state and
// is never counted, even when it also closes the block.
func Count(content string, p lang.Profile) int {
	if content == "" {
		return 0
	}
	count := 0
	inBlock := false
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if p.BlockStart != "" && strings.Contains(trimmed, p.BlockStart) {
			inBlock = true
		}
		if inBlock {
			if p.BlockEnd != "" && strings.Contains(trimmed, p.BlockEnd) {
				inBlock = false
			}
			continue
		}
		if p.SingleLine != "" && strings.HasPrefix(trimmed, p.SingleLine) {
			continue
		}
		count++
	}
	return count
}
