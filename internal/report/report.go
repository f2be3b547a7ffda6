// Package report renders scan results as the README report block and as a
// console summary.
package report

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/prittamravi/clines/internal/config"
	"github.com/prittamravi/clines/internal/scan"
	"github.com/prittamravi/clines/internal/size"
)

// Block returns the markdown placed between the README placeholders.
func Block(result *scan.Result, variant config.Variant) string {
	category := size.Label(result.TotalLines)

	var b strings.Builder
	fmt.Fprintf(&b, "Lines of Code: **%d**  \n", result.TotalLines)
	if variant == config.Basic {
		fmt.Fprintf(&b, "Project Size: **<span style=\"color: %s;\">%s</span>**\n", category.Color(), category.Title())
		return b.String()
	}
	fmt.Fprintf(&b, "Project Size: **%s**\n", category.Title())
	b.WriteString("\n")
	b.WriteString(Table(result))
	return b.String()
}

// Table renders the per-extension breakdown with a totals row.
func Table(result *scan.Result) string {
	var b strings.Builder
	b.WriteString("| Extension | Files | Effective LOC |\n")
	b.WriteString("| --- | ---: | ---: |\n")
	for _, stat := range result.Sorted() {
		fmt.Fprintf(&b, "| %s | %d | %d |\n", stat.Extension, stat.Files, stat.Lines)
	}
	fmt.Fprintf(&b, "| **Total** | **%d** | **%d** |\n", result.TotalFiles, result.TotalLines)
	return b.String()
}

// Summary is the one-line console message printed after a scan.
func Summary(result *scan.Result) string {
	category := size.Label(result.TotalLines)
	return fmt.Sprintf("%s effective lines in %s files (%s)",
		humanize.Comma(int64(result.TotalLines)),
		humanize.Comma(int64(result.TotalFiles)),
		category.Title(),
	)
}
