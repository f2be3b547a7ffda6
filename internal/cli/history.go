package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/prittamravi/clines/internal/db"
	"github.com/prittamravi/clines/internal/diff"
)

func newHistoryCmd() *cobra.Command {
	var limit int
	var asJSON bool
	var noColor bool
	var breakdown bool
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if breakdown {
				return runBreakdown(cmd.OutOrStdout(), asJSON, noColor)
			}
			return runHistory(cmd.OutOrStdout(), limit, asJSON, noColor)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to print")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print runs as JSON")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable ANSI colors")
	cmd.Flags().BoolVar(&breakdown, "breakdown", false, "Compare the per-extension counts of the two newest runs")
	return cmd
}

func runHistory(w io.Writer, limit int, asJSON bool, noColor bool) error {
	database, err := openHistory()
	if err != nil {
		return err
	}
	if database == nil {
		if asJSON {
			return writeJSONOutput(w, []db.Run{})
		}
		fmt.Fprintln(w, "No runs recorded yet. Run 'clines --record' to record one.")
		return nil
	}
	defer database.Close()

	runs, err := database.ListRuns(limit)
	if err != nil {
		return err
	}
	if asJSON {
		return writeJSONOutput(w, runs)
	}
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet. Run 'clines --record' to record one.")
		return nil
	}

	p := newPalette(noColor)
	for i, run := range runs {
		delta := ""
		if i+1 < len(runs) {
			delta = fmt.Sprintf(" (%+d)", run.TotalLines-runs[i+1].TotalLines)
		}
		fmt.Fprintf(w, "[%s] %s  %s lines%s in %s files  %s  %s\n",
			p.bold(shortID(run.ID)),
			p.dim(when(run.CreatedAt)),
			humanize.Comma(int64(run.TotalLines)),
			delta,
			humanize.Comma(int64(run.TotalFiles)),
			run.Category,
			p.dim(run.Root),
		)
	}
	return nil
}

// runBreakdown prints how each extension moved between the previous and the
// latest recorded run.
func runBreakdown(w io.Writer, asJSON bool, noColor bool) error {
	database, err := openHistory()
	if err != nil {
		return err
	}
	if database == nil {
		fmt.Fprintln(w, "Need at least two recorded runs to compare.")
		return nil
	}
	defer database.Close()

	runs, err := database.ListRuns(2)
	if err != nil {
		return err
	}
	if len(runs) < 2 {
		fmt.Fprintln(w, "Need at least two recorded runs to compare.")
		return nil
	}
	latest, previous := runs[0], runs[1]
	to, err := extensionCounts(database, latest.ID)
	if err != nil {
		return err
	}
	from, err := extensionCounts(database, previous.ID)
	if err != nil {
		return err
	}
	result := diff.CompareExtensions(from, to)
	if asJSON {
		return writeJSONOutput(w, result)
	}

	p := newPalette(noColor)
	fmt.Fprintf(w, "Comparing %s -> %s\n", p.bold(shortID(previous.ID)), p.bold(shortID(latest.ID)))
	if result.Empty() {
		fmt.Fprintln(w, "No changes.")
		return nil
	}
	printChanges(w, p, "+", "green", result.Added)
	printChanges(w, p, "~", "yellow", result.Modified)
	printChanges(w, p, "-", "red", result.Removed)
	return nil
}

func printChanges(w io.Writer, p palette, marker, colorName string, changes []diff.Change) {
	for _, c := range changes {
		fmt.Fprintf(w, "%s %-10s lines %d -> %d (%+d)  files %d -> %d (%+d)\n",
			p.color(colorName, marker),
			c.Extension,
			c.FromLines, c.ToLines, c.LineDelta(),
			c.FromFiles, c.ToFiles, c.FileDelta(),
		)
	}
}

func extensionCounts(database *db.DB, runID string) (diff.Counts, error) {
	exts, err := database.GetRunExtensions(runID)
	if err != nil {
		return nil, err
	}
	counts := make(diff.Counts, len(exts))
	for _, e := range exts {
		counts[e.Extension] = diff.Count{Files: e.Files, Lines: e.Lines}
	}
	return counts, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func when(createdAt string) string {
	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return createdAt
	}
	return humanize.Time(t)
}
