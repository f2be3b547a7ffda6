package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/prittamravi/clines/internal/core"
	"github.com/prittamravi/clines/internal/report"
	"github.com/prittamravi/clines/internal/scan"
	"github.com/prittamravi/clines/internal/size"
)

type countFlags struct {
	dryRun bool
	record bool
	json   bool
}

func newCountCmd(globals *globalFlags) *cobra.Command {
	var flags countFlags
	cmd := &cobra.Command{
		Use:   "clines [rootDir]",
		Short: "Count effective lines of code and update the README report",
		Long: "clines walks rootDir (default: the current directory), counts non-blank, non-comment lines per file,\n" +
			"and writes a size label and per-extension table between the LINE_COUNT placeholders of README.md.\n\n" +
			"A rootDir that shares a subcommand's name (init, watch, history, serve, version) is read as that\n" +
			"subcommand; pass it as a path instead, e.g. 'clines ./init'.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(cmd.Context(), cmd.OutOrStdout(), globals, flags, rootArg(args))
		},
	}
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Show the README diff instead of writing it")
	cmd.Flags().BoolVar(&flags.record, "record", false, "Append this run to the history database")
	cmd.Flags().BoolVar(&flags.json, "json", false, "Print the scan result as JSON")
	return cmd
}

type countJSON struct {
	*scan.Result
	Category string `json:"category"`
	Readme   string `json:"readme"`
	RunID    string `json:"run_id,omitempty"`
}

func runCount(ctx context.Context, w io.Writer, globals *globalFlags, flags countFlags, root string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	svc, cleanup, err := openService(flags.record, false)
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := svc.Run(ctx, core.RunOptions{
		Root:       root,
		ConfigPath: globals.configPath,
		ReadmePath: globals.readmePath,
		Variant:    globals.variant(),
		DryRun:     flags.dryRun,
		Record:     flags.record,
	})
	if err != nil {
		return err
	}

	if flags.json {
		payload := countJSON{Result: out.Result, Category: out.Category.String(), Readme: out.Readme.Action.String()}
		if out.Run != nil {
			payload.RunID = out.Run.ID
		}
		return writeJSONOutput(w, payload)
	}

	if flags.dryRun && out.Readme.Changed() {
		fmt.Fprintf(w, "--- %s\n+++ %s (planned)\n", out.Readme.Path, out.Readme.Path)
		fmt.Fprint(w, out.Readme.Diff())
	}
	printSummary(w, out.Result, out.Category)
	return nil
}

func printSummary(w io.Writer, result *scan.Result, category size.Category) {
	palette := newPalette(false)
	fmt.Fprintln(w, palette.color(category.Color(), report.Summary(result)))
}

func rootArg(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return "."
}
