package cli

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/prittamravi/clines/internal/config"
	"github.com/prittamravi/clines/internal/core"
	"github.com/prittamravi/clines/internal/watch"
)

func newWatchCmd(globals *globalFlags) *cobra.Command {
	var debounce time.Duration
	var record bool
	cmd := &cobra.Command{
		Use:   "watch [rootDir]",
		Short: "Recount and refresh the README whenever files change",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd.OutOrStdout(), globals, rootArg(args), debounce, record)
		},
	}
	cmd.Flags().DurationVar(&debounce, "debounce", config.DefaultWatchDebounce, "Quiet period before recounting")
	cmd.Flags().BoolVar(&record, "record", false, "Append every recount to the history database")
	return cmd
}

func runWatch(w io.Writer, globals *globalFlags, root string, debounce time.Duration, record bool) error {
	svc, cleanup, err := openService(record, true)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := core.RunOptions{
		Root:       root,
		ConfigPath: globals.configPath,
		ReadmePath: globals.readmePath,
		Variant:    globals.variant(),
		Record:     record,
	}
	recount := func() error {
		out, err := svc.Run(ctx, opts)
		if err != nil {
			return err
		}
		printSummary(w, out.Result, out.Category)
		return nil
	}
	if err := recount(); err != nil {
		return err
	}

	cfg := svc.LoadConfig(globals.configPath, globals.variant())
	ignorer := watchIgnorer(root, cfg, globals)

	fmt.Fprintf(w, "Watching %s (debounce %s). Press Ctrl+C to stop.\n", root, debounce)
	return watch.Watch(ctx, root, debounce, ignorer, recount)
}

// watchIgnorer skips the configured directories plus the state directory,
// whose history writes would otherwise trigger another recount.
func watchIgnorer(root string, cfg config.Config, globals *globalFlags) *watch.Ignorer {
	dirs := make([]string, 0, len(cfg.IgnoreDirs)+1)
	dirs = append(dirs, cfg.IgnoreDirs...)
	dirs = append(dirs, config.StateDirName)
	return watch.NewIgnorer(root, dirs, globals.readmePath, globals.configPath)
}
