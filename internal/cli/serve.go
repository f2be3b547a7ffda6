package cli

import (
	"github.com/spf13/cobra"

	"github.com/prittamravi/clines/internal/config"
	"github.com/prittamravi/clines/internal/ui"
)

func newServeCmd(globals *globalFlags) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve [rootDir]",
		Short: "Serve a dashboard of the current counts and recorded history",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(globals, rootArg(args), addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", config.DefaultServeAddr, "Listen address")
	return cmd
}

func runServe(globals *globalFlags, root, addr string) error {
	svc, cleanup, err := openService(false, true)
	if err != nil {
		return err
	}
	defer cleanup()

	database, err := openHistory()
	if err != nil {
		return err
	}
	if database != nil {
		defer database.Close()
		svc.DB = database
	}

	server, err := ui.NewServer(svc, ui.Options{
		Root:       root,
		ConfigPath: globals.configPath,
		Variant:    globals.variant(),
	})
	if err != nil {
		return err
	}
	return server.ListenAndServe(addr)
}
