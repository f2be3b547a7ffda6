package cli

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/prittamravi/clines/internal/config"
	"github.com/prittamravi/clines/internal/logging"
)

// globalFlags are shared by every command.
type globalFlags struct {
	configPath string
	readmePath string
	basic      bool
	verbose    bool
}

func (g *globalFlags) variant() config.Variant {
	if g.basic {
		return config.Basic
	}
	return config.Extended
}

func NewRootCmd() *cobra.Command {
	globals := &globalFlags{}
	cmd := newCountCmd(globals)
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logging.Init(globals.verbose)
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&globals.configPath, "config", config.ConfigFileName, "Path to the ignore configuration")
	flags.StringVar(&globals.readmePath, "readme", config.ReadmeFileName, "Path to the README to update")
	flags.BoolVar(&globals.basic, "basic", false, "Basic variant: no default config, colored label, no table")
	flags.BoolVarP(&globals.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newInitCmd(globals))
	cmd.AddCommand(newWatchCmd(globals))
	cmd.AddCommand(newHistoryCmd())
	cmd.AddCommand(newServeCmd(globals))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func Execute() {
	defer logging.Sync()
	if err := NewRootCmd().Execute(); err != nil {
		logging.L().Error("clines failed", zap.Error(err))
		logging.Sync()
		os.Exit(1)
	}
}
