package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/istring/core/config"
	"github.com/msto63/istring/core/log"
)

var (
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "istr",
	Short: "Immutable string operations from the command line",
	Long: `istr exposes the istring library on the command line.

Every subcommand reads a string argument, applies one library operation,
and prints the result. Operation defaults (trim mask, pad string, split
limit, case sensitivity) come from an optional istring.toml or
istring.yaml configuration file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}

		logger = cfg.Logger()
		if verbose {
			logger.SetLevel(log.LevelDebug)
		}
		return nil
	},
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil && logger != nil {
		logger.ErrorWithErr("command failed", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: discovered istring.toml/yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
