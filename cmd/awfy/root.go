package main

import (
	"fmt"

	"github.com/AnatoleLucet/awfy"
	"github.com/AnatoleLucet/awfy/internal/config"
	"github.com/AnatoleLucet/awfy/internal/logging"
	"github.com/spf13/cobra"
)

type globalFlags struct {
	logLevel   string
	logFile    string
	configPath string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "awfy",
		Short:         "Run the DeltaBlue and Richards benchmarks",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "also write JSON logs to this file")
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to a YAML config file")

	root.AddCommand(newRunCmd(flags), newListCmd())
	return root
}

// setup loads the configuration and builds the logger. Flags win over the
// config file and environment.
func (f *globalFlags) setup(cmd *cobra.Command) (config.Config, *logging.Logger, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, nil, err
	}

	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	if f.logFile != "" {
		cfg.LogFile = f.logFile
	}

	logger, err := logging.New(logging.Config{
		Level:  cfg.LogLevel,
		File:   cfg.LogFile,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return cfg, nil, err
	}
	return cfg, logger, nil
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available benchmarks",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range awfy.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
