// Package cmd provides the root command and CLI setup for boggle.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	dictionaryFlagName = "dictionary"
	logLevelFlagName   = "log-level"
	verboseFlagName    = "verbose"
	logFileFlagName    = "log-file"
)

const rootLongDescription = `Boggle generates letter grids, finds every dictionary word on them,
judges traced words and suggests hints ranked by word frequency.

Boards are written as rows separated by '/', for example CATS/AREA/TONE/SEAT.
A Q on a board always stands for the QU tile.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "boggle",
		Short:         "Boggle board generator, solver and hint engine",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(); err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			configureLogger(cmd.ErrOrStderr())
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	configureRootFlags(cmd)

	cmd.AddCommand(
		newServeCmd(),
		newGenerateCmd(),
		newSolveCmd(),
		newCheckCmd(),
		newHintCmd(),
		newFreqCmd(),
	)
	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String(dictionaryFlagName, "", "word list file, one word per line (default: built-in list)")
	bindFlagToConfig(flags.Lookup(dictionaryFlagName), dictionaryKey)

	flags.String(logLevelFlagName, defaultLogLevel, "log level (debug, info, warn, error)")
	bindFlagToConfig(flags.Lookup(logLevelFlagName), logLevelKey)

	flags.BoolP(verboseFlagName, "v", false, "debug logging")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)

	flags.String(logFileFlagName, "", "also write JSON logs to this rotated file")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
