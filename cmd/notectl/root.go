package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"smart-notes/pkg/log"
)

var verbose bool

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notectl",
		Short: "Offline tools for smart-notes",
		Long: `notectl runs the note analysis, date resolution and countdown logic
of the smart-notes service from the command line.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(
		newAnalyzeCmd(),
		newResolveDateCmd(),
		newCountdownCmd(),
		newCalendarAuthCmd(),
	)
	return cmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger() log.Logger {
	level := "warn"
	if verbose {
		level = "debug"
	}
	return log.Init(log.ZapConfig{Level: level, Mode: "debug", Encoding: "console"})
}
