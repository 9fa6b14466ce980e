package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/VantageDataChat/logogrid"
)

var rootCmd = &cobra.Command{
	Use:           "logogrid",
	Short:         "Lay out a folder of logos on a PowerPoint slide",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-log", false, "Write logs as JSON lines")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads --config when given, otherwise starts from the defaults.
func loadConfig(cmd *cobra.Command) (logogrid.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return logogrid.DefaultConfig(), nil
	}
	return logogrid.LoadConfig(path)
}

// newLogger builds the logger from cfg.Log and the persistent log flags.
func newLogger(cmd *cobra.Command, cfg logogrid.Config) (zerolog.Logger, error) {
	level := cfg.Log.Level
	if cmd.Flags().Changed("log-level") {
		level, _ = cmd.Flags().GetString("log-level")
	}
	console := cfg.Log.Console
	if jsonLog, _ := cmd.Flags().GetBool("json-log"); jsonLog {
		console = false
	}
	return logogrid.NewLogger(os.Stderr, level, console)
}
