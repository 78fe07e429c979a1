package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/spboyer/taskpulse/internal/dataset"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	return newRootCommandWith(dataset.FileLoader{})
}

func newRootCommandWith(loader datasetLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "taskpulse",
		Short: "taskpulse - descriptive statistics and velocity for task data",
		Long: `taskpulse computes descriptive statistics over task durations and
productivity metrics over task status exports.

It reads CSV, JSON, YAML and plain-text files, and prints summaries,
status distributions, velocity figures and team comparisons.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentFlags().StringP("format", "f", "", "Output format: table, json, markdown or html (default from .taskpulse.yaml)")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newDemoCommand())
	cmd.AddCommand(newStatsCommand(loader))
	cmd.AddCommand(newTasksCommand(loader))
	cmd.AddCommand(newCompareCommand(loader))
	cmd.AddCommand(newCheckCommand())
	cmd.AddCommand(newInitCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
