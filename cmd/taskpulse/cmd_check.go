package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spboyer/taskpulse/internal/validation"
)

func newCheckCommand() *cobra.Command {
	var (
		samples bool
		column  string
	)

	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Validate task or sample files against their schema",
		Long: `Check that input files have the shape the analysis commands expect.

Task files must hold a list of records (or a "tasks" list) where each record
has a string status and numeric hours. With --samples, files must hold a list
of numbers (or a "samples" list); CSV sample files are read from --column,
as the stats command does.

Exits with status 1 when any file has problems.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadProjectConfig()
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("column") {
				column = cfg.Report.SampleColumn
			}

			kind := validation.KindTasks
			if samples {
				kind = validation.KindSamples
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, arg := range args {
				path := resolveDataPath(cfg.Paths.Data, arg)
				problems, err := validation.ValidateFile(path, kind, column)
				if err != nil {
					return err
				}
				if len(problems) == 0 {
					fmt.Fprintf(out, "✅ %s\n", path)
					continue
				}
				failed++
				fmt.Fprintf(out, "❌ %s\n", path)
				for _, p := range problems {
					fmt.Fprintf(out, "   - %s\n", p)
				}
			}

			if failed > 0 {
				return &CheckFailureError{
					Message: fmt.Sprintf("%d of %d files failed validation", failed, len(args)),
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&samples, "samples", false, "Validate duration sample files instead of task files")
	cmd.Flags().StringVar(&column, "column", "", "CSV column holding the samples (default from .taskpulse.yaml)")

	return cmd
}
