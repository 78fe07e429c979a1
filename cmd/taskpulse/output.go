package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/spboyer/taskpulse/internal/projectconfig"
	"github.com/spboyer/taskpulse/internal/reporting"
)

// loadProjectConfig loads .taskpulse.yaml starting at the working directory.
func loadProjectConfig() (*projectconfig.ProjectConfig, error) {
	cfg, err := projectconfig.Load(".")
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// outputSettings resolves format and color from flags, falling back to the
// project configuration. Color is only used when writing to a terminal.
func outputSettings(cmd *cobra.Command, cfg *projectconfig.ProjectConfig) (reporting.Format, reporting.Options, error) {
	formatName := cfg.Report.Format
	if f, _ := cmd.Flags().GetString("format"); f != "" {
		formatName = f
	}
	format, err := reporting.ParseFormat(formatName)
	if err != nil {
		return "", reporting.Options{}, err
	}

	color := cfg.Report.Color == nil || *cfg.Report.Color
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		color = false
	}
	if f, ok := cmd.OutOrStdout().(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		color = false
	}

	return format, reporting.Options{Color: color}, nil
}

func render(cmd *cobra.Command, cfg *projectconfig.ProjectConfig, r *reporting.Report) error {
	format, opts, err := outputSettings(cmd, cfg)
	if err != nil {
		return err
	}
	if err := reporting.Render(cmd.OutOrStdout(), r, format, opts); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
