package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spboyer/taskpulse/internal/reporting"
	"github.com/spboyer/taskpulse/internal/statistics"
	"github.com/spboyer/taskpulse/internal/tasks"
)

// demoDurations and demoTasks are the fixed inputs of the demo command.
var (
	demoDurations = []float64{4, 8, 6, 5, 3, 7, 8, 9, 2, 5, 6, 7}

	demoTasks = []tasks.Task{
		{Status: "COMPLETED", Hours: 5},
		{Status: "COMPLETED", Hours: 3},
		{Status: "IN_PROGRESS", Hours: 2},
		{Status: "COMPLETED", Hours: 4},
		{Status: "TODO", Hours: 0},
		{Status: "COMPLETED", Hours: 6},
		{Status: "IN_PROGRESS", Hours: 1},
		{Status: "COMPLETED", Hours: 5},
	}

	demoTeamA = tasks.Velocity{TasksPerHour: 0.22}
	demoTeamB = tasks.Velocity{TasksPerHour: 0.15}
)

func newDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print statistics for built-in sample data",
		Long: `Run every analysis on a fixed set of task durations and task records.

Useful as a self-test: the output is always the same.`,
		Args: cobra.NoArgs,
		RunE: demoCommandE,
	}
}

func demoCommandE(cmd *cobra.Command, _ []string) error {
	cfg, err := loadProjectConfig()
	if err != nil {
		return err
	}

	report, err := buildDemoReport(cfg.Compare.FirstLabel, cfg.Compare.SecondLabel)
	if err != nil {
		return err
	}
	return render(cmd, cfg, report)
}

func buildDemoReport(firstLabel, secondLabel string) (*reporting.Report, error) {
	engine := statistics.NewEngine()
	if err := engine.Load(demoDurations); err != nil {
		return nil, fmt.Errorf("loading demo durations: %w", err)
	}
	summary := engine.Summary()

	dist := tasks.AnalyzeDistribution(demoTasks)
	vel := tasks.AnalyzeVelocity(demoTasks)

	return &reporting.Report{
		Title:        "taskpulse demo",
		Summary:      &summary,
		Distribution: &dist,
		Velocity:     &vel,
		Comparison: &reporting.Comparison{
			FirstLabel:  firstLabel,
			SecondLabel: secondLabel,
			Comparison:  tasks.CompareTeams(demoTeamA, demoTeamB),
		},
	}, nil
}
