package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/spboyer/taskpulse/internal/reporting"
	"github.com/spboyer/taskpulse/internal/tasks"
)

func newTasksCommand(loader datasetLoader) *cobra.Command {
	var velocityOnly bool

	cmd := &cobra.Command{
		Use:   "tasks <tasks-file>",
		Short: "Show the status distribution and velocity of a task export",
		Long: `Load task records with a status and hours spent, and print how tasks are
spread across statuses together with the team's velocity (completed tasks
per hour worked).

Records without a status count as UNKNOWN; missing or unreadable hours
count as 0. Only records with status COMPLETED contribute to velocity.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadProjectConfig()
			if err != nil {
				return err
			}

			path := resolveDataPath(cfg.Paths.Data, args[0])
			records, err := loader.LoadTasks(path)
			if err != nil {
				return fmt.Errorf("failed to load %s: %w", path, err)
			}
			slog.Debug("Analyzing tasks", "path", path, "count", len(records))

			return render(cmd, cfg, buildTasksReport(path, records, velocityOnly))
		},
	}

	cmd.Flags().BoolVar(&velocityOnly, "velocity-only", false, "Skip the status distribution")

	return cmd
}

func buildTasksReport(path string, records []tasks.Task, velocityOnly bool) *reporting.Report {
	report := &reporting.Report{
		Title: fmt.Sprintf("Task report: %s", path),
	}
	if !velocityOnly {
		dist := tasks.AnalyzeDistribution(records)
		report.Distribution = &dist
	}
	vel := tasks.AnalyzeVelocity(records)
	report.Velocity = &vel
	return report
}
