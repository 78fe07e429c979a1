package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/spboyer/taskpulse/internal/reporting"
	"github.com/spboyer/taskpulse/internal/tasks"
)

func newCompareCommand(loader datasetLoader) *cobra.Command {
	var firstLabel, secondLabel string

	cmd := &cobra.Command{
		Use:   "compare <first-tasks-file> <second-tasks-file>",
		Short: "Compare the velocity of two teams",
		Long: `Load two task exports, compute each team's velocity and report which team
completes more tasks per hour, by how much, and the relative difference
against the second team.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadProjectConfig()
			if err != nil {
				return err
			}
			if firstLabel == "" {
				firstLabel = cfg.Compare.FirstLabel
			}
			if secondLabel == "" {
				secondLabel = cfg.Compare.SecondLabel
			}

			paths := [2]string{
				resolveDataPath(cfg.Paths.Data, args[0]),
				resolveDataPath(cfg.Paths.Data, args[1]),
			}
			velocities, err := loadVelocities(cmd.Context(), loader, paths)
			if err != nil {
				return err
			}

			report := &reporting.Report{
				Title: fmt.Sprintf("%s vs %s", firstLabel, secondLabel),
				Comparison: &reporting.Comparison{
					FirstLabel:  firstLabel,
					SecondLabel: secondLabel,
					Comparison:  tasks.CompareTeams(velocities[0], velocities[1]),
				},
			}
			return render(cmd, cfg, report)
		},
	}

	cmd.Flags().StringVar(&firstLabel, "first-label", "", "Label for the first team (default from .taskpulse.yaml)")
	cmd.Flags().StringVar(&secondLabel, "second-label", "", "Label for the second team (default from .taskpulse.yaml)")

	return cmd
}

// loadVelocities loads both task files concurrently and computes one
// velocity per file, in argument order.
func loadVelocities(ctx context.Context, loader datasetLoader, paths [2]string) ([2]tasks.Velocity, error) {
	var velocities [2]tasks.Velocity

	g, _ := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			records, err := loader.LoadTasks(path)
			if err != nil {
				return fmt.Errorf("failed to load %s: %w", path, err)
			}
			velocities[i] = tasks.AnalyzeVelocity(records)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return [2]tasks.Velocity{}, err
	}
	return velocities, nil
}
