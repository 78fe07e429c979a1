package main

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/spboyer/taskpulse/internal/reporting"
	"github.com/spboyer/taskpulse/internal/statistics"
)

// summaryPercentiles are always part of statistics.Summary.
var summaryPercentiles = []float64{25, 50, 75}

func newStatsCommand(loader datasetLoader) *cobra.Command {
	var (
		column      string
		percentiles []float64
		bootstrap   bool
		confidence  float64
		seed        int64
	)

	cmd := &cobra.Command{
		Use:   "stats <durations-file>",
		Short: "Describe a set of task durations",
		Long: `Load numeric samples (typically task durations in hours) and print
count, mean, median, population standard deviation, variance, min, max,
range and interpolated percentiles.

Values that are not numbers are skipped. CSV files are read from the
--column column; JSON and YAML files hold a list or a "samples" list.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadProjectConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("column") {
				column = cfg.Report.SampleColumn
			}
			if !cmd.Flags().Changed("percentile") {
				percentiles = cfg.Report.Percentiles
			}
			if !cmd.Flags().Changed("bootstrap") && cfg.Report.Bootstrap != nil {
				bootstrap = *cfg.Report.Bootstrap
			}
			if !cmd.Flags().Changed("confidence") {
				confidence = cfg.Report.ConfidenceLevel
			}

			path := resolveDataPath(cfg.Paths.Data, args[0])
			values, err := loader.LoadSamples(path, column)
			if err != nil {
				return fmt.Errorf("failed to load %s: %w", path, err)
			}

			opts := statsOptions{percentiles: percentiles, seed: seed}
			if bootstrap {
				if confidence <= 0 || confidence >= 1 {
					return fmt.Errorf("confidence level %v must be between 0 and 1", confidence)
				}
				opts.confidence = confidence
			}

			report, err := buildStatsReport(path, values, opts)
			if err != nil {
				return err
			}
			return render(cmd, cfg, report)
		},
	}

	cmd.Flags().StringVar(&column, "column", "", "CSV column holding the samples (default from .taskpulse.yaml)")
	cmd.Flags().Float64SliceVarP(&percentiles, "percentile", "p", nil, "Extra percentiles to report (repeatable, 0-100)")
	cmd.Flags().BoolVar(&bootstrap, "bootstrap", false, "Add a bootstrap confidence interval of the mean")
	cmd.Flags().Float64Var(&confidence, "confidence", 0, "Confidence level for --bootstrap, e.g. 0.95")
	cmd.Flags().Int64Var(&seed, "seed", -1, "Random seed for --bootstrap (negative for a random seed)")

	return cmd
}

// statsOptions select the optional sections of a stats report. A zero
// confidence level skips the bootstrap interval.
type statsOptions struct {
	percentiles []float64
	confidence  float64
	seed        int64
}

func buildStatsReport(path string, values []any, opts statsOptions) (*reporting.Report, error) {
	engine := statistics.NewEngine()
	if err := engine.Load(values); err != nil {
		return nil, fmt.Errorf("loading samples from %s: %w", path, err)
	}
	slog.Debug("Computing statistics", "path", path, "samples", engine.Count())

	summary := engine.Summary()
	report := &reporting.Report{
		Title:   fmt.Sprintf("Duration statistics: %s", path),
		Summary: &summary,
	}

	for _, p := range opts.percentiles {
		if slices.Contains(summaryPercentiles, p) {
			continue
		}
		v, err := engine.Percentile(p)
		if err != nil {
			return nil, fmt.Errorf("percentile %v: %w", p, err)
		}
		report.Percentiles = append(report.Percentiles, reporting.PercentileValue{Percentile: p, Value: v})
	}

	if opts.confidence > 0 {
		ci := engine.MeanConfidenceInterval(opts.confidence, opts.seed)
		report.Confidence = &ci
	}
	return report, nil
}
