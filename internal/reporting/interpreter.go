package reporting

import (
	"fmt"
	"math"

	"github.com/spboyer/taskpulse/internal/metrics"
	"github.com/spboyer/taskpulse/internal/statistics"
	"github.com/spboyer/taskpulse/internal/tasks"
)

// InterpretSpread describes how consistent the samples are, using the
// coefficient of variation (standard deviation / mean).
func InterpretSpread(s statistics.Summary) string {
	if s.Count == 0 {
		return "No samples loaded."
	}
	if s.Mean == 0 {
		return "Spread is undefined for a zero mean."
	}
	cv := s.StandardDeviation / math.Abs(s.Mean) * 100
	switch {
	case cv < 15:
		return fmt.Sprintf("Consistent (CV %.0f%%)", cv)
	case cv < 40:
		return fmt.Sprintf("Moderately variable (CV %.0f%%)", cv)
	default:
		return fmt.Sprintf("Highly variable (CV %.0f%%)", cv)
	}
}

// InterpretCompletion explains what share of the tasks is completed.
func InterpretCompletion(d tasks.Distribution) string {
	if d.Total == 0 {
		return "No tasks to analyze."
	}
	share, ok := d.Lookup(tasks.StatusCompleted)
	if !ok {
		return fmt.Sprintf("None of %d tasks are completed.", d.Total)
	}
	return fmt.Sprintf("%d of %d tasks completed (%.2f%%).", share.Count, d.Total, share.Percentage)
}

// InterpretComparison states the comparison outcome in one sentence.
func InterpretComparison(c Comparison) string {
	if c.Winner == tasks.WinnerTie {
		return fmt.Sprintf("%s and %s complete tasks at the same rate.", c.FirstLabel, c.SecondLabel)
	}

	lead, trail := c.FirstLabel, c.SecondLabel
	base, pct := c.Second.TasksPerHour, c.PercentageDifference
	if c.Winner == tasks.WinnerSecond {
		lead, trail = trail, lead
		base = c.First.TasksPerHour
		pct = metrics.RoundTo2(metrics.SafeDivide(c.VelocityDifference, base) * 100)
	}
	if base == 0 {
		return fmt.Sprintf("%s completes tasks; %s has no completed tasks per logged hour.", lead, trail)
	}
	return fmt.Sprintf("%s completes %.2f%% more tasks per hour than %s.", lead, pct, trail)
}
