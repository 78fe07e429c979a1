package tasks

import (
	"math"

	"github.com/spboyer/taskpulse/internal/metrics"
)

// Velocity summarizes completed work.
type Velocity struct {
	TaskCount       int     `json:"task_count"`
	TotalHours      float64 `json:"total_hours"`
	AvgHoursPerTask float64 `json:"avg_hours_per_task"`
	TasksPerHour    float64 `json:"tasks_per_hour"`
}

// AnalyzeVelocity measures the tasks whose status is exactly
// StatusCompleted; every other task is ignored. TasksPerHour is 0 when the
// completed tasks logged no hours.
func AnalyzeVelocity(tasks []Task) Velocity {
	var v Velocity
	hours := 0.0
	for _, t := range tasks {
		if t.Status != StatusCompleted {
			continue
		}
		v.TaskCount++
		if metrics.IsFinite(t.Hours) {
			hours += t.Hours
		}
	}

	v.TotalHours = metrics.RoundTo2(hours)
	v.AvgHoursPerTask = metrics.RoundTo2(metrics.SafeDivide(hours, float64(v.TaskCount)))
	v.TasksPerHour = metrics.RoundTo4(metrics.SafeDivide(float64(v.TaskCount), hours))
	return v
}

// Winner names the side of a comparison with the higher velocity.
type Winner string

const (
	WinnerFirst  Winner = "first"
	WinnerSecond Winner = "second"
	WinnerTie    Winner = "tie"
)

// Comparison contrasts two velocities.
type Comparison struct {
	First                Velocity `json:"first"`
	Second               Velocity `json:"second"`
	VelocityDifference   float64  `json:"velocity_difference"`
	Winner               Winner   `json:"winner"`
	PercentageDifference float64  `json:"percentage_difference"`
}

// CompareTeams compares the tasks-per-hour of a against b.
// VelocityDifference is the absolute difference; PercentageDifference is
// signed and relative to b, or 0 when b's rate is 0.
func CompareTeams(a, b Velocity) Comparison {
	diff := a.TasksPerHour - b.TasksPerHour

	winner := WinnerTie
	switch {
	case a.TasksPerHour > b.TasksPerHour:
		winner = WinnerFirst
	case a.TasksPerHour < b.TasksPerHour:
		winner = WinnerSecond
	}

	return Comparison{
		First:                a,
		Second:               b,
		VelocityDifference:   metrics.RoundTo4(math.Abs(diff)),
		Winner:               winner,
		PercentageDifference: metrics.RoundTo2(metrics.SafeDivide(diff, b.TasksPerHour) * 100),
	}
}
