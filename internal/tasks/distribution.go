package tasks

import "github.com/spboyer/taskpulse/internal/metrics"

// StatusShare is the count and share of one status.
type StatusShare struct {
	Status     string  `json:"status"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Distribution breaks a task list down by status. Statuses appear in the
// order they were first seen.
type Distribution struct {
	Total    int           `json:"total"`
	Statuses []StatusShare `json:"statuses"`
}

// Lookup returns the share for status.
func (d Distribution) Lookup(status string) (StatusShare, bool) {
	for _, s := range d.Statuses {
		if s.Status == status {
			return s, true
		}
	}
	return StatusShare{}, false
}

// AnalyzeDistribution counts tasks per status. Percentages are rounded to 2
// decimals. An empty list yields a zero total and no statuses.
func AnalyzeDistribution(tasks []Task) Distribution {
	dist := Distribution{
		Total:    len(tasks),
		Statuses: []StatusShare{},
	}
	if len(tasks) == 0 {
		return dist
	}

	index := make(map[string]int)
	for _, t := range tasks {
		status := t.status()
		i, seen := index[status]
		if !seen {
			i = len(dist.Statuses)
			index[status] = i
			dist.Statuses = append(dist.Statuses, StatusShare{Status: status})
		}
		dist.Statuses[i].Count++
	}

	for i := range dist.Statuses {
		share := float64(dist.Statuses[i].Count) / float64(dist.Total) * 100
		dist.Statuses[i].Percentage = metrics.RoundTo2(share)
	}
	return dist
}
