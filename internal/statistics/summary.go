package statistics

// Summary bundles every statistic of the current sample set.
type Summary struct {
	Count             int     `json:"count"`
	Mean              float64 `json:"mean"`
	Median            float64 `json:"median"`
	StandardDeviation float64 `json:"standard_deviation"`
	Variance          float64 `json:"variance"`
	Min               float64 `json:"min"`
	Max               float64 `json:"max"`
	Range             float64 `json:"range"`
	P25               float64 `json:"p25"`
	P50               float64 `json:"p50"`
	P75               float64 `json:"p75"`
}

// Summary computes all statistics of the current sample set. It is the zero
// Summary when no samples are loaded.
func (e *Engine) Summary() Summary {
	return Summary{
		Count:             e.Count(),
		Mean:              e.Mean(),
		Median:            e.Median(),
		StandardDeviation: e.StandardDeviation(),
		Variance:          e.Variance(),
		Min:               e.Min(),
		Max:               e.Max(),
		Range:             e.Range(),
		P25:               e.mustPercentile(25),
		P50:               e.mustPercentile(50),
		P75:               e.mustPercentile(75),
	}
}
