// Package metrics holds the small numeric helpers shared by the statistics
// engine and the task aggregations: sums, safe division and fixed-precision
// rounding.
package metrics

import "math"

// Sum adds up all values. Returns 0 for empty input.
func Sum(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum
}

// Mean computes the arithmetic mean of a float64 slice.
// Returns 0 for empty input. Values whose sum overflows are averaged by
// dividing each one first.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	n := float64(len(values))
	if sum := Sum(values); !math.IsInf(sum, 0) {
		return sum / n
	}
	mean := 0.0
	for _, v := range values {
		mean += v / n
	}
	return mean
}

// SafeDivide returns num/den, or 0 when den is 0.
func SafeDivide(num, den float64) float64 {
	if den == 0 {
		return 0.0
	}
	return num / den
}

// IsFinite reports whether v is neither NaN nor an infinity.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// noFraction is the magnitude from which a float64 has no fractional digits
// left to round.
const noFraction = 1e15

// RoundTo4 rounds to 4 decimal places. Used for pure statistics.
func RoundTo4(v float64) float64 {
	return roundTo(v, 10000)
}

// RoundTo2 rounds to 2 decimal places. Used for percentages and hours.
func RoundTo2(v float64) float64 {
	return roundTo(v, 100)
}

func roundTo(v, scale float64) float64 {
	if math.Abs(v) >= noFraction || !IsFinite(v) {
		return v
	}
	return math.Round(v*scale) / scale
}
