// Package statistics computes descriptive statistics over a loaded set of
// numeric samples, typically task durations in hours.
//
// Every statistic is rounded to 4 decimal places and every statistic over an
// empty sample set is 0. An Engine is not safe for concurrent use; create one
// per analysis.
package statistics

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"reflect"
	"slices"

	"github.com/spboyer/taskpulse/internal/metrics"
)

// ErrInvalidInput is returned when Load receives something that is not a
// sequence, or when Percentile receives a value outside [0, 100].
var ErrInvalidInput = errors.New("invalid input")

// Engine holds the current sample set.
type Engine struct {
	samples []float64
}

// NewEngine returns an Engine with an empty sample set.
func NewEngine() *Engine {
	return &Engine{}
}

// Load replaces the sample set with the numeric elements of values, which must
// be a slice or an array. Elements that are not numbers, or are NaN or
// infinite, are dropped.
func (e *Engine) Load(values any) error {
	rv := reflect.ValueOf(values)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return fmt.Errorf("%w: load expects a slice or array, got %T", ErrInvalidInput, values)
	}

	samples := make([]float64, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		if v, ok := toFloat(rv.Index(i)); ok {
			samples = append(samples, v)
		}
	}

	slog.Debug("Loaded samples", "kept", len(samples), "dropped", rv.Len()-len(samples))
	e.samples = samples
	return nil
}

// LoadFloats is Load for an already typed slice.
func (e *Engine) LoadFloats(values []float64) {
	// a []float64 is always a sequence
	_ = e.Load(values)
}

func toFloat(v reflect.Value) (float64, bool) {
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return 0, false
		}
		v = v.Elem()
	}

	var f float64
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		f = float64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		f = float64(v.Uint())
	case reflect.Float32, reflect.Float64:
		f = v.Float()
	default:
		return 0, false
	}
	return f, metrics.IsFinite(f)
}

// Count returns the number of loaded samples.
func (e *Engine) Count() int {
	return len(e.samples)
}

// Values returns a copy of the loaded samples in load order.
func (e *Engine) Values() []float64 {
	return slices.Clone(e.samples)
}

// Mean returns the arithmetic mean.
func (e *Engine) Mean() float64 {
	if len(e.samples) == 0 {
		return 0
	}
	return metrics.RoundTo4(metrics.Mean(e.samples))
}

// Median returns the middle value of the sorted samples. For an even count it
// is the rounded average of the two middle values; for an odd count it is the
// middle sample itself.
func (e *Engine) Median() float64 {
	n := len(e.samples)
	if n == 0 {
		return 0
	}
	sorted := e.sorted()
	mid := n / 2
	if n%2 == 0 {
		return metrics.RoundTo4(sorted[mid-1]/2 + sorted[mid]/2)
	}
	return sorted[mid]
}

// StandardDeviation returns the population standard deviation (divides by N),
// measured from the rounded Mean. Deviations are scaled by the largest one
// so that squaring cannot overflow.
func (e *Engine) StandardDeviation() float64 {
	n := len(e.samples)
	if n == 0 {
		return 0
	}
	m := e.Mean()
	scale := 0.0
	for _, v := range e.samples {
		scale = max(scale, math.Abs(v-m))
	}
	if scale == 0 {
		return 0
	}
	sumSq := 0.0
	for _, v := range e.samples {
		d := (v - m) / scale
		sumSq += d * d
	}
	return metrics.RoundTo4(scale * math.Sqrt(sumSq/float64(n)))
}

// Variance returns the square of the rounded StandardDeviation, so that
// Variance() == StandardDeviation()^2 after rounding. It can differ from the
// textbook population variance in the fourth decimal.
func (e *Engine) Variance() float64 {
	sd := e.StandardDeviation()
	return metrics.RoundTo4(sd * sd)
}

// Min returns the smallest sample.
func (e *Engine) Min() float64 {
	if len(e.samples) == 0 {
		return 0
	}
	return slices.Min(e.samples)
}

// Max returns the largest sample.
func (e *Engine) Max() float64 {
	if len(e.samples) == 0 {
		return 0
	}
	return slices.Max(e.samples)
}

// Range returns Max() - Min(), rounded.
func (e *Engine) Range() float64 {
	return metrics.RoundTo4(e.Max() - e.Min())
}

// Percentile returns the p-th percentile (0 <= p <= 100) using linear
// interpolation between the closest ranks. An empty sample set yields 0 for
// any p, including out-of-range values.
func (e *Engine) Percentile(p float64) (float64, error) {
	n := len(e.samples)
	if n == 0 {
		return 0, nil
	}
	if !(p >= 0 && p <= 100) {
		return 0, fmt.Errorf("%w: percentile must be between 0 and 100, got %v", ErrInvalidInput, p)
	}

	sorted := e.sorted()
	rank := (p / 100.0) * float64(n-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower], nil
	}

	weight := rank - float64(lower)
	return metrics.RoundTo4(sorted[lower]*(1-weight) + sorted[upper]*weight), nil
}

// mustPercentile is Percentile for p known to be in range.
func (e *Engine) mustPercentile(p float64) float64 {
	v, err := e.Percentile(p)
	if err != nil {
		panic(err)
	}
	return v
}

func (e *Engine) sorted() []float64 {
	sorted := slices.Clone(e.samples)
	slices.Sort(sorted)
	return sorted
}
