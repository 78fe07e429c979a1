package statistics

import (
	"math"
	"math/rand"
	"slices"

	"github.com/spboyer/taskpulse/internal/metrics"
)

// ConfidenceInterval is a bootstrap confidence interval of the sample mean.
type ConfidenceInterval struct {
	Lower           float64 `json:"lower"`
	Upper           float64 `json:"upper"`
	Mean            float64 `json:"mean"`
	ConfidenceLevel float64 `json:"confidence_level"`
	NumBootstraps   int     `json:"num_bootstraps"`
}

// DefaultBootstrapIterations is the number of bootstrap resamples.
const DefaultBootstrapIterations = 10000

// MeanConfidenceInterval resamples the loaded samples with replacement and
// returns the percentile-method interval of the resampled means.
// confidenceLevel should be in (0, 1), e.g. 0.95. A negative seed uses a
// non-deterministic source. With fewer than 2 samples the interval collapses
// onto the mean.
func (e *Engine) MeanConfidenceInterval(confidenceLevel float64, seed int64) ConfidenceInterval {
	n := len(e.samples)
	m := e.Mean()
	if n < 2 {
		return ConfidenceInterval{
			Lower:           m,
			Upper:           m,
			Mean:            m,
			ConfidenceLevel: confidenceLevel,
		}
	}

	var rng *rand.Rand
	if seed >= 0 {
		rng = rand.New(rand.NewSource(seed))
	} else {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	iters := DefaultBootstrapIterations
	bootMeans := make([]float64, iters)
	resample := make([]float64, n)
	for i := range bootMeans {
		for j := range resample {
			resample[j] = e.samples[rng.Intn(n)]
		}
		bootMeans[i] = metrics.Mean(resample)
	}
	slices.Sort(bootMeans)

	alpha := 1.0 - confidenceLevel
	loIdx := int(math.Floor(alpha / 2.0 * float64(iters)))
	hiIdx := int(math.Floor((1.0 - alpha/2.0) * float64(iters)))
	loIdx = min(max(loIdx, 0), iters-1)
	hiIdx = min(max(hiIdx, 0), iters-1)

	return ConfidenceInterval{
		Lower:           metrics.RoundTo4(bootMeans[loIdx]),
		Upper:           metrics.RoundTo4(bootMeans[hiIdx]),
		Mean:            m,
		ConfidenceLevel: confidenceLevel,
		NumBootstraps:   iters,
	}
}
