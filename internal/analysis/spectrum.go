package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the magnitude of the first half of the spectrum
// of data with its mean removed.
func PowerSpectrum(data []float64) []float64 {
	n := len(data)
	if n < 2 {
		return nil
	}

	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(n)

	centred := make([]float64, n)
	for i, v := range data {
		centred[i] = v - mean
	}

	bins := fft.FFTReal(centred)
	ps := make([]float64, n/2+1)
	for i := range ps {
		ps[i] = cmplx.Abs(bins[i])
	}
	return ps
}

// DominantPeriod returns the period, in samples, of the strongest
// non-constant component of data. It reports false for series that are
// too short or flat.
func DominantPeriod(data []float64) (float64, bool) {
	ps := PowerSpectrum(data)
	if len(ps) < 2 {
		return 0, false
	}

	best, peak := 0, 1e-9
	for k := 1; k < len(ps); k++ {
		if ps[k] > peak*(1+1e-9) {
			best, peak = k, ps[k]
		}
	}
	if best == 0 {
		return 0, false
	}
	return float64(len(data)) / float64(best), true
}

// Ints converts an integer series for analysis.
func Ints(xs []int) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = float64(x)
	}
	return out
}

// Round is DominantPeriod rounded to the nearest whole sample.
func Round(period float64) int { return int(math.Round(period)) }
