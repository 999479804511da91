package signal

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// nanMean is the mean of the finite values in xs. ok is false when xs
// holds no finite value at all.
func nanMean(xs []float64) (float64, bool) {
	finite := make([]float64, 0, len(xs))
	for _, v := range xs {
		if !math.IsNaN(v) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return 0, false
	}
	return stat.Mean(finite, nil), true
}

// NormalizeByMean rescales samples to percent of their mean, skipping
// NaN when computing it. Series whose mean is zero or undefined come
// back as an unchanged copy with ok=false so callers can warn.
func NormalizeByMean(samples []float64) ([]float64, bool) {
	out := append([]float64(nil), samples...)
	m, ok := nanMean(out)
	if !ok || m == 0 {
		return out, false
	}
	floats.Scale(100/m, out)
	return out, true
}

// BaselineWindow converts a baseline time window to a half-open sample
// range [lo, hi). Windows that miss the series entirely collapse to the
// first 10% of samples (at least one), reported via fellBack.
func BaselineWindow(n int, startSec, durSec, hz float64) (lo, hi int, fellBack bool) {
	if n <= 0 {
		return 0, 0, true
	}
	lo = int(startSec * hz)
	hi = int((startSec + durSec) * hz)
	if lo < 0 {
		lo = 0
	}
	if hi > n {
		hi = n
	}
	if lo >= hi {
		hi = n / 10
		if hi < 1 {
			hi = 1
		}
		return 0, hi, true
	}
	return lo, hi, false
}

// NormalizeToBaseline rescales samples to percent change against the
// baseline mean F0 over samples[lo:hi] (ΔF/F₀ · 100). A zero or
// undefined baseline leaves the series unchanged (ok=false).
func NormalizeToBaseline(samples []float64, lo, hi int) ([]float64, bool) {
	out := append([]float64(nil), samples...)
	if lo < 0 {
		lo = 0
	}
	if hi > len(out) {
		hi = len(out)
	}
	if lo >= hi {
		return out, false
	}
	f0, ok := nanMean(out[lo:hi])
	if !ok || f0 == 0 {
		return out, false
	}
	floats.AddConst(-f0, out)
	floats.Scale(100/f0, out)
	return out, true
}
