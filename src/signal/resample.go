package signal

import (
	"fmt"

	"gonum.org/v1/gonum/interp"
)

// Resample linearly interpolates the series (xs, ys) onto targetXs.
// Targets outside the source range clamp to the boundary values. xs
// must be strictly increasing and hold at least two points.
func Resample(xs, ys, targetXs []float64) ([]float64, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("resample: %d time values vs %d samples", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return nil, fmt.Errorf("resample: need at least 2 samples, have %d", len(xs))
	}
	// interp.Fit panics on unsorted input, so reject it here
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return nil, fmt.Errorf("resample: time values not strictly increasing at index %d", i)
		}
	}
	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("resample: %w", err)
	}
	lo, hi := xs[0], xs[len(xs)-1]
	out := make([]float64, len(targetXs))
	for i, x := range targetXs {
		if x < lo {
			x = lo
		} else if x > hi {
			x = hi
		}
		out[i] = pl.Predict(x)
	}
	return out, nil
}
