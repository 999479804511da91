package signal

import "math"

// GaussianSmooth applies 1-D gaussian smoothing with sigma expressed as
// a percentage of the series length. The kernel is truncated at 4 sigma
// and the series is reflected at both edges. sigmaPct <= 0 returns an
// unchanged copy.
func GaussianSmooth(samples []float64, sigmaPct float64) []float64 {
	out := append([]float64(nil), samples...)
	n := len(out)
	if n == 0 || sigmaPct <= 0 {
		return out
	}
	sigma := sigmaPct / 100 * float64(n)
	radius := int(4*sigma + 0.5)
	if radius < 1 {
		radius = 1
	}
	kernel := make([]float64, 2*radius+1)
	sum := 0.0
	for i := range kernel {
		x := float64(i - radius)
		kernel[i] = math.Exp(-x * x / (2 * sigma * sigma))
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	smoothed := make([]float64, n)
	for i := 0; i < n; i++ {
		acc := 0.0
		for k, w := range kernel {
			j := i + k - radius
			// reflect off the edges until the index lands inside
			for j < 0 || j >= n {
				if j < 0 {
					j = -j - 1
				}
				if j >= n {
					j = 2*n - j - 1
				}
			}
			acc += w * out[j]
		}
		smoothed[i] = acc
	}
	return smoothed
}
