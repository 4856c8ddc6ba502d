// SPDX-License-Identifier: MIT

package sfa

import "math"

// MFT computes the moving Fourier transform of series: one normalised
// coefficient vector (length WordLength) per sliding window, step 1.
//
// Algorithm:
//  1. Seed: one full DFT of the window at offset 0.
//  2. For t ≥ 1, each kept coefficient k is updated in O(1):
//     X_k(t) = (X_k(t−1) + x[t+w−1] − x[t−1]) · e^{i2πk/w}
//  3. Running sum and sum of squares give mean/std per window in O(1).
//  4. Each window is scaled by (1/std, or 1 for constant windows)·1/sqrt(w).
//
// Complexity: O(w log w + n·l) time, O(n·l) memory.
func (t *Transform) MFT(series []float64) ([][]float64, error) {
	if err := t.checkLength(series); err != nil {
		return nil, err
	}
	w := t.p.WindowLength
	l := 2 * t.pairs

	// phase rotation per coefficient pair
	phis := make([]float64, l)
	for u := 0; u < l; u += 2 {
		k := float64(u/2 + t.start)
		phis[u] = math.Cos(2 * math.Pi * k / float64(w))
		phis[u+1] = math.Sin(2 * math.Pi * k / float64(w))
	}

	end := len(series) - w + 1
	stds := movingStd(series, w, end)

	out := make([][]float64, end)
	cur := make([]float64, l)
	t.coefficients(cur, series[:w])

	var re, im float64
	for s := 0; s < end; s++ {
		if s > 0 {
			delta := series[s+w-1] - series[s-1]
			for k := 0; k < l; k += 2 {
				re = cur[k] + delta
				im = cur[k+1]
				cur[k] = re*phis[k] - im*phis[k+1]
				cur[k+1] = re*phis[k+1] + im*phis[k]
			}
		}

		row := make([]float64, l)
		if stds[s] > 0 {
			f := t.invSqrt / stds[s]
			for k := range row {
				row[k] = cur[k] * f
			}
		} else {
			// constant window: only the DC real part survives
			if t.start == 0 {
				row[0] = cur[0] * t.invSqrt
			}
		}
		out[s] = row
	}

	return out, nil
}

// movingStd returns the population standard deviation of every window of
// length w; constant windows map to 0.
func movingStd(series []float64, w, end int) []float64 {
	stds := make([]float64, end)
	r := 1 / float64(w)

	var sum, sq float64
	for i := 0; i < w; i++ {
		sum += series[i]
		sq += series[i] * series[i]
	}
	stds[0] = stdFrom(sum, sq, r)

	for s := 1; s < end; s++ {
		in, out := series[s+w-1], series[s-1]
		sum += in - out
		sq += in*in - out*out
		stds[s] = stdFrom(sum, sq, r)
	}

	return stds
}

func stdFrom(sum, sq, r float64) float64 {
	mean := sum * r
	v := sq*r - mean*mean
	if constantWindow(mean, v) {
		return 0
	}
	return math.Sqrt(v)
}

// constantVariance bounds the cancellation error of E[x²]−E[x]², relative to
// the squared mean.
const constantVariance = 1e-12

// constantWindow reports whether a window with the given mean and variance is
// flat up to floating-point noise.
func constantWindow(mean, variance float64) bool {
	return variance <= constantVariance*math.Max(1, mean*mean)
}
