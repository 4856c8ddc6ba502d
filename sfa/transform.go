// SPDX-License-Identifier: MIT

package sfa

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/stat"
)

// Transform turns series into SFA words for one configuration.
type Transform struct {
	p       Params
	pairs   int     // coefficient pairs kept: WordLength/2
	start   int     // first coefficient index (1 when normalising)
	invSqrt float64 // 1/sqrt(WindowLength)

	fft  *fourier.FFT
	spec []complex128
}

// New validates p and prepares a transform.
//
// Complexity: O(WindowLength) for the FFT plan.
func New(p Params) (*Transform, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &Transform{
		p:       p,
		pairs:   p.WordLength / 2,
		start:   p.startCoefficient(),
		invSqrt: 1 / math.Sqrt(float64(p.WindowLength)),
		fft:     fourier.NewFFT(p.WindowLength),
		spec:    make([]complex128, p.WindowLength/2+1),
	}, nil
}

// Params returns the configuration.
func (t *Transform) Params() Params { return t.p }

// coefficients writes the unnormalised DFT values {re_k, im_k} for the kept
// coefficient indices into dst (length 2*pairs).
func (t *Transform) coefficients(dst, window []float64) {
	n := len(window)
	t.spec = t.fft.Coefficients(t.spec, window)
	for k := t.start; k < t.start+t.pairs; k++ {
		var c complex128
		if k <= n/2 {
			c = t.spec[k]
		} else {
			// real input: X[k] = conj(X[n-k])
			c = cmplx.Conj(t.spec[n-k])
		}
		dst[2*(k-t.start)] = real(c)
		dst[2*(k-t.start)+1] = imag(c)
	}
}

// DFT returns the approximation of a single window used for breakpoint
// learning: kept coefficients scaled by 1/sqrt(w) and divided by the window's
// population standard deviation (1 for a constant window).
//
// Complexity: O(w log w).
func (t *Transform) DFT(window []float64) []float64 {
	out := make([]float64, 2*t.pairs)
	t.coefficients(out, window)

	mean, variance := stat.PopMeanVariance(window, nil)
	std := 1.0
	if !constantWindow(mean, variance) {
		std = math.Sqrt(variance)
	}
	f := t.invSqrt / std
	for i := range out {
		out[i] *= f
	}

	return out
}

// disjointWindows cuts series into ceil(n/w) non-overlapping windows; the
// last one is anchored to the series end instead of being padded.
func (t *Transform) disjointWindows(series []float64) [][]float64 {
	w := t.p.WindowLength
	n := len(series)
	amount := (n + w - 1) / w
	out := make([][]float64, amount)
	for win := 0; win < amount; win++ {
		offset := win * w
		if offset > n-w {
			offset = n - w
		}
		out[win] = series[offset : offset+w]
	}
	return out
}

// Word quantises one coefficient vector: every letter takes the first bin
// whose upper bound is >= the coefficient.
//
// Complexity: O(WordLength·AlphabetSize).
func (t *Transform) Word(bp Breakpoints, coeffs []float64) Word {
	var w Word
	for l := 0; l < t.p.WordLength; l++ {
		for b := 0; b < t.p.AlphabetSize; b++ {
			if coeffs[l] <= bp[l][b] {
				w = w.Push(b)
				break
			}
		}
	}
	return w
}

// Words transforms a full series into one word per sliding window.
//
// Complexity: O(n·l + w log w).
func (t *Transform) Words(bp Breakpoints, series []float64) ([]Word, error) {
	if err := bp.fits(t.p); err != nil {
		return nil, err
	}
	mft, err := t.MFT(series)
	if err != nil {
		return nil, err
	}
	out := make([]Word, len(mft))
	for i, c := range mft {
		out[i] = t.Word(bp, c)
	}
	return out, nil
}

// Bag transforms a series straight into a numerosity-reduced bag.
func (t *Transform) Bag(bp Breakpoints, series []float64, class int) (Bag, error) {
	words, err := t.Words(bp, series)
	if err != nil {
		return Bag{}, err
	}
	return BagFrom(words, class), nil
}

func (t *Transform) checkLength(series []float64) error {
	if len(series) < t.p.WindowLength {
		return fmt.Errorf("length %d < window %d: %w", len(series), t.p.WindowLength, ErrSeriesTooShort)
	}
	return nil
}
