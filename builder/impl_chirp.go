// SPDX-License-Identifier: MIT
// Package: sfaboss/builder
//
// impl_chirp.go - deterministic linear chirp generator.
//
// Contract:
//   - BuildAudioChirp(n, seed, opts...) returns a slice of length n (or nil).
//   - O(n) time, O(n) memory. No panics. No global state.
//   - WithFrequency scales both sweep ends (f0 = 0.02, f1 = 0.25).

package builder

import (
	"math"
	"math/rand"
)

const (
	defChirpF0 = 0.02 // start frequency (cycles/sample)
	defChirpF1 = 0.25 // end frequency (cycles/sample)
)

// BuildAudioChirp returns a length-n linear chirp: f sweeps from f0 to f1.
// Model:
//   - fi  = f0 + (f1 − f0) * i/(n−1)  (cycles/sample)
//   - θᵢ₊₁ = θᵢ + τ * fi               (phase accumulator, τ=2π)
//   - yᵢ  = A * sin(θᵢ) + trend*i + noise
func BuildAudioChirp(n int, seed int64, opts ...BuilderOption) []float64 {
	cfg := newBuilderConfig(opts...)
	return chirp(n, unitZero, cfg, rngFrom(cfg, seed))
}

// chirp renders the sweep with the phase accumulator starting at theta0.
func chirp(n int, theta0 float64, cfg builderConfig, rng *rand.Rand) []float64 {
	if n < 1 {
		return nil
	}
	f0, f1 := defChirpF0*cfg.frequency, defChirpF1*cfg.frequency
	if cfg.amplitude <= 0 || cfg.noiseSigma < 0 {
		return nil
	}

	out := make([]float64, n)
	theta := theta0
	var t float64
	for i := range out {
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		theta += tau * (f0 + (f1-f0)*t)
		out[i] = cfg.amplitude * math.Sin(theta)
	}
	finish(out, cfg, rng)

	return out
}
