// SPDX-License-Identifier: MIT
// Package: sfaboss/builder
//
// impl_pulse.go: deterministic rectangular/triangular pulse generator.
//
// Contract:
//   • BuildPulse / BuildTriangle (n, seed, opts...) return a slice of length n,
//     or nil on invalid input. Strict determinism per (n, seed, options).
//   • O(n) time and O(n) memory.
//
// Options consumed: WithAmplitude, WithFrequency (scales f0 = 0.125),
// WithTrend, WithNoise, WithSeed/WithRand.

package builder

import (
	"math"
	"math/rand"
)

const (
	defBaseFreq = 0.125 // base frequency f0 in cycles/sample. Period 8.
	defDuty     = 0.5   // rectangular duty cycle in [0,1]
)

// BuildPulse returns a length-n rectangular pulse train y ∈ {0, A}, on while
// the phase fraction (i*f0 mod 1) is below the duty cycle, plus trend and
// noise.
//
// Complexity: O(n).
func BuildPulse(n int, seed int64, opts ...BuilderOption) []float64 {
	cfg := newBuilderConfig(opts...)
	return pulse(n, unitZero, false, cfg, rngFrom(cfg, seed))
}

// BuildTriangle returns a length-n triangular wave y = A(1 − |2·frac − 1|)
// plus trend and noise.
//
// Complexity: O(n).
func BuildTriangle(n int, seed int64, opts ...BuilderOption) []float64 {
	cfg := newBuilderConfig(opts...)
	return pulse(n, unitZero, true, cfg, rngFrom(cfg, seed))
}

// pulse renders the wave starting at phase (cycles, in [0,1)).
func pulse(n int, phase float64, triangular bool, cfg builderConfig, rng *rand.Rand) []float64 {
	if n < 1 {
		return nil
	}
	f0 := defBaseFreq * cfg.frequency
	if cfg.amplitude <= 0 || f0 <= 0 || cfg.noiseSigma < 0 {
		return nil
	}

	out := make([]float64, n)
	var frac float64
	for i := range out {
		frac = math.Mod(phase+float64(i)*f0, unitOne)
		switch {
		case triangular:
			out[i] = cfg.amplitude * (unitOne - math.Abs(triDouble*frac-triCenter))
		case frac < defDuty:
			out[i] = cfg.amplitude
		default:
			out[i] = unitZero
		}
	}
	finish(out, cfg, rng)

	return out
}
