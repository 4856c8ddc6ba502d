// SPDX-License-Identifier: MIT
// Package: sfaboss/builder
//
// sequence_primitives.go - shared constants and helpers for generators.
//
// Contract:
//   - Pure helpers (no global state).
//   - RNG selection gives cfg.rng priority so composed calls share one stream.

package builder

import (
	"math"
	"math/rand"
)

// Tiny numeric named constants.
const (
	unitZero  = 0.0
	unitOne   = 1.0
	triDouble = 2.0 // factor used in triangular wave: 2*frac-1
	triCenter = 1.0 // center offset used in triangular wave
)

// tau is 2π.
const tau = 2.0 * math.Pi

// rngFrom returns cfg.rng if present (shared stream), else a local rand
// seeded by 'seed'.
func rngFrom(cfg builderConfig, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(seed))
}

// finish adds trend and noise in place: y[i] += k*i + sigma*N(0,1).
// Noise is drawn only when sigma > 0 so noiseless calls leave rng untouched.
func finish(y []float64, cfg builderConfig, rng *rand.Rand) {
	for i := range y {
		y[i] += cfg.trendK * float64(i)
		if cfg.noiseSigma > 0 {
			y[i] += cfg.noiseSigma * rng.NormFloat64()
		}
	}
}
