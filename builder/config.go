// SPDX-License-Identifier: MIT
// Package: sfaboss/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all generator knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in order (later overrides earlier).
//
// Deterministic defaults:
//   • rng        = nil    (each call seeds its own stream from 'seed')
//   • name       = ""     (dataset builders substitute their own name)
//   • amplitude  = 1.0
//   • frequency  = 1.0    (multiplier on each generator's base frequency)
//   • trendK     = 0.0
//   • noiseSigma = 0.0
//   • drift      = 0.01   (daily GBM drift magnitude for trend classes)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by generators and dataset builders.
// It is passed by VALUE (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means "seed a local stream per call".
	rng *rand.Rand
	// Dataset name used as relation name (and checkpoint key downstream).
	name string

	// Sequence controls (Pulse/Chirp/OHLC).
	amplitude  float64 // >0
	frequency  float64 // >0, scales the generator's base frequency
	trendK     float64 // any real
	noiseSigma float64 // >=0
	drift      float64 // >=0, |μ| of the up/down GBM classes
}

const (
	defaultAmplitude  = 1.0
	defaultFrequency  = 1.0
	defaultTrend      = 0.0
	defaultNoiseSigma = 0.0
	defaultDrift      = 0.01
)

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		amplitude:  defaultAmplitude,
		frequency:  defaultFrequency,
		trendK:     defaultTrend,
		noiseSigma: defaultNoiseSigma,
		drift:      defaultDrift,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// nameOr returns the configured dataset name, or def when none was set.
func (c builderConfig) nameOr(def string) string {
	if c.name == "" {
		return def
	}
	return c.name
}
