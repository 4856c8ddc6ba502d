// SPDX-License-Identifier: MIT
// Package: sfaboss/builder
//
// options.go: functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"
)

// BuilderOption customizes a generator or dataset builder by mutating a
// builderConfig before any sample is produced.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG shared by every draw of the call.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed. Dataset builders
// then draw every instance from this one stream.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithName sets the dataset (relation) name. Panics on "".
func WithName(name string) BuilderOption {
	if name == "" {
		panic("builder: WithName(\"\")")
	}
	return func(c *builderConfig) { c.name = name }
}

// WithAmplitude sets the signal amplitude A (>0). Panics if A <= 0.
func WithAmplitude(A float64) BuilderOption {
	if A <= 0 {
		panic("builder: WithAmplitude(A<=0)")
	}
	return func(c *builderConfig) { c.amplitude = A }
}

// WithFrequency scales every generator's base frequency by f (>0).
// Panics if f <= 0.
func WithFrequency(f float64) BuilderOption {
	if f <= 0 {
		panic("builder: WithFrequency(f<=0)")
	}
	return func(c *builderConfig) { c.frequency = f }
}

// WithTrend sets the linear trend coefficient k: y += k*i. Any real value.
func WithTrend(k float64) BuilderOption {
	return func(c *builderConfig) { c.trendK = k }
}

// WithNoise sets the additive Gaussian noise sigma (>=0). Panics if sigma < 0.
func WithNoise(sigma float64) BuilderOption {
	if sigma < 0 {
		panic("builder: WithNoise(sigma<0)")
	}
	return func(c *builderConfig) { c.noiseSigma = sigma }
}

// WithDrift sets the daily drift magnitude of the OHLC trend classes.
// Panics if mu < 0.
func WithDrift(mu float64) BuilderOption {
	if mu < 0 {
		panic("builder: WithDrift(mu<0)")
	}
	return func(c *builderConfig) { c.drift = mu }
}
