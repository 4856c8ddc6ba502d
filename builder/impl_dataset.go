// SPDX-License-Identifier: MIT
// Package: sfaboss/builder
//
// impl_dataset.go: labeled dataset fixtures for classifier tests,
// examples and benchmarks.
//
// Contract:
//   • Every builder is deterministic per (arguments, seed, options).
//   • Instances are interleaved by class (0,1,..,k-1,0,1,..) so any prefix
//     is balanced.
//   • All instances of a class share a waveform; each draws its own phase,
//     plus trend and noise from the options.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/sfaboss/dataset"
)

// LabeledClasses names the waveform of each class of BuildLabeled, in class
// index order.
var LabeledClasses = []string{"pulse", "chirp", "triangle"}

// Minimum sizes of the fixtures.
const (
	MinFixtureLength = 2
	MinPerClass      = 1
)

// BuildLabeled returns a univariate dataset of classes×perClass series of
// the given length. Class 0 is a rectangular pulse train, class 1 a linear
// chirp, class 2 (if classes == 3) a triangular wave.
//
// Errors: ErrBadSize (perClass < 1, length < 2), ErrClassCount (classes ∉ [2,3]).
// Complexity: O(classes·perClass·length).
func BuildLabeled(classes, perClass, length int, seed int64, opts ...BuilderOption) (*dataset.Dataset, error) {
	if perClass < MinPerClass || length < MinFixtureLength {
		return nil, builderErrorf(MethodLabeled, ErrBadSize, "perClass=%d length=%d", perClass, length)
	}
	if classes < 2 || classes > len(LabeledClasses) {
		return nil, builderErrorf(MethodLabeled, ErrClassCount, "classes=%d", classes)
	}

	cfg := newBuilderConfig(opts...)
	rng := rngFrom(cfg, seed)

	n := classes * perClass
	series := make([][]float64, n)
	labels := make([]int, n)
	for i := 0; i < n; i++ {
		labels[i] = i % classes
		series[i] = waveform(labels[i], length, cfg, rng)
	}

	return dataset.NewUnivariate(cfg.nameOr("labeled"), LabeledClasses[:classes], series, labels)
}

// waveform renders one instance of the given class at a random phase.
func waveform(class, length int, cfg builderConfig, rng *rand.Rand) []float64 {
	switch class {
	case 0:
		return pulse(length, rng.Float64(), false, cfg, rng)
	case 1:
		return chirp(length, rng.Float64()*tau, cfg, rng)
	default:
		return pulse(length, rng.Float64(), true, cfg, rng)
	}
}

// BuildConstant returns a univariate two-class dataset of n series that all
// equal value; labels alternate 0,1. Used to probe degenerate windows.
//
// Errors: ErrBadSize (n < 1, length < 2).
func BuildConstant(n, length int, value float64, opts ...BuilderOption) (*dataset.Dataset, error) {
	if n < 1 || length < MinFixtureLength {
		return nil, builderErrorf(MethodConstant, ErrBadSize, "n=%d length=%d", n, length)
	}
	cfg := newBuilderConfig(opts...)

	series := make([][]float64, n)
	labels := make([]int, n)
	for i := range series {
		s := make([]float64, length)
		for j := range s {
			s[j] = value
		}
		series[i], labels[i] = s, i%2
	}

	return dataset.NewUnivariate(cfg.nameOr("constant"), []string{"a", "b"}, series, labels)
}

// MultivariateClasses names the classes of BuildMultivariate.
var MultivariateClasses = []string{"up", "down"}

// BuildMultivariate returns a 4-channel (open, high, low, close) dataset of
// 2×perClass instances over 'days' days. Class "up" drifts by +μ per day,
// class "down" by −μ (WithDrift).
//
// Errors: ErrBadSize (perClass < 1, days < 2).
// Complexity: O(perClass·days).
func BuildMultivariate(perClass, days int, seed int64, opts ...BuilderOption) (*dataset.Dataset, error) {
	if perClass < MinPerClass || days < MinFixtureLength {
		return nil, builderErrorf(MethodMultivariate, ErrBadSize, "perClass=%d days=%d", perClass, days)
	}

	cfg := newBuilderConfig(opts...)
	rng := rngFrom(cfg, seed)

	n := 2 * perClass
	channels := make([][][]float64, n)
	labels := make([]int, n)
	for i := 0; i < n; i++ {
		labels[i] = i % 2
		mu := cfg.drift
		if labels[i] == 1 {
			mu = -mu
		}
		o, h, l, c := ohlc(days, mu, rng)
		channels[i] = [][]float64{o, h, l, c}
	}

	return dataset.NewMultivariate(cfg.nameOr("ohlc"), MultivariateClasses, channels, labels)
}
