// SPDX-License-Identifier: MIT
// Package: sfaboss/builder
//
// impl_ohlc.go - deterministic OHLC series via discrete-time GBM with intraday steps.
//
// Contract:
//   - BuildOHLCSeries(days, seed, opts...) → (open, high, low, close).
//   - On invalid input (days<1) ⇒ nil slices; never panic.
//   - O(days * steps) time; O(days) memory.
//
// Invariant after each day: low ≤ min(open, close) ≤ max(open, close) ≤ high.
//
// The four arrays are the channels of the multivariate fixture (see
// BuildMultivariate): up-trending and down-trending paths form two classes.

package builder

import (
	"math"
	"math/rand"
)

const (
	defOHLCStart     = 100.0 // initial price S0
	defOHLCDailyVol  = 0.02  // daily volatility σ
	defIntradaySteps = 8     // intraday steps per day
)

// BuildOHLCSeries returns deterministic OHLC arrays for 'days' trading days
// with daily drift cfg.drift (WithDrift). Model, per intraday step Δt = 1/steps:
//
//	S_{t+1} = S_t * exp((μ - 0.5σ²)Δt + σ√Δt * Z),  Z ~ N(0,1).
func BuildOHLCSeries(days int, seed int64, opts ...BuilderOption) (open, high, low, close []float64) {
	cfg := newBuilderConfig(opts...)
	return ohlc(days, cfg.drift, rngFrom(cfg, seed))
}

func ohlc(days int, mu float64, rng *rand.Rand) (open, high, low, close []float64) {
	if days < 1 {
		return nil, nil, nil, nil
	}

	open = make([]float64, days)
	high = make([]float64, days)
	low = make([]float64, days)
	close = make([]float64, days)

	dt := 1.0 / float64(defIntradaySteps)
	driftTerm := (mu - 0.5*defOHLCDailyVol*defOHLCDailyVol) * dt
	noiseScale := defOHLCDailyVol * math.Sqrt(dt)

	S := defOHLCStart
	for d := 0; d < days; d++ {
		open[d], high[d], low[d] = S, S, S
		for s := 0; s < defIntradaySteps; s++ {
			S *= math.Exp(driftTerm + noiseScale*rng.NormFloat64())
			high[d] = math.Max(high[d], S)
			low[d] = math.Min(low[d], S)
		}
		close[d] = S
	}

	return open, high, low, close
}
