// Package builder provides deterministic, functional-options-style series
// generators and the labeled dataset fixtures built from them. Tests,
// examples and benchmarks across the module draw their data here.
//
// The package offers:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – WithSeed/WithRand, WithName, WithAmplitude, WithFrequency,
//     WithTrend, WithNoise, WithDrift.
//   - Generators ([]float64 of length n, nil on invalid input):
//     – BuildPulse:      rectangular pulse train.
//     – BuildTriangle:   triangular wave.
//     – BuildAudioChirp: linear frequency sweep.
//     – BuildOHLCSeries: open/high/low/close of a GBM price path.
//   - Dataset fixtures (*dataset.Dataset, class attribute last):
//     – BuildLabeled:      2 or 3 waveform classes, random phase per instance.
//     – BuildConstant:     constant series with alternating labels.
//     – BuildMultivariate: 4-channel OHLC instances, up vs down drift.
//
// Guarantees:
//
//   - Determinism per (arguments, seed, options); no global state.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Generators never panic; dataset builders return ErrBadSize or
//     ErrClassCount wrapped with the method name.
package builder
