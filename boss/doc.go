// SPDX-License-Identifier: MIT

// Package boss implements the BOSS (Bag-of-SFA-Symbols) ensemble classifier
// for univariate and multivariate time series.
//
// 🚀 What is BOSS?
//
// Every member (Individual) turns each training series into a bag of SFA
// words for one configuration (window length, word length, normalisation)
// and classifies a query by its nearest training bag under the asymmetric
// BOSS distance. The Ensemble keeps many members per channel and votes.
//
// ✨ Strategies
//
//   - Exhaustive: every window on a stepped grid, both normalisations, best
//     word length per window by leave-one-out accuracy; members within 92%
//     of the best accuracy survive, capped at 500 per channel.
//   - Contract: random configurations until the time budget is spent or
//     the cap is reached. Checkpointable.
//   - Random: random configurations until the target size. Checkpointable.
//   - RandomAggregated: random configurations handed unfitted to an
//     external Aggregator per channel.
//
// Multivariate data trains one sub-ensemble per channel; random draws visit
// channels round-robin. Predictions average per-channel distributions.
//
// ⚙️ Usage:
//
//	e, err := boss.New(
//		boss.WithSeed(7),
//		boss.WithTimeLimit(10*time.Minute),
//		boss.WithCheckpointDir("/var/lib/boss"),
//		boss.WithLogger(logger),
//	)
//	if err != nil { ... }
//	if err := e.Fit(train); err != nil { ... }
//	class, err := e.Classify(test.Instances[0])
//
// 🔁 Checkpointing
//
// With WithCheckpointDir, the Contract and Random strategies persist every
// new member plus the ensemble metadata (draw generator state, budget
// consumed, next channel). A later Fit with the same dataset name, seed and
// strategy parameters resumes where the last checkpoint left off and draws
// the same configurations an uninterrupted run would have. The directory is
// removed after a successful Fit unless WithCheckpointCleanup(false).
//
// An Ensemble is not safe for concurrent use.
package boss
