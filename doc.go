// Package sfaboss is a time-series classification toolkit built around the
// BOSS (Bag of SFA Symbols) ensemble.
//
// 🚀 What is sfaboss?
//
//	A pure-Go implementation of dictionary-based series classification:
//		• SFA words: sliding windows, momentary Fourier transform, MCB breakpoints
//		• Bags: numerosity-reduced word histograms, asymmetric BOSS distance
//		• Ensembles: exhaustive, contract-bounded, random, random with aggregator
//		• Multivariate data: one ensemble per channel, round-robin growth
//		• Checkpointing: durable, resumable contract and random builds
//		• Train estimates: leave-one-out accuracy exported as CSV
//
// ✨ Layout
//
//	dataset/    Instance and Dataset, univariate and relational multivariate
//	sfa/        Params, MFT, breakpoints, words, bags
//	boss/       Individual, Distance, Ensemble and its strategies
//	checkpoint/ snappy-compressed member and ensemble records on disk
//	config/     YAML configuration mapped onto boss options
//	builder/    synthetic labeled datasets for tests and demos
//	examples/   runnable programs
//
// Quick start:
//
//	train, _ := builder.BuildLabeled(3, 20, 128, 1)
//	e, _ := boss.New(boss.WithStrategy(boss.Random), boss.WithEnsembleSize(50))
//	_ = e.Fit(train)
//	label, _ := e.Classify(train.Instances[0])
package sfaboss
