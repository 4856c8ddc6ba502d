// SPDX-License-Identifier: MIT

package boss

import (
	"errors"

	"github.com/katalvlaran/sfaboss/dataset"
)

var (
	// ErrClassNotLast indicates a training set whose class attribute is not last.
	ErrClassNotLast = dataset.ErrClassNotLast

	// ErrWordLength indicates a requested word length outside [2, original].
	ErrWordLength = errors.New("boss: word length outside valid derivation range")

	// ErrSeriesTooShort indicates series shorter than the minimum window.
	ErrSeriesTooShort = errors.New("boss: series shorter than minimum window")

	// ErrNotFitted indicates a query against a member or ensemble that was never fit.
	ErrNotFitted = errors.New("boss: classifier not fitted")

	// ErrReleased indicates an operation needing data dropped by Release.
	ErrReleased = errors.New("boss: member state released")

	// ErrNoCandidates indicates a nearest-neighbour query with no reference bag.
	ErrNoCandidates = errors.New("boss: no candidate bags")

	// ErrIndex indicates a training index outside the stored bags.
	ErrIndex = errors.New("boss: training index out of range")

	// ErrNotUnivariate indicates a multi-channel dataset handed to a single member.
	ErrNotUnivariate = errors.New("boss: member requires a univariate dataset")

	// ErrNoAggregator indicates the aggregated strategy without an aggregator factory.
	ErrNoAggregator = errors.New("boss: aggregated strategy needs an aggregator")

	// ErrNoTimeLimit indicates the contracted strategy without a time budget.
	ErrNoTimeLimit = errors.New("boss: contracted strategy needs a time limit")

	// ErrNotSerializable indicates a base classifier that cannot be checkpointed.
	ErrNotSerializable = errors.New("boss: base classifier is not binary-marshalable")

	// ErrCheckpointMismatch indicates metadata written for a different run shape.
	ErrCheckpointMismatch = errors.New("boss: checkpoint does not match this run")

	// ErrTimeUnit indicates an unknown symbolic time unit.
	ErrTimeUnit = errors.New("boss: unknown time unit")
)
