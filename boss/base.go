// SPDX-License-Identifier: MIT

package boss

import "github.com/katalvlaran/sfaboss/dataset"

// BaseClassifier is a tabular classifier a member may delegate to instead of
// 1-NN over bags. Rows are word histograms over the member's vocabulary.
//
// A base classifier that also implements encoding.BinaryMarshaler and
// encoding.BinaryUnmarshaler can be checkpointed with its member.
type BaseClassifier interface {
	Fit(features [][]float64, labels []int, numClasses int) error
	Classify(features []float64) (int, error)
	Distribution(features []float64) ([]float64, error)
}

// BaseFactory returns a fresh, unfitted base classifier. It is called once
// per member.
type BaseFactory func() BaseClassifier

// Aggregator is a weighted-voting ensemble over one channel's members.
// It fits the members itself; the coordinator never fits them.
type Aggregator interface {
	SetMembers(members []*Individual)
	Fit(channel *dataset.Dataset) error
	Distribution(inst dataset.Instance) ([]float64, error)
}

// FoldSetter is implemented by aggregators that cross-validate members.
type FoldSetter interface {
	SetFolds(folds int)
}

// AggregatorFactory returns a fresh aggregator; one is created per channel.
type AggregatorFactory func() Aggregator
