// SPDX-License-Identifier: MIT

package boss

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/sfaboss/dataset"
)

// Distribution returns class probabilities for inst. Each channel yields a
// histogram (member votes, or its aggregator's distribution) normalised by
// its weight; channel results are averaged.
//
// Complexity: O(C·M·N·|bag|) for 1-NN members.
func (e *Ensemble) Distribution(inst dataset.Instance) ([]float64, error) {
	series, err := e.channelsOf(inst)
	if err != nil {
		return nil, err
	}
	return e.combine(
		func(c int, m *Individual) (int, error) { return m.Classify(series[c]) },
		func(c int) ([]float64, error) { return e.aggregators[c].Distribution(series[c]) },
	)
}

// Classify returns the most probable class of inst; ties go to the lowest
// class index.
func (e *Ensemble) Classify(inst dataset.Instance) (int, error) {
	dist, err := e.Distribution(inst)
	if err != nil {
		return 0, err
	}
	return floats.MaxIdx(dist), nil
}

// distributionHoldingOut is Distribution for training instance i with every
// member excluding i's own bag.
func (e *Ensemble) distributionHoldingOut(i int) ([]float64, error) {
	series := dataset.SplitInstance(e.train.Instances[i])
	return e.combine(
		func(_ int, m *Individual) (int, error) { return m.ClassifyHoldingOut(i) },
		func(c int) ([]float64, error) { return e.aggregators[c].Distribution(series[c]) },
	)
}

func (e *Ensemble) channelsOf(inst dataset.Instance) ([]dataset.Instance, error) {
	if e.train == nil {
		return nil, ErrNotFitted
	}
	if len(inst.Channels) != len(e.channels) {
		return nil, fmt.Errorf("%d channels, want %d: %w", len(inst.Channels), len(e.channels), dataset.ErrShape)
	}
	return dataset.SplitInstance(inst), nil
}

func (e *Ensemble) combine(
	vote func(c int, m *Individual) (int, error),
	aggregate func(c int) ([]float64, error),
) ([]float64, error) {
	out := make([]float64, e.numClasses)
	hist := make([]float64, e.numClasses)
	share := 1 / float64(len(e.channels))

	for c := range e.channels {
		clear(hist)
		var weight float64
		if e.aggregators != nil {
			d, err := aggregate(c)
			if err != nil {
				return nil, err
			}
			if len(d) != e.numClasses {
				return nil, fmt.Errorf("aggregator returned %d classes, want %d: %w", len(d), e.numClasses, dataset.ErrShape)
			}
			floats.Add(hist, d)
			weight = floats.Sum(d)
		} else {
			for _, m := range e.channels[c].members {
				k, err := vote(c, m)
				if err != nil {
					return nil, err
				}
				hist[k]++
				weight++
			}
		}
		if weight == 0 {
			continue
		}
		floats.AddScaled(out, share/weight, hist)
	}

	return out, nil
}
