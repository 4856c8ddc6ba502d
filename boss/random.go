// SPDX-License-Identifier: MIT

package boss

import (
	"time"

	"go.uber.org/zap"
)

// fitRandom draws configurations until the strategy's stop condition holds.
// Multivariate data is served round-robin, one member per channel in turn.
// Members are released right after fitting; the aggregated strategy leaves
// fitting to its aggregator.
func (e *Ensemble) fitRandom() error {
	c := e.resume
	for e.drawing() {
		ind, err := NewIndividual(e.grid.draw(e.rng), e.cfg.base)
		if err != nil {
			return err
		}
		ind.releaseAfterFit = true
		if e.cfg.strategy != RandomAggregated {
			if err := ind.Fit(e.parts[c]); err != nil {
				return err
			}
		}

		e.channels[c].members = append(e.channels[c].members, ind)
		if e.multivariate {
			c = (c + 1) % len(e.channels)
		}
		if e.store != nil {
			e.checkpoint(c)
		}
	}

	if e.cfg.strategy == RandomAggregated {
		return e.fitAggregators()
	}
	if e.cfg.strategy == Contract {
		last := len(e.channels[len(e.channels)-1].members)
		fields := []zap.Field{
			zap.Int("members", e.Size()),
			zap.Int("last_channel", last),
			zap.Duration("elapsed", e.elapsed()),
			zap.Duration("limit", e.cfg.timeLimit),
			zap.Bool("checkpointed", e.store != nil),
		}
		if n := e.Size(); n > 0 {
			fields = append(fields, zap.Duration("per_member", e.elapsed()/time.Duration(n)))
		}
		e.log.Info("contract training finished", fields...)
	}

	return nil
}

// drawing reports whether another configuration should be drawn.
func (e *Ensemble) drawing() bool {
	if e.cfg.strategy == Contract {
		last := len(e.channels[len(e.channels)-1].members)
		return e.elapsed() < e.cfg.timeLimit && last < e.cfg.maxEnsemble
	}
	return e.Size() < e.target
}

// fitAggregators builds one aggregator per channel over that channel's
// unfitted members.
func (e *Ensemble) fitAggregators() error {
	e.aggregators = make([]Aggregator, len(e.channels))
	for c := range e.channels {
		a := e.cfg.aggregator()
		if fs, ok := a.(FoldSetter); ok {
			fs.SetFolds(e.cfg.folds)
		}
		a.SetMembers(e.Members(c))
		if err := a.Fit(e.parts[c]); err != nil {
			return err
		}
		e.aggregators[c] = a
	}
	e.log.Debug("aggregators fitted", zap.Int("channels", len(e.channels)), zap.Int("folds", e.cfg.folds))

	return nil
}
