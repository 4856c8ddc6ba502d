// SPDX-License-Identifier: MIT

package boss

import (
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/sfaboss/checkpoint"
	"github.com/katalvlaran/sfaboss/dataset"
)

// Ensemble is the BOSS ensemble classifier. It keeps, per channel, an ordered
// set of Individuals chosen by one of four strategies and predicts by
// averaging per-channel vote distributions.
//
// An Ensemble is not safe for concurrent use; one Fit may be in flight at a time.
type Ensemble struct {
	cfg config
	log *zap.Logger

	train        *dataset.Dataset
	parts        []*dataset.Dataset
	channels     []channelEnsemble // one per channel, allocated once per Fit
	aggregators  []Aggregator
	numClasses   int
	multivariate bool
	grid         windowGrid
	target       int

	pcg    *rand.PCG
	rng    *rand.Rand
	resume int // channel receiving the first draw of this run

	store    *checkpoint.Store
	durable  []int // per channel, members persisted as a gap-free prefix
	consumed time.Duration
	overhead time.Duration
	start    time.Time
	built    time.Duration

	estimate *TrainEstimate
}

type channelEnsemble struct {
	members []*Individual
}

// New returns an unfitted ensemble. Option combinations that cannot train
// are rejected here.
func New(opts ...Option) (*Ensemble, error) {
	cfg := newConfig(opts...)
	switch cfg.strategy {
	case Contract:
		if cfg.timeLimit <= 0 {
			return nil, ErrNoTimeLimit
		}
	case RandomAggregated:
		if cfg.aggregator == nil {
			return nil, ErrNoAggregator
		}
	}

	return &Ensemble{cfg: cfg, log: cfg.logger}, nil
}

// Strategy returns the configured strategy.
func (e *Ensemble) Strategy() Strategy { return e.cfg.strategy }

// NumChannels returns the channel count seen by the last Fit.
func (e *Ensemble) NumChannels() int { return len(e.channels) }

// Members returns a copy of channel c's retained members in order.
func (e *Ensemble) Members(c int) []*Individual {
	if c < 0 || c >= len(e.channels) {
		return nil
	}
	return append([]*Individual(nil), e.channels[c].members...)
}

// Size returns the number of members over all channels.
func (e *Ensemble) Size() int {
	n := 0
	for _, ch := range e.channels {
		n += len(ch.members)
	}
	return n
}

// BuildTime returns the training time of the last Fit, checkpoint overhead
// excluded and budget consumed by earlier runs included.
func (e *Ensemble) BuildTime() time.Duration { return e.built }

// Fit trains the ensemble. With checkpointing enabled and metadata on disk,
// the Contract and Random strategies resume from the stored state.
//
// Fails if train is invalid (class attribute not last, ragged, unlabeled),
// if a member fails to fit, or if a checkpoint cannot be restored.
// Checkpoint write failures are logged and do not fail training.
func (e *Ensemble) Fit(train *dataset.Dataset) error {
	e.start = e.cfg.now()
	if err := train.Validate(); err != nil {
		return err
	}
	grid, err := newWindowGrid(train.SeriesLength())
	if err != nil {
		return err
	}
	e.reset(train, grid)

	if e.checkpointable() && e.cfg.checkpointDir != "" {
		e.store = checkpoint.Open(e.cfg.checkpointDir, checkpoint.RunName(train.Name, e.cfg.seed, e.tag()))
		if e.store.Exists() {
			if err := e.restore(); err != nil {
				return err
			}
		}
	}

	if e.cfg.strategy == Exhaustive {
		err = e.fitExhaustive()
	} else {
		err = e.fitRandom()
	}
	if err != nil {
		return err
	}
	e.built = e.elapsed()

	if e.cfg.trainEstimate {
		if _, err := e.TrainAccuracy(); err != nil {
			return err
		}
		if e.cfg.reportPath != "" {
			if err := e.WriteTrainReport(e.cfg.reportPath); err != nil {
				return err
			}
		}
	}

	if e.store != nil && e.cfg.cleanup {
		if err := e.store.Remove(); err != nil {
			e.log.Warn("checkpoint cleanup failed", zap.String("dir", e.store.Dir()), zap.Error(err))
		}
	}

	return nil
}

func (e *Ensemble) reset(train *dataset.Dataset, grid windowGrid) {
	e.train = train
	e.parts = train.SplitChannels()
	e.grid = grid
	e.multivariate = train.Multivariate
	e.numClasses = train.NumClasses()
	e.channels = make([]channelEnsemble, len(e.parts))
	e.durable = make([]int, len(e.parts))
	e.aggregators = nil

	e.target = e.cfg.ensembleSize
	if e.multivariate && e.cfg.perChannel > 0 {
		e.target = e.cfg.perChannel * len(e.parts)
	}

	e.pcg = newDrawSource(e.cfg.seed)
	e.rng = rand.New(e.pcg)
	e.resume = 0
	e.store = nil
	e.consumed, e.overhead, e.built = 0, 0, 0
	e.estimate = nil
}

// elapsed is training time so far: budget consumed by earlier runs plus this
// run's wall time, minus time spent writing checkpoints.
func (e *Ensemble) elapsed() time.Duration {
	return e.consumed + e.cfg.now().Sub(e.start) - e.overhead
}

func (e *Ensemble) checkpointable() bool {
	return e.cfg.strategy == Contract || e.cfg.strategy == Random
}
