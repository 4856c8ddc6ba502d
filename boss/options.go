// SPDX-License-Identifier: MIT

package boss

import (
	"time"

	"go.uber.org/zap"
)

// Strategy selects how the ensemble picks its configurations.
type Strategy int

const (
	// Exhaustive searches every window length and normalisation, keeps the best
	// word length per window, and prunes by leave-one-out accuracy.
	Exhaustive Strategy = iota
	// Contract draws random configurations until the time budget or the
	// per-channel cap is reached. Checkpointable.
	Contract
	// Random draws random configurations until the target size is reached.
	// Checkpointable.
	Random
	// RandomAggregated draws like Random and hands each channel's members to
	// an external aggregator, which fits and weights them.
	RandomAggregated
)

func (s Strategy) String() string {
	switch s {
	case Exhaustive:
		return "exhaustive"
	case Contract:
		return "contract"
	case Random:
		return "random"
	case RandomAggregated:
		return "random-aggregated"
	default:
		return "unknown"
	}
}

// Defaults.
const (
	DefaultEnsembleSize    = 50
	DefaultMaxEnsembleSize = 500
	DefaultAggregatorFolds = 10

	// CorrectThreshold is the admission ratio against the best accuracy.
	CorrectThreshold = 0.92
	// AlphabetSize is fixed at 4 (2 bits per symbol).
	AlphabetSize = 4
	// MinWindow is the shortest sliding window searched.
	MinWindow = 10
)

// WordLengths are the candidate word lengths, longest first.
var WordLengths = [...]int{16, 14, 12, 10, 8}

// Option customises an Ensemble before training.
type Option func(*config)

type config struct {
	seed         int64
	strategy     Strategy
	ensembleSize int
	perChannel   int
	maxEnsemble  int
	timeLimit    time.Duration

	base       BaseFactory
	aggregator AggregatorFactory
	folds      int

	checkpointDir string
	cleanup       bool

	reportPath    string
	trainEstimate bool

	logger *zap.Logger
	now    func() time.Time
}

func newConfig(opts ...Option) config {
	c := config{
		strategy:     Exhaustive,
		ensembleSize: DefaultEnsembleSize,
		maxEnsemble:  DefaultMaxEnsembleSize,
		folds:        DefaultAggregatorFolds,
		cleanup:      true,
		logger:       zap.NewNop(),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithSeed fixes the random draw sequence. Default 0.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithStrategy selects the training strategy explicitly.
func WithStrategy(s Strategy) Option {
	if s < Exhaustive || s > RandomAggregated {
		panic("boss: WithStrategy(unknown)")
	}
	return func(c *config) { c.strategy = s }
}

// WithEnsembleSize sets the target size of the random strategies. Panics if n < 1.
func WithEnsembleSize(n int) Option {
	if n < 1 {
		panic("boss: WithEnsembleSize(n<1)")
	}
	return func(c *config) { c.ensembleSize = n }
}

// WithEnsembleSizePerChannel sets, for multivariate data, the target size to
// n × channels. Panics if n < 1.
func WithEnsembleSizePerChannel(n int) Option {
	if n < 1 {
		panic("boss: WithEnsembleSizePerChannel(n<1)")
	}
	return func(c *config) { c.perChannel = n }
}

// WithMaxEnsembleSize sets the per-channel hard cap. Panics if n < 1.
func WithMaxEnsembleSize(n int) Option {
	if n < 1 {
		panic("boss: WithMaxEnsembleSize(n<1)")
	}
	return func(c *config) { c.maxEnsemble = n }
}

// WithTimeLimit sets the training budget and selects the Contract strategy.
// Panics if d <= 0.
func WithTimeLimit(d time.Duration) Option {
	if d <= 0 {
		panic("boss: WithTimeLimit(d<=0)")
	}
	return func(c *config) {
		c.timeLimit = d
		c.strategy = Contract
	}
}

// WithTimeLimitUnits is WithTimeLimit for amount × unit.
func WithTimeLimitUnits(unit TimeUnit, amount int) Option {
	d, err := Budget(unit, amount)
	if err != nil || d <= 0 {
		panic("boss: WithTimeLimitUnits(invalid)")
	}
	return WithTimeLimit(d)
}

// WithBaseClassifier makes every member delegate to a fresh base classifier
// instead of 1-NN. Panics on nil.
func WithBaseClassifier(f BaseFactory) Option {
	if f == nil {
		panic("boss: WithBaseClassifier(nil)")
	}
	return func(c *config) { c.base = f }
}

// WithAggregator sets the per-channel aggregator and selects RandomAggregated
// unless a time limit already selected Contract. Panics on nil.
func WithAggregator(f AggregatorFactory) Option {
	if f == nil {
		panic("boss: WithAggregator(nil)")
	}
	return func(c *config) {
		c.aggregator = f
		if c.strategy != Contract {
			c.strategy = RandomAggregated
		}
	}
}

// WithAggregatorFolds sets the fold count passed to aggregators implementing
// FoldSetter. Panics if n < 2.
func WithAggregatorFolds(n int) Option {
	if n < 2 {
		panic("boss: WithAggregatorFolds(n<2)")
	}
	return func(c *config) { c.folds = n }
}

// WithCheckpointDir enables checkpointing under root. Panics on "".
func WithCheckpointDir(root string) Option {
	if root == "" {
		panic("boss: WithCheckpointDir(\"\")")
	}
	return func(c *config) { c.checkpointDir = root }
}

// WithCheckpointCleanup controls deletion of the run directory after a
// successful training. Default true.
func WithCheckpointCleanup(on bool) Option {
	return func(c *config) { c.cleanup = on }
}

// WithTrainReport writes the leave-one-out train accuracy report to path
// after training. Panics on "".
func WithTrainReport(path string) Option {
	if path == "" {
		panic("boss: WithTrainReport(\"\")")
	}
	return func(c *config) {
		c.reportPath = path
		c.trainEstimate = true
	}
}

// WithTrainEstimate computes the train accuracy estimate after training
// without writing a report.
func WithTrainEstimate(on bool) Option {
	return func(c *config) { c.trainEstimate = on }
}

// WithLogger routes training events to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("boss: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithClock replaces time.Now for budget accounting. Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("boss: WithClock(nil)")
	}
	return func(c *config) { c.now = now }
}
