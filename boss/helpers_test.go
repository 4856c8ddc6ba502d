package boss_test

import (
	"encoding/json"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sfaboss/boss"
	"github.com/katalvlaran/sfaboss/builder"
	"github.com/katalvlaran/sfaboss/dataset"
)

// labeled returns a deterministic pulse-vs-chirp training set.
func labeled(t testing.TB, perClass, length int, seed int64) *dataset.Dataset {
	t.Helper()
	d, err := builder.BuildLabeled(2, perClass, length, seed, builder.WithNoise(0.1), builder.WithName("waves"))
	require.NoError(t, err)
	return d
}

// stepClock advances by step on every reading.
type stepClock struct {
	mu   sync.Mutex
	t    time.Time
	step time.Duration
}

func newStepClock(step time.Duration) *stepClock {
	return &stepClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), step: step}
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(c.step)
	return c.t
}

// jumpClock ticks one millisecond per reading for the first 'after'
// readings, then jumps an hour ahead: a run that dies right after a
// checkpoint, as far as the budget can tell.
type jumpClock struct {
	calls int
	after int
	base  time.Time
}

func (c *jumpClock) Now() time.Time {
	c.calls++
	if c.calls > c.after {
		return c.base.Add(time.Hour)
	}
	return c.base.Add(time.Duration(c.calls) * time.Millisecond)
}

// centroid is a nearest-centroid base classifier that can be checkpointed.
type centroid struct {
	Means [][]float64 `json:"means"`
}

func newCentroid() boss.BaseClassifier { return &centroid{} }

func (c *centroid) Fit(features [][]float64, labels []int, numClasses int) error {
	c.Means = make([][]float64, numClasses)
	counts := make([]float64, numClasses)
	for i, row := range features {
		k := labels[i]
		if c.Means[k] == nil {
			c.Means[k] = make([]float64, len(row))
		}
		for j, v := range row {
			c.Means[k][j] += v
		}
		counts[k]++
	}
	for k, m := range c.Means {
		for j := range m {
			m[j] /= counts[k]
		}
	}
	return nil
}

func (c *centroid) Classify(features []float64) (int, error) {
	best, class := math.Inf(1), 0
	for k, m := range c.Means {
		if m == nil {
			continue
		}
		var d float64
		for j, v := range m {
			d += (features[j] - v) * (features[j] - v)
		}
		if d < best {
			best, class = d, k
		}
	}
	return class, nil
}

func (c *centroid) Distribution(features []float64) ([]float64, error) {
	k, err := c.Classify(features)
	if err != nil {
		return nil, err
	}
	dist := make([]float64, len(c.Means))
	dist[k] = 1
	return dist, nil
}

func (c *centroid) MarshalBinary() ([]byte, error)    { return json.Marshal(c) }
func (c *centroid) UnmarshalBinary(data []byte) error { return json.Unmarshal(data, c) }

// plainBase cannot be checkpointed.
type plainBase struct{ c centroid }

func newPlainBase() boss.BaseClassifier { return &plainBase{} }

func (p *plainBase) Fit(features [][]float64, labels []int, numClasses int) error {
	return p.c.Fit(features, labels, numClasses)
}
func (p *plainBase) Classify(features []float64) (int, error) { return p.c.Classify(features) }
func (p *plainBase) Distribution(features []float64) ([]float64, error) {
	return p.c.Distribution(features)
}

// vote is an aggregator that fits its members and averages their
// distributions with equal weight.
type vote struct {
	members []*boss.Individual
	folds   int
	fitted  bool
}

func (v *vote) SetMembers(members []*boss.Individual) { v.members = members }
func (v *vote) SetFolds(folds int)                    { v.folds = folds }

func (v *vote) Fit(channel *dataset.Dataset) error {
	for _, m := range v.members {
		if err := m.Fit(channel); err != nil {
			return err
		}
	}
	v.fitted = true
	return nil
}

func (v *vote) Distribution(inst dataset.Instance) ([]float64, error) {
	var out []float64
	for _, m := range v.members {
		d, err := m.Distribution(inst)
		if err != nil {
			return nil, err
		}
		if out == nil {
			out = make([]float64, len(d))
		}
		for k := range d {
			out[k] += d[k] / float64(len(v.members))
		}
	}
	return out, nil
}
