// SPDX-License-Identifier: MIT

package boss

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sfaboss/dataset"
	"github.com/katalvlaran/sfaboss/sfa"
)

// Individual is one per-configuration BOSS classifier: breakpoints, the raw
// word sequence of every training series, their bags, and optionally a base
// classifier fitted on the bag histograms.
//
// Lifecycle: NewIndividual → Fit → (ShortenTo)* → Release. After Release the
// raw words are gone and ShortenTo fails with ErrReleased.
type Individual struct {
	params    sfa.Params
	rawLength int // word length of the cached raw words

	bp         sfa.Breakpoints
	words      [][]sfa.Word
	bags       []sfa.Bag
	labels     []int
	numClasses int
	accuracy   float64

	newBase BaseFactory
	base    BaseClassifier
	vocab   []sfa.Word
	index   map[sfa.Word]int

	releaseAfterFit bool
	tr              *sfa.Transform
}

// NewIndividual validates p and returns an unfitted member. newBase may be
// nil for 1-NN over bags.
func NewIndividual(p sfa.Params, newBase BaseFactory) (*Individual, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Individual{params: p, rawLength: p.WordLength, newBase: newBase}, nil
}

// Params returns the current configuration.
func (ind *Individual) Params() sfa.Params { return ind.params }

// Accuracy returns the leave-one-out accuracy recorded by the exhaustive
// search; other strategies leave it at 0.
func (ind *Individual) Accuracy() float64 { return ind.accuracy }

// Fitted reports whether Fit has completed.
func (ind *Individual) Fitted() bool { return ind.bp != nil }

// Fit learns breakpoints from train, caches every series' words and bags,
// and fits the base classifier if one is configured.
//
// Complexity: O(N·(n·l + w log w)).
func (ind *Individual) Fit(train *dataset.Dataset) error {
	if err := train.Validate(); err != nil {
		return err
	}
	if train.NumChannels() != 1 {
		return fmt.Errorf("%d channels: %w", train.NumChannels(), ErrNotUnivariate)
	}

	tr, err := ind.transform()
	if err != nil {
		return err
	}
	series := make([][]float64, train.Len())
	for i, in := range train.Instances {
		series[i] = in.Series()
	}
	bp, err := tr.Breakpoints(series)
	if err != nil {
		return err
	}

	ind.bp = bp
	ind.rawLength = ind.params.WordLength
	ind.numClasses = train.NumClasses()
	ind.labels = train.Labels()
	ind.words = make([][]sfa.Word, len(series))
	ind.bags = make([]sfa.Bag, len(series))
	for i, s := range series {
		if ind.words[i], err = tr.Words(bp, s); err != nil {
			return err
		}
		ind.bags[i] = sfa.BagFrom(ind.words[i], ind.labels[i])
	}

	if ind.newBase != nil {
		if err := ind.fitBase(); err != nil {
			return err
		}
	}
	if ind.releaseAfterFit {
		ind.Release()
	}

	return nil
}

// fitBase builds the histogram table over the vocabulary (words in order of
// first discovery) and fits a fresh base classifier on it.
func (ind *Individual) fitBase() error {
	ind.vocab = nil
	ind.index = make(map[sfa.Word]int)
	for i := range ind.bags {
		ind.discover(i)
	}

	features := make([][]float64, len(ind.bags))
	for i, b := range ind.bags {
		features[i] = ind.project(b)
	}
	ind.base = ind.newBase()

	return ind.base.Fit(features, ind.labels, ind.numClasses)
}

// discover appends the unseen words of series i in sequence order.
func (ind *Individual) discover(i int) {
	add := func(w sfa.Word) {
		if _, ok := ind.index[w]; !ok {
			ind.index[w] = len(ind.vocab)
			ind.vocab = append(ind.vocab, w)
		}
	}
	for _, w := range ind.words[i] {
		add(w.Shorten(ind.rawLength, ind.params.WordLength))
	}
}

// project maps a bag onto the vocabulary; unseen words are dropped.
func (ind *Individual) project(b sfa.Bag) []float64 {
	row := make([]float64, len(ind.vocab))
	for w, c := range b.Counts {
		if j, ok := ind.index[w]; ok {
			row[j] = float64(c)
		}
	}
	return row
}

// Bag transforms one instance under this member's configuration.
func (ind *Individual) Bag(inst dataset.Instance) (sfa.Bag, error) {
	if !ind.Fitted() {
		return sfa.Bag{}, ErrNotFitted
	}
	tr, err := ind.transform()
	if err != nil {
		return sfa.Bag{}, err
	}
	return tr.Bag(ind.bp, inst.Series(), inst.Class)
}

// Classify predicts the class of inst: nearest training bag under the BOSS
// distance (first found wins ties), or the base classifier's answer.
func (ind *Individual) Classify(inst dataset.Instance) (int, error) {
	bag, err := ind.Bag(inst)
	if err != nil {
		return 0, err
	}
	if ind.base != nil {
		return ind.base.Classify(ind.project(bag))
	}
	return ind.nearest(bag, -1)
}

// ClassifyHoldingOut classifies training series i against every stored bag
// except its own. Never refits.
func (ind *Individual) ClassifyHoldingOut(i int) (int, error) {
	if !ind.Fitted() {
		return 0, ErrNotFitted
	}
	if ind.bags == nil {
		return 0, ErrReleased
	}
	if i < 0 || i >= len(ind.bags) {
		return 0, fmt.Errorf("index %d of %d: %w", i, len(ind.bags), ErrIndex)
	}
	if ind.base != nil {
		return ind.base.Classify(ind.project(ind.bags[i]))
	}
	return ind.nearest(ind.bags[i], i)
}

// Distribution returns class probabilities for inst: one-hot for 1-NN, the
// base classifier's output otherwise.
func (ind *Individual) Distribution(inst dataset.Instance) ([]float64, error) {
	if ind.base != nil {
		bag, err := ind.Bag(inst)
		if err != nil {
			return nil, err
		}
		return ind.base.Distribution(ind.project(bag))
	}
	c, err := ind.Classify(inst)
	if err != nil {
		return nil, err
	}
	dist := make([]float64, ind.numClasses)
	dist[c] = 1

	return dist, nil
}

// nearest returns the class of the closest stored bag, skipping index skip.
func (ind *Individual) nearest(query sfa.Bag, skip int) (int, error) {
	if ind.bags == nil {
		return 0, ErrReleased
	}
	best := math.Inf(1)
	class := -1
	for j, b := range ind.bags {
		if j == skip {
			continue
		}
		if d := Distance(query, b, best); d < best {
			best = d
			class = b.Class
		}
	}
	if class < 0 {
		return 0, ErrNoCandidates
	}
	return class, nil
}

// ShortenTo derives a member at a shorter word length from the cached raw
// words, without recomputing any Fourier transform. Equal length returns
// ind itself.
//
// Complexity: O(total windows).
func (ind *Individual) ShortenTo(length int) (*Individual, error) {
	if length == ind.params.WordLength {
		return ind, nil
	}
	if length < sfa.MinWordLength || length > ind.rawLength || length%2 != 0 {
		return nil, fmt.Errorf("%d (original %d): %w", length, ind.rawLength, ErrWordLength)
	}
	if !ind.Fitted() {
		return nil, ErrNotFitted
	}
	if ind.words == nil {
		return nil, ErrReleased
	}

	p := ind.params
	p.WordLength = length
	out := &Individual{
		params:     p,
		rawLength:  ind.rawLength,
		bp:         ind.bp,
		words:      ind.words,
		labels:     ind.labels,
		numClasses: ind.numClasses,
		newBase:    ind.newBase,
		bags:       make([]sfa.Bag, len(ind.words)),
	}
	for i, w := range ind.words {
		out.bags[i] = sfa.BagFromShortened(w, ind.rawLength, length, ind.labels[i])
	}
	if out.newBase != nil {
		if err := out.fitBase(); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Release drops the raw word cache, and the bags too when a base classifier
// holds the fitted state. Irreversible.
func (ind *Individual) Release() {
	ind.words = nil
	if ind.base != nil {
		ind.bags = nil
	}
}

// looAccuracy is the leave-one-out training accuracy.
func (ind *Individual) looAccuracy() (float64, error) {
	if len(ind.labels) == 0 {
		return 0, ErrNotFitted
	}
	correct := 0
	for i, want := range ind.labels {
		got, err := ind.ClassifyHoldingOut(i)
		if err != nil {
			return 0, err
		}
		if got == want {
			correct++
		}
	}
	return float64(correct) / float64(len(ind.labels)), nil
}

// transform lazily builds the SFA transform for the current word length;
// breakpoints learned at a longer length cover it.
func (ind *Individual) transform() (*sfa.Transform, error) {
	if ind.tr == nil || ind.tr.Params() != ind.params {
		tr, err := sfa.New(ind.params)
		if err != nil {
			return nil, err
		}
		ind.tr = tr
	}
	return ind.tr, nil
}
