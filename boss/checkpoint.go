// SPDX-License-Identifier: MIT

package boss

import (
	"encoding"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/sfaboss/checkpoint"
	"github.com/katalvlaran/sfaboss/sfa"
)

// tag distinguishes run directories by strategy and its size parameter.
func (e *Ensemble) tag() string {
	switch e.cfg.strategy {
	case Contract:
		return fmt.Sprintf("RandomContract%d", e.cfg.timeLimit.Nanoseconds())
	case RandomAggregated:
		return fmt.Sprintf("RandomAggregated%d", e.target)
	default:
		return fmt.Sprintf("Random%d", e.target)
	}
}

// checkpoint persists every member not yet on disk, channel by channel and
// oldest first, then the metadata. A failed save stops the catch-up and is
// retried at the next checkpoint; the metadata is only replaced once every
// member is durable, so the stored draw state always matches the stored
// members. Time spent here is excluded from the budget.
func (e *Ensemble) checkpoint(next int) {
	t0 := e.cfg.now()
	consumed := e.elapsed()
	defer func() { e.overhead += e.cfg.now().Sub(t0) }()

	for c := range e.channels {
		members := e.channels[c].members
		for pos := e.durable[c]; pos < len(members); pos++ {
			rec, err := members[pos].record()
			if err == nil {
				err = e.store.SaveIndividual(c, pos, rec)
			}
			if err != nil {
				e.log.Warn("checkpoint skipped", zap.Int("channel", c), zap.Int("member", pos), zap.Error(err))
				return
			}
			e.durable[c] = pos + 1
		}
	}

	meta, err := e.metadata(next, consumed)
	if err == nil {
		err = e.store.SaveEnsemble(meta)
	}
	if err != nil {
		e.log.Warn("checkpoint metadata not written", zap.String("dir", e.store.Dir()), zap.Error(err))
	}
}

func (e *Ensemble) metadata(next int, consumed time.Duration) (*checkpoint.EnsembleRecord, error) {
	state, err := e.pcg.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return &checkpoint.EnsembleRecord{
		Dataset:         e.train.Name,
		Seed:            e.cfg.seed,
		Strategy:        e.cfg.strategy.String(),
		TargetSize:      e.target,
		MaxEnsembleSize: e.cfg.maxEnsemble,
		TimeLimit:       e.cfg.timeLimit,
		Multivariate:    e.multivariate,
		NumClasses:      e.numClasses,
		Counts:          slices.Clone(e.durable),
		NextChannel:     next,
		RNG:             state,
		Consumed:        consumed,
	}, nil
}

// restore loads metadata and every referenced member, deletes unreferenced
// member files, and resumes the draw generator, the budget and the next
// channel. Any failure is fatal to Fit.
func (e *Ensemble) restore() error {
	meta, err := e.store.LoadEnsemble()
	if err != nil {
		return err
	}
	if meta.Seed != e.cfg.seed || meta.Strategy != e.cfg.strategy.String() ||
		meta.NumClasses != e.numClasses || meta.Multivariate != e.multivariate ||
		len(meta.Counts) != len(e.channels) ||
		meta.NextChannel < 0 || meta.NextChannel >= len(e.channels) {
		return fmt.Errorf("%s: %w", e.store.Dir(), ErrCheckpointMismatch)
	}

	for c, n := range meta.Counts {
		members := make([]*Individual, 0, n)
		for pos := 0; pos < n; pos++ {
			rec, err := e.store.LoadIndividual(c, pos)
			if err != nil {
				return err
			}
			ind, err := individualFromRecord(rec, e.cfg.base)
			if err != nil {
				return fmt.Errorf("%s: %w", checkpoint.IndividualName(c, pos), err)
			}
			members = append(members, ind)
		}
		e.channels[c].members = members
	}

	removed, err := e.store.Sweep(meta.Counts)
	if err != nil {
		return err
	}
	if err := e.pcg.UnmarshalBinary(meta.RNG); err != nil {
		return fmt.Errorf("draw state: %w", err)
	}

	e.durable = slices.Clone(meta.Counts)
	e.consumed = meta.Consumed
	e.resume = meta.NextChannel
	e.log.Info("checkpoint restored",
		zap.String("dir", e.store.Dir()),
		zap.Int("members", e.Size()),
		zap.Duration("consumed", e.consumed),
		zap.Int("swept", len(removed)))

	return nil
}

// record snapshots a fitted member.
func (ind *Individual) record() (*checkpoint.IndividualRecord, error) {
	if !ind.Fitted() {
		return nil, ErrNotFitted
	}
	rec := &checkpoint.IndividualRecord{
		WordLength:    ind.params.WordLength,
		AlphabetSize:  ind.params.AlphabetSize,
		WindowLength:  ind.params.WindowLength,
		Normalize:     ind.params.Normalize,
		RawWordLength: ind.rawLength,
		Accuracy:      ind.accuracy,
		NumClasses:    ind.numClasses,
		Breakpoints:   ind.bp,
		Labels:        ind.labels,
	}

	rec.Bags = make([]checkpoint.BagRecord, len(ind.bags))
	for i, b := range ind.bags {
		words := make([]uint32, 0, len(b.Counts))
		for w := range b.Counts {
			words = append(words, uint32(w))
		}
		slices.Sort(words)
		counts := make([]int, len(words))
		for j, w := range words {
			counts[j] = b.Counts[sfa.Word(w)]
		}
		rec.Bags[i] = checkpoint.BagRecord{Class: b.Class, Words: words, Counts: counts}
	}

	if ind.words != nil {
		rec.RawWords = make([][]uint32, len(ind.words))
		for i, ws := range ind.words {
			rec.RawWords[i] = make([]uint32, len(ws))
			for j, w := range ws {
				rec.RawWords[i][j] = uint32(w)
			}
		}
	}

	if ind.base != nil {
		m, ok := ind.base.(encoding.BinaryMarshaler)
		if !ok {
			return nil, ErrNotSerializable
		}
		state, err := m.MarshalBinary()
		if err != nil {
			return nil, err
		}
		rec.Base = state
		rec.Vocabulary = make([]uint32, len(ind.vocab))
		for i, w := range ind.vocab {
			rec.Vocabulary[i] = uint32(w)
		}
	}

	return rec, nil
}

// individualFromRecord rebuilds a member saved by record.
func individualFromRecord(rec *checkpoint.IndividualRecord, newBase BaseFactory) (*Individual, error) {
	p := sfa.Params{
		WordLength:   rec.WordLength,
		AlphabetSize: rec.AlphabetSize,
		WindowLength: rec.WindowLength,
		Normalize:    rec.Normalize,
	}
	ind, err := NewIndividual(p, newBase)
	if err != nil {
		return nil, err
	}
	bp := sfa.Breakpoints(rec.Breakpoints)
	if !bp.Valid() {
		return nil, sfa.ErrBreakpoints
	}

	ind.rawLength = rec.RawWordLength
	ind.accuracy = rec.Accuracy
	ind.numClasses = rec.NumClasses
	ind.bp = bp
	ind.labels = rec.Labels

	if len(rec.Bags) > 0 {
		ind.bags = make([]sfa.Bag, len(rec.Bags))
		for i, br := range rec.Bags {
			b := sfa.NewBag(br.Class)
			for j, w := range br.Words {
				b.Counts[sfa.Word(w)] = br.Counts[j]
			}
			ind.bags[i] = b
		}
	}
	if len(rec.RawWords) > 0 {
		ind.words = make([][]sfa.Word, len(rec.RawWords))
		for i, ws := range rec.RawWords {
			ind.words[i] = make([]sfa.Word, len(ws))
			for j, w := range ws {
				ind.words[i][j] = sfa.Word(w)
			}
		}
	}

	if rec.Base != nil {
		if newBase == nil {
			return nil, ErrCheckpointMismatch
		}
		base := newBase()
		u, ok := base.(encoding.BinaryUnmarshaler)
		if !ok {
			return nil, ErrNotSerializable
		}
		if err := u.UnmarshalBinary(rec.Base); err != nil {
			return nil, err
		}
		ind.base = base
		ind.vocab = make([]sfa.Word, len(rec.Vocabulary))
		ind.index = make(map[sfa.Word]int, len(rec.Vocabulary))
		for i, w := range rec.Vocabulary {
			ind.vocab[i] = sfa.Word(w)
			ind.index[sfa.Word(w)] = i
		}
	}

	return ind, nil
}
