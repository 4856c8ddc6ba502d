// SPDX-License-Identifier: MIT

package boss

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/sfaboss/dataset"
	"github.com/katalvlaran/sfaboss/sfa"
)

// fitExhaustive runs the accuracy-thresholded search on every channel:
//
//	for norm in {true, false}:
//	  for window in grid:
//	    fit at word length 16, derive 14..8, keep the best by LOO accuracy (>=)
//	    admit if acc >= maxAcc·0.92 (and beats the worst member once at cap)
//	    on a new max, evict members below newMax·0.92
//	    while over cap, evict the lowest-accuracy member
//
// Complexity: O(C·2·W·(fit + 5·N²·|bag|)).
func (e *Ensemble) fitExhaustive() error {
	for c, part := range e.parts {
		ch := &e.channels[c]
		maxAcc, minMaxAcc := -1.0, -1.0

		for _, norm := range [...]bool{true, false} {
			for _, win := range e.grid.windows() {
				best, acc, err := e.bestWordLength(part, win, norm)
				if err != nil {
					return err
				}
				if !admits(acc, maxAcc, minMaxAcc, len(ch.members), e.cfg.maxEnsemble) {
					continue
				}

				best.Release()
				best.accuracy = acc
				ch.members = append(ch.members, best)
				e.log.Debug("member admitted",
					zap.Int("channel", c),
					zap.Stringer("params", best.params),
					zap.Float64("accuracy", acc))

				if acc > maxAcc {
					maxAcc = acc
					if n := ch.evictBelow(maxAcc * CorrectThreshold); n > 0 {
						e.log.Debug("members evicted", zap.Int("channel", c), zap.Int("count", n))
					}
				}
				for len(ch.members) > e.cfg.maxEnsemble {
					ch.evictWorst()
				}
				minMaxAcc = ch.minAccuracy()
			}
		}
	}

	return nil
}

// bestWordLength fits one window/normalisation at the longest word length and
// returns the derived member with the best leave-one-out accuracy. Ties go
// to the later (shorter) word length.
func (e *Ensemble) bestWordLength(part *dataset.Dataset, win int, norm bool) (*Individual, float64, error) {
	ind, err := NewIndividual(sfa.Params{
		WordLength:   WordLengths[0],
		AlphabetSize: AlphabetSize,
		WindowLength: win,
		Normalize:    norm,
	}, e.cfg.base)
	if err != nil {
		return nil, 0, err
	}
	if err := ind.Fit(part); err != nil {
		return nil, 0, err
	}

	var best *Individual
	bestAcc := -1.0
	for _, wl := range WordLengths {
		if ind, err = ind.ShortenTo(wl); err != nil {
			return nil, 0, err
		}
		acc, err := ind.looAccuracy()
		if err != nil {
			return nil, 0, err
		}
		if acc >= bestAcc {
			best, bestAcc = ind, acc
		}
	}

	return best, bestAcc, nil
}

// admits is the admission rule of the exhaustive search.
func admits(acc, maxAcc, minMaxAcc float64, size, capacity int) bool {
	if acc < maxAcc*CorrectThreshold {
		return false
	}
	if size >= capacity {
		return acc > minMaxAcc
	}
	return true
}

// evictBelow removes members with accuracy < threshold, keeping order.
func (ch *channelEnsemble) evictBelow(threshold float64) int {
	kept := ch.members[:0]
	for _, m := range ch.members {
		if m.accuracy >= threshold {
			kept = append(kept, m)
		}
	}
	n := len(ch.members) - len(kept)
	clear(ch.members[len(kept):])
	ch.members = kept

	return n
}

// evictWorst removes the first member with the lowest accuracy.
func (ch *channelEnsemble) evictWorst() {
	worst := 0
	for i, m := range ch.members {
		if m.accuracy < ch.members[worst].accuracy {
			worst = i
		}
	}
	ch.members = append(ch.members[:worst], ch.members[worst+1:]...)
}

// minAccuracy is the accuracy of the weakest member, -1 when empty.
func (ch *channelEnsemble) minAccuracy() float64 {
	if len(ch.members) == 0 {
		return -1
	}
	low := ch.members[0].accuracy
	for _, m := range ch.members[1:] {
		if m.accuracy < low {
			low = m.accuracy
		}
	}
	return low
}
