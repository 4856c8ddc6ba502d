// SPDX-License-Identifier: MIT

package boss

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/sfaboss/sfa"
)

// Draw streams derived from the user seed.
const (
	streamPCGHi uint64 = 1
	streamPCGLo uint64 = 2
)

// newDrawSource returns the PCG behind all random configuration draws. Its
// binary state goes into the checkpoint, so a resumed run continues the
// same sequence.
func newDrawSource(seed int64) *rand.PCG {
	return rand.NewPCG(uint64(deriveSeed(seed, streamPCGHi)), uint64(deriveSeed(seed, streamPCGLo)))
}

// deriveSeed mixes a parent seed and a stream id with the SplitMix64
// finaliser.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// windowGrid is the stepped window range shared by all strategies.
type windowGrid struct {
	min, max int
	inc      int
	searches int // number of steps a random draw may take
}

// newWindowGrid derives the grid for series of length n:
// searches = n/4, inc = ceil((n−MinWindow)/(n/4)) with a floor of 1.
func newWindowGrid(n int) (windowGrid, error) {
	if n < MinWindow {
		return windowGrid{}, fmt.Errorf("length %d < %d: %w", n, MinWindow, ErrSeriesTooShort)
	}
	searches := float64(n) / 4
	inc := int(math.Ceil(float64(n-MinWindow) / searches))
	if inc < 1 {
		inc = 1
	}
	return windowGrid{min: MinWindow, max: n, inc: inc, searches: int(searches)}, nil
}

// windows lists every window length of the exhaustive search.
func (g windowGrid) windows() []int {
	var out []int
	for w := g.min; w <= g.max; w += g.inc {
		out = append(out, w)
	}
	return out
}

// draw picks word length, window and normalisation uniformly.
func (g windowGrid) draw(r *rand.Rand) sfa.Params {
	wl := WordLengths[r.IntN(len(WordLengths))]
	win := g.min + g.inc*r.IntN(g.searches+1)
	if win > g.max {
		win = g.max
	}
	return sfa.Params{
		WordLength:   wl,
		AlphabetSize: AlphabetSize,
		WindowLength: win,
		Normalize:    r.IntN(2) == 1,
	}
}
