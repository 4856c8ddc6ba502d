// SPDX-License-Identifier: MIT

package sfa

import (
	"fmt"
	"math"
	"sort"
)

// Breakpoints holds per-letter bin upper bounds: bp[letter][bin]. Every row is
// ascending and ends with +Inf.
type Breakpoints [][]float64

// Breakpoints learns the quantisation table with Multiple Coefficient
// Binning:
//  1. cut every training series into disjoint windows and take their DFT;
//  2. pool each coefficient position over all windows of all series;
//  3. round to 2 decimals, sort, pick AlphabetSize−1 equi-depth cut points;
//  4. close each row with +Inf.
//
// Complexity: O(N·(n/w)·w log w + L·P log P), P = pooled windows.
func (t *Transform) Breakpoints(train [][]float64) (Breakpoints, error) {
	if len(train) == 0 {
		return nil, ErrEmptyInput
	}

	var dfts [][]float64
	for i, s := range train {
		if err := t.checkLength(s); err != nil {
			return nil, fmt.Errorf("series %d: %w", i, err)
		}
		for _, win := range t.disjointWindows(s) {
			dfts = append(dfts, t.DFT(win))
		}
	}

	a := t.p.AlphabetSize
	depth := float64(len(dfts)) / float64(a)
	column := make([]float64, len(dfts))
	bp := make(Breakpoints, t.p.WordLength)

	for letter := range bp {
		for i, d := range dfts {
			column[i] = round2(d[letter])
		}
		sort.Float64s(column)

		row := make([]float64, a)
		binIndex := 0.0
		for b := 0; b < a-1; b++ {
			binIndex += depth
			row[b] = column[int(binIndex)]
		}
		row[a-1] = math.Inf(1)
		bp[letter] = row
	}

	return bp, nil
}

// round2 rounds half up to two decimals.
func round2(x float64) float64 {
	return math.Floor(x*100+0.5) / 100
}

// Valid reports whether every row is ascending and closed by +Inf.
func (bp Breakpoints) Valid() bool {
	for _, row := range bp {
		if len(row) == 0 || !math.IsInf(row[len(row)-1], 1) {
			return false
		}
		if !sort.Float64sAreSorted(row) {
			return false
		}
	}
	return len(bp) > 0
}

func (bp Breakpoints) fits(p Params) error {
	if len(bp) < p.WordLength {
		return fmt.Errorf("%d rows for word length %d: %w", len(bp), p.WordLength, ErrBreakpoints)
	}
	for _, row := range bp[:p.WordLength] {
		if len(row) != p.AlphabetSize {
			return fmt.Errorf("%d bins for alphabet %d: %w", len(row), p.AlphabetSize, ErrBreakpoints)
		}
	}
	return nil
}
