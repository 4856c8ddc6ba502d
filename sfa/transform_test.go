package sfa_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/sfaboss/sfa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-8

func randomSeries(r *rand.Rand, n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = r.NormFloat64() + math.Sin(float64(i)/3)
	}
	return s
}

// naiveDFT is the textbook O(w·l) reference, normalised like the transform.
func naiveDFT(window []float64, pairs, start int) []float64 {
	w := len(window)
	var sum, sq float64
	for _, v := range window {
		sum += v
		sq += v * v
	}
	mean := sum / float64(w)
	std := 1.0
	if v := sq/float64(w) - mean*mean; v > 1e-12 {
		std = math.Sqrt(v)
	}
	f := 1 / math.Sqrt(float64(w)) / std

	out := make([]float64, 2*pairs)
	for k := start; k < start+pairs; k++ {
		var re, im float64
		for j, x := range window {
			re += x * math.Cos(2*math.Pi*float64(j*k)/float64(w))
			im -= x * math.Sin(2*math.Pi*float64(j*k)/float64(w))
		}
		out[2*(k-start)] = re * f
		out[2*(k-start)+1] = im * f
	}
	return out
}

func TestParamsValidate(t *testing.T) {
	ok := sfa.Params{WordLength: 16, AlphabetSize: 4, WindowLength: 10, Normalize: true}
	assert.NoError(t, ok.Validate())

	bad := ok
	bad.WordLength = 18
	assert.ErrorIs(t, bad.Validate(), sfa.ErrWordLength)
	bad.WordLength = 7
	assert.ErrorIs(t, bad.Validate(), sfa.ErrWordLength)

	bad = ok
	bad.AlphabetSize = 5
	assert.ErrorIs(t, bad.Validate(), sfa.ErrAlphabetSize)

	bad = ok
	bad.WindowLength = 8
	assert.ErrorIs(t, bad.Validate(), sfa.ErrWindowLength)
}

func TestDisjointWindows_AnchoredToEnd(t *testing.T) {
	tr, err := sfa.New(sfa.Params{WordLength: 4, AlphabetSize: 4, WindowLength: 10})
	require.NoError(t, err)

	series := make([]float64, 25)
	for i := range series {
		series[i] = float64(i)
	}
	wins := tr.DisjointWindows(series)
	require.Len(t, wins, 3)
	assert.Equal(t, 0.0, wins[0][0])
	assert.Equal(t, 10.0, wins[1][0])
	assert.Equal(t, 15.0, wins[2][0], "last window overlaps backwards from the end")
	assert.Equal(t, 24.0, wins[2][9])
}

func TestDFT_MatchesNaive(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for _, norm := range []bool{true, false} {
		tr, err := sfa.New(sfa.Params{WordLength: 16, AlphabetSize: 4, WindowLength: 12, Normalize: norm})
		require.NoError(t, err)

		start := 0
		if norm {
			start = 1
		}
		win := randomSeries(r, 12)
		assert.InDeltaSlice(t, naiveDFT(win, 8, start), tr.DFT(win), tol)
	}
}

func TestMFT_MatchesFreshTransformPerWindow(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	series := randomSeries(r, 120)

	for _, norm := range []bool{true, false} {
		p := sfa.Params{WordLength: 8, AlphabetSize: 4, WindowLength: 16, Normalize: norm}
		tr, err := sfa.New(p)
		require.NoError(t, err)

		mft, err := tr.MFT(series)
		require.NoError(t, err)
		require.Len(t, mft, len(series)-p.WindowLength+1)

		start := 0
		if norm {
			start = 1
		}
		for s, row := range mft {
			want := naiveDFT(series[s:s+p.WindowLength], p.WordLength/2, start)
			assert.InDeltaSlice(t, want, row, tol, "window %d norm=%v", s, norm)
		}
	}
}

func TestMFT_WindowEqualsSeries(t *testing.T) {
	tr, err := sfa.New(sfa.Params{WordLength: 4, AlphabetSize: 4, WindowLength: 10})
	require.NoError(t, err)

	mft, err := tr.MFT(randomSeries(rand.New(rand.NewSource(1)), 10))
	require.NoError(t, err)
	assert.Len(t, mft, 1)

	_, err = tr.MFT(make([]float64, 9))
	assert.ErrorIs(t, err, sfa.ErrSeriesTooShort)
}

func TestBreakpoints_SortedAndClosedByInf(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	train := make([][]float64, 15)
	for i := range train {
		train[i] = randomSeries(r, 50)
	}

	for _, p := range []sfa.Params{
		{WordLength: 16, AlphabetSize: 4, WindowLength: 10, Normalize: true},
		{WordLength: 8, AlphabetSize: 4, WindowLength: 23, Normalize: false},
		{WordLength: 4, AlphabetSize: 2, WindowLength: 50, Normalize: true},
	} {
		tr, err := sfa.New(p)
		require.NoError(t, err)

		bp, err := tr.Breakpoints(train)
		require.NoError(t, err)
		require.Len(t, bp, p.WordLength)
		assert.True(t, bp.Valid(), "%v", p)
		for _, row := range bp {
			require.Len(t, row, p.AlphabetSize)
			assert.True(t, math.IsInf(row[p.AlphabetSize-1], 1))
			for _, v := range row[:p.AlphabetSize-1] {
				assert.Equal(t, math.Round(v*100)/100, v, "cut points are rounded to 2 decimals")
			}
		}
	}
}

func TestBreakpoints_Errors(t *testing.T) {
	tr, err := sfa.New(sfa.Params{WordLength: 8, AlphabetSize: 4, WindowLength: 10})
	require.NoError(t, err)

	_, err = tr.Breakpoints(nil)
	assert.ErrorIs(t, err, sfa.ErrEmptyInput)

	_, err = tr.Breakpoints([][]float64{make([]float64, 5)})
	assert.ErrorIs(t, err, sfa.ErrSeriesTooShort)

	_, err = tr.Words(sfa.Breakpoints{{0, math.Inf(1)}}, make([]float64, 20))
	assert.ErrorIs(t, err, sfa.ErrBreakpoints)
}

func TestWord_FirstBinWithUpperBoundAtLeastValue(t *testing.T) {
	tr, err := sfa.New(sfa.Params{WordLength: 2, AlphabetSize: 4, WindowLength: 4})
	require.NoError(t, err)

	inf := math.Inf(1)
	bp := sfa.Breakpoints{{-1, 0, 1, inf}, {-1, 0, 1, inf}}
	assert.Equal(t, []int{0, 1}, tr.Word(bp, []float64{-1, -0.5}).Letters(2))
	assert.Equal(t, []int{2, 3}, tr.Word(bp, []float64{1, 7}).Letters(2))
}

func TestConstantSeries_SingleWordBag(t *testing.T) {
	series := make([]float64, 40)
	for i := range series {
		series[i] = 5
	}

	for _, norm := range []bool{true, false} {
		tr, err := sfa.New(sfa.Params{WordLength: 8, AlphabetSize: 4, WindowLength: 10, Normalize: norm})
		require.NoError(t, err)

		bp, err := tr.Breakpoints([][]float64{series, series})
		require.NoError(t, err)

		words, err := tr.Words(bp, series)
		require.NoError(t, err)
		require.Len(t, words, 31)

		bag := sfa.BagFrom(words, 0)
		assert.Equal(t, 1, bag.Len(), "norm=%v", norm)
		assert.Equal(t, 1, bag.Total(), "all windows collapse into one counted word")
	}
}

func TestConstantSeries_InexactValues(t *testing.T) {
	for _, value := range []float64{0.1, 1.1, 3.7, 123.456} {
		series := make([]float64, 50)
		for i := range series {
			series[i] = value
		}

		for _, w := range []int{10, 13, 24, 37} {
			for _, norm := range []bool{true, false} {
				tr, err := sfa.New(sfa.Params{WordLength: 8, AlphabetSize: 4, WindowLength: w, Normalize: norm})
				require.NoError(t, err)

				bp, err := tr.Breakpoints([][]float64{series, series})
				require.NoError(t, err)

				bag, err := tr.Bag(bp, series, 0)
				require.NoError(t, err)
				assert.Equal(t, 1, bag.Len(), "value=%v w=%d norm=%v", value, w, norm)
				assert.Equal(t, 1, bag.Total(), "value=%v w=%d norm=%v", value, w, norm)
			}
		}
	}
}

func TestMFT_ConstantWindowsKeepOnlyMean(t *testing.T) {
	series := make([]float64, 30)
	for i := range series {
		series[i] = 1.1
	}
	tr, err := sfa.New(sfa.Params{WordLength: 8, AlphabetSize: 4, WindowLength: 13})
	require.NoError(t, err)

	rows, err := tr.MFT(series)
	require.NoError(t, err)
	for s, row := range rows {
		assert.InDelta(t, 1.1*math.Sqrt(13), row[0], tol, "window %d", s)
		for k := 1; k < len(row); k++ {
			assert.Zero(t, row[k], "window %d coefficient %d", s, k)
		}
	}
}
