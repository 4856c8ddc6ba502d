package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sfaboss/builder"
)

func TestGenerators_LengthAndDeterminism(t *testing.T) {
	t.Parallel()

	gens := map[string]func(int, int64, ...builder.BuilderOption) []float64{
		"pulse":    builder.BuildPulse,
		"triangle": builder.BuildTriangle,
		"chirp":    builder.BuildAudioChirp,
	}
	for name, gen := range gens {
		t.Run(name, func(t *testing.T) {
			a := gen(64, 3, builder.WithNoise(0.1))
			b := gen(64, 3, builder.WithNoise(0.1))
			require.Len(t, a, 64)
			assert.Equal(t, a, b, "same seed, same series")

			c := gen(64, 4, builder.WithNoise(0.1))
			assert.NotEqual(t, a, c, "different seed, different noise")

			assert.Nil(t, gen(0, 3))
		})
	}
}

func TestBuildPulse_Shape(t *testing.T) {
	t.Parallel()

	// Period 8, duty 0.5: four samples on, four off.
	y := builder.BuildPulse(16, 0, builder.WithAmplitude(2))
	want := []float64{2, 2, 2, 2, 0, 0, 0, 0, 2, 2, 2, 2, 0, 0, 0, 0}
	assert.Equal(t, want, y)

	// Doubling the frequency halves the period.
	y = builder.BuildPulse(8, 0, builder.WithFrequency(2))
	assert.Equal(t, []float64{1, 1, 0, 0, 1, 1, 0, 0}, y)

	// Trend adds k*i.
	y = builder.BuildPulse(8, 0, builder.WithTrend(1))
	assert.Equal(t, []float64{1, 2, 3, 4, 4, 5, 6, 7}, y)
}

func TestBuildTriangle_Range(t *testing.T) {
	t.Parallel()

	for _, v := range builder.BuildTriangle(40, 0, builder.WithAmplitude(3)) {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 3.0)
	}
}

func TestBuildAudioChirp_Amplitude(t *testing.T) {
	t.Parallel()

	for _, v := range builder.BuildAudioChirp(100, 0, builder.WithAmplitude(0.5)) {
		assert.LessOrEqual(t, math.Abs(v), 0.5+1e-12)
	}
}

func TestBuildOHLCSeries_Invariant(t *testing.T) {
	t.Parallel()

	o, h, l, c := builder.BuildOHLCSeries(30, 9)
	require.Len(t, o, 30)
	for d := range o {
		assert.LessOrEqual(t, l[d], math.Min(o[d], c[d]))
		assert.GreaterOrEqual(t, h[d], math.Max(o[d], c[d]))
		if d > 0 {
			assert.Equal(t, c[d-1], o[d], "open continues previous close")
		}
	}

	o, _, _, _ = builder.BuildOHLCSeries(0, 9)
	assert.Nil(t, o)
}

func TestBuildLabeled(t *testing.T) {
	t.Parallel()

	d, err := builder.BuildLabeled(3, 4, 32, 1, builder.WithName("waves"))
	require.NoError(t, err)
	assert.Equal(t, "waves", d.Name)
	assert.Equal(t, 12, d.Len())
	assert.Equal(t, 3, d.NumClasses())
	assert.Equal(t, 32, d.SeriesLength())
	assert.Equal(t, d.NumAttributes()-1, d.ClassIndex)
	assert.Equal(t, []int{0, 1, 2, 0, 1, 2, 0, 1, 2, 0, 1, 2}, d.Labels())
	assert.NotEqual(t, d.Instances[1].Series(), d.Instances[4].Series(), "random phase per instance")

	again, err := builder.BuildLabeled(3, 4, 32, 1, builder.WithName("waves"))
	require.NoError(t, err)
	assert.Equal(t, d, again)

	_, err = builder.BuildLabeled(4, 4, 32, 1)
	assert.ErrorIs(t, err, builder.ErrClassCount)
	_, err = builder.BuildLabeled(2, 0, 32, 1)
	assert.ErrorIs(t, err, builder.ErrBadSize)
	_, err = builder.BuildLabeled(2, 3, 1, 1)
	assert.ErrorIs(t, err, builder.ErrBadSize)
}

func TestBuildConstant(t *testing.T) {
	t.Parallel()

	d, err := builder.BuildConstant(5, 20, 3.5)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 0, 1, 0}, d.Labels())
	for _, in := range d.Instances {
		for _, v := range in.Series() {
			assert.Equal(t, 3.5, v)
		}
	}

	_, err = builder.BuildConstant(0, 20, 1)
	assert.ErrorIs(t, err, builder.ErrBadSize)
}

func TestBuildMultivariate(t *testing.T) {
	t.Parallel()

	d, err := builder.BuildMultivariate(3, 25, 5)
	require.NoError(t, err)
	assert.True(t, d.Multivariate)
	assert.Equal(t, 6, d.Len())
	assert.Equal(t, 4, d.NumChannels())
	assert.Equal(t, 25, d.SeriesLength())
	assert.Equal(t, 5, d.NumAttributes())
	require.NoError(t, d.Validate())

	parts := d.SplitChannels()
	require.Len(t, parts, 4)
	for _, p := range parts {
		assert.False(t, p.Multivariate)
		assert.Equal(t, d.Labels(), p.Labels())
	}

	_, err = builder.BuildMultivariate(1, 1, 5)
	assert.ErrorIs(t, err, builder.ErrBadSize)
}

func TestOptions_PanicOnInvalid(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithName("") })
	assert.Panics(t, func() { builder.WithAmplitude(0) })
	assert.Panics(t, func() { builder.WithFrequency(-1) })
	assert.Panics(t, func() { builder.WithNoise(-0.1) })
	assert.Panics(t, func() { builder.WithDrift(-0.1) })
	assert.NotPanics(t, func() { builder.WithTrend(-2) })
}

func TestWithSeed_SharedStream(t *testing.T) {
	t.Parallel()

	// A shared stream overrides the per-call seed.
	a := builder.BuildPulse(16, 1, builder.WithSeed(7), builder.WithNoise(1))
	b := builder.BuildPulse(16, 2, builder.WithSeed(7), builder.WithNoise(1))
	assert.Equal(t, a, b)
}
