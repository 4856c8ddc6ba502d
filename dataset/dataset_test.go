package dataset_test

import (
	"testing"

	"github.com/katalvlaran/sfaboss/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUnivariate_ClassLast(t *testing.T) {
	d, err := dataset.NewUnivariate("toy", []string{"a", "b"},
		[][]float64{{1, 2, 3}, {4, 5, 6}}, []int{0, 1})
	require.NoError(t, err)

	assert.Equal(t, 2, d.Len())
	assert.Equal(t, 1, d.NumChannels())
	assert.Equal(t, 3, d.SeriesLength())
	assert.Equal(t, 4, d.NumAttributes())
	assert.Equal(t, 3, d.ClassIndex)
	assert.Equal(t, []int{0, 1}, d.Labels())
}

func TestValidate_ClassNotLast(t *testing.T) {
	d, err := dataset.NewUnivariate("toy", []string{"a"}, [][]float64{{1, 2}}, []int{0})
	require.NoError(t, err)

	d.ClassIndex = 0
	assert.ErrorIs(t, d.Validate(), dataset.ErrClassNotLast)
}

func TestValidate_Errors(t *testing.T) {
	_, err := dataset.NewUnivariate("e", []string{"a"}, nil, nil)
	assert.ErrorIs(t, err, dataset.ErrEmpty)

	_, err = dataset.NewUnivariate("r", []string{"a"}, [][]float64{{1, 2}, {1}}, []int{0, 0})
	assert.ErrorIs(t, err, dataset.ErrShape)

	_, err = dataset.NewUnivariate("l", []string{"a"}, [][]float64{{1, 2}}, []int{3})
	assert.ErrorIs(t, err, dataset.ErrLabel)

	_, err = dataset.NewUnivariate("n", []string{"a"}, [][]float64{{1, 2}}, []int{0, 0})
	assert.ErrorIs(t, err, dataset.ErrShape)
}

func TestSplitChannels(t *testing.T) {
	d, err := dataset.NewMultivariate("mv", []string{"x", "y"}, [][][]float64{
		{{1, 2, 3}, {10, 20, 30}},
		{{4, 5, 6}, {40, 50, 60}},
	}, []int{1, 0})
	require.NoError(t, err)
	assert.Equal(t, 3, d.NumAttributes(), "two relational channels plus class")

	parts := d.SplitChannels()
	require.Len(t, parts, 2)
	for _, p := range parts {
		assert.False(t, p.Multivariate)
		assert.NoError(t, p.Validate())
		assert.Equal(t, []int{1, 0}, p.Labels())
	}
	assert.Equal(t, []float64{40, 50, 60}, parts[1].Instances[1].Series())

	uni, err := dataset.NewUnivariate("u", []string{"a"}, [][]float64{{1}}, []int{0})
	require.NoError(t, err)
	assert.Same(t, uni, uni.SplitChannels()[0])
}

func TestInstanceChannel(t *testing.T) {
	in := dataset.Instance{Channels: [][]float64{{1}, {2}}, Class: 1}

	ch, err := in.Channel(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, ch.Series())
	assert.Equal(t, 1, ch.Class)

	_, err = in.Channel(2)
	assert.ErrorIs(t, err, dataset.ErrChannel)

	parts := dataset.SplitInstance(in)
	assert.Len(t, parts, 2)
}
