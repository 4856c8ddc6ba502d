package dataset

import "fmt"

// Unlabeled marks an instance whose class is unknown (e.g. a test query).
const Unlabeled = -1

// Instance is one labeled observation: a series per channel plus a class index.
type Instance struct {
	Channels [][]float64
	Class    int
}

// NewInstance wraps a single univariate series.
func NewInstance(series []float64, class int) Instance {
	return Instance{Channels: [][]float64{series}, Class: class}
}

// Series returns the first (and for univariate data, only) channel.
func (in Instance) Series() []float64 {
	if len(in.Channels) == 0 {
		return nil
	}
	return in.Channels[0]
}

// Channel returns channel c as a univariate instance sharing the same class.
func (in Instance) Channel(c int) (Instance, error) {
	if c < 0 || c >= len(in.Channels) {
		return Instance{}, fmt.Errorf("channel %d of %d: %w", c, len(in.Channels), ErrChannel)
	}
	return Instance{Channels: [][]float64{in.Channels[c]}, Class: in.Class}, nil
}

// Dataset is an ordered collection of instances with a shared class domain.
type Dataset struct {
	// Name is the relation name; it also keys checkpoint directories.
	Name string
	// ClassNames lists the nominal class values; Instance.Class indexes it.
	ClassNames []string
	// Multivariate marks the relational (one attribute per channel) layout,
	// even when only one channel is present.
	Multivariate bool
	// ClassIndex is the attribute position of the class.
	ClassIndex int
	// Instances in storage order.
	Instances []Instance
}

// NewUnivariate builds a univariate dataset with the class as the last attribute.
// series[i] is the i-th instance; labels[i] its class index.
func NewUnivariate(name string, classNames []string, series [][]float64, labels []int) (*Dataset, error) {
	if len(series) != len(labels) {
		return nil, fmt.Errorf("%d series vs %d labels: %w", len(series), len(labels), ErrShape)
	}
	d := &Dataset{Name: name, ClassNames: classNames, Instances: make([]Instance, len(series))}
	for i := range series {
		d.Instances[i] = NewInstance(series[i], labels[i])
	}
	d.ClassIndex = d.NumAttributes() - 1

	return d, d.Validate()
}

// NewMultivariate builds a multivariate dataset; channels[i][c] is channel c
// of instance i.
func NewMultivariate(name string, classNames []string, channels [][][]float64, labels []int) (*Dataset, error) {
	if len(channels) != len(labels) {
		return nil, fmt.Errorf("%d instances vs %d labels: %w", len(channels), len(labels), ErrShape)
	}
	d := &Dataset{Name: name, ClassNames: classNames, Multivariate: true, Instances: make([]Instance, len(channels))}
	for i := range channels {
		d.Instances[i] = Instance{Channels: channels[i], Class: labels[i]}
	}
	d.ClassIndex = d.NumAttributes() - 1

	return d, d.Validate()
}

// Len returns the number of instances.
func (d *Dataset) Len() int { return len(d.Instances) }

// NumClasses returns the size of the class domain.
func (d *Dataset) NumClasses() int { return len(d.ClassNames) }

// NumChannels returns the channel count of the first instance.
func (d *Dataset) NumChannels() int {
	if len(d.Instances) == 0 {
		return 0
	}
	return len(d.Instances[0].Channels)
}

// SeriesLength returns the length of the first instance's first channel.
func (d *Dataset) SeriesLength() int {
	if len(d.Instances) == 0 {
		return 0
	}
	return len(d.Instances[0].Series())
}

// NumAttributes counts attributes including the class.
func (d *Dataset) NumAttributes() int {
	if d.Multivariate {
		return d.NumChannels() + 1
	}
	return d.SeriesLength() + 1
}

// Labels returns the class index of every instance in storage order.
func (d *Dataset) Labels() []int {
	out := make([]int, len(d.Instances))
	for i, in := range d.Instances {
		out[i] = in.Class
	}
	return out
}

// Validate checks the invariants every consumer relies on:
// non-empty, class attribute last, uniform shape, labels in range.
//
// Complexity: O(N·C).
func (d *Dataset) Validate() error {
	if len(d.Instances) == 0 {
		return ErrEmpty
	}
	if d.ClassIndex != d.NumAttributes()-1 {
		return fmt.Errorf("class index %d of %d attributes: %w", d.ClassIndex, d.NumAttributes(), ErrClassNotLast)
	}
	channels, length := d.NumChannels(), d.SeriesLength()
	if channels == 0 || length == 0 {
		return ErrShape
	}
	for i, in := range d.Instances {
		if len(in.Channels) != channels {
			return fmt.Errorf("instance %d has %d channels, want %d: %w", i, len(in.Channels), channels, ErrShape)
		}
		for c, ch := range in.Channels {
			if len(ch) != length {
				return fmt.Errorf("instance %d channel %d has length %d, want %d: %w", i, c, len(ch), length, ErrShape)
			}
		}
		if in.Class < 0 || in.Class >= len(d.ClassNames) {
			return fmt.Errorf("instance %d class %d: %w", i, in.Class, ErrLabel)
		}
	}

	return nil
}

// SplitChannels returns one univariate dataset per channel. Series slices
// are shared, not copied. A univariate dataset returns itself.
func (d *Dataset) SplitChannels() []*Dataset {
	if !d.Multivariate {
		return []*Dataset{d}
	}
	n := d.NumChannels()
	out := make([]*Dataset, n)
	for c := 0; c < n; c++ {
		ch := &Dataset{
			Name:       d.Name,
			ClassNames: d.ClassNames,
			Instances:  make([]Instance, len(d.Instances)),
		}
		for i, in := range d.Instances {
			ch.Instances[i] = Instance{Channels: [][]float64{in.Channels[c]}, Class: in.Class}
		}
		ch.ClassIndex = ch.NumAttributes() - 1
		out[c] = ch
	}

	return out
}

// SplitInstance returns one univariate instance per channel of in.
func SplitInstance(in Instance) []Instance {
	out := make([]Instance, len(in.Channels))
	for c := range in.Channels {
		out[c] = Instance{Channels: [][]float64{in.Channels[c]}, Class: in.Class}
	}
	return out
}
