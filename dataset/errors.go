package dataset

import "errors"

var (
	// ErrEmpty indicates a dataset without instances.
	ErrEmpty = errors.New("dataset: no instances")

	// ErrClassNotLast indicates that ClassIndex is not the last attribute.
	ErrClassNotLast = errors.New("dataset: class attribute is not the last attribute")

	// ErrShape indicates instances that disagree on channel count or series length.
	ErrShape = errors.New("dataset: inconsistent instance shape")

	// ErrLabel indicates a class index outside [0, NumClasses).
	ErrLabel = errors.New("dataset: class label out of range")

	// ErrChannel indicates a channel index outside [0, NumChannels).
	ErrChannel = errors.New("dataset: channel index out of range")
)
