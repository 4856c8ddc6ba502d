// SPDX-License-Identifier: MIT

package sfa

import "fmt"

const (
	// MaxWordLength is the longest word a uint32 holds at 2 bits per symbol.
	MaxWordLength = 16

	// MinWordLength is the shortest word a configuration may be shortened to.
	MinWordLength = 2

	// MaxAlphabetSize is the largest alphabet representable in 2 bits.
	MaxAlphabetSize = 4

	bitsPerLetter = 2
	letterMask    = 1<<bitsPerLetter - 1
)

// Params is one SFA configuration. It is immutable once a transform exists;
// only the word length may be derived shorter afterwards (see Shorten).
type Params struct {
	WordLength   int
	AlphabetSize int
	WindowLength int
	Normalize    bool
}

// String renders the tuple the way parameter reports list it.
func (p Params) String() string {
	return fmt.Sprintf("windowSize,%d,wordLength,%d,alphabetSize,%d,norm,%t",
		p.WindowLength, p.WordLength, p.AlphabetSize, p.Normalize)
}

// Validate checks that the configuration can be transformed:
//   - WordLength even, in [MinWordLength, MaxWordLength];
//   - AlphabetSize in [2, MaxAlphabetSize];
//   - WindowLength covers every requested coefficient index.
func (p Params) Validate() error {
	if p.WordLength < MinWordLength || p.WordLength > MaxWordLength || p.WordLength%2 != 0 {
		return fmt.Errorf("word length %d: %w", p.WordLength, ErrWordLength)
	}
	if p.AlphabetSize < 2 || p.AlphabetSize > MaxAlphabetSize {
		return fmt.Errorf("alphabet size %d: %w", p.AlphabetSize, ErrAlphabetSize)
	}
	if p.WindowLength < p.WordLength/2+p.startCoefficient() {
		return fmt.Errorf("window %d for %d coefficients: %w", p.WindowLength, p.WordLength/2, ErrWindowLength)
	}

	return nil
}

// startCoefficient skips the DC term when windows are normalised.
func (p Params) startCoefficient() int {
	if p.Normalize {
		return 1
	}
	return 0
}
