// SPDX-License-Identifier: MIT

package sfa

import "errors"

var (
	// ErrWordLength indicates a word length outside [2, MaxWordLength] or an odd
	// length where a Fourier configuration needs coefficient pairs.
	ErrWordLength = errors.New("sfa: invalid word length")

	// ErrAlphabetSize indicates an alphabet that cannot be packed in 2 bits/symbol.
	ErrAlphabetSize = errors.New("sfa: invalid alphabet size")

	// ErrWindowLength indicates a window too short for the requested coefficients.
	ErrWindowLength = errors.New("sfa: invalid window length")

	// ErrEmptyInput indicates that breakpoints were requested from zero series.
	ErrEmptyInput = errors.New("sfa: no training series")

	// ErrSeriesTooShort indicates a series shorter than the window length.
	ErrSeriesTooShort = errors.New("sfa: series shorter than window")

	// ErrBreakpoints indicates a breakpoint table that does not fit the configuration.
	ErrBreakpoints = errors.New("sfa: breakpoint table does not match configuration")
)
