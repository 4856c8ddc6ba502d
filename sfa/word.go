// SPDX-License-Identifier: MIT

package sfa

import (
	"fmt"
	"strings"
)

// Word is a packed SFA word: 2 bits per symbol, first symbol in the highest
// occupied bits. A Word does not carry its length; the configuration does.
type Word uint32

// Push appends one symbol.
func (w Word) Push(letter int) Word {
	return w<<bitsPerLetter | Word(letter&letterMask)
}

// Shorten truncates a word of length from to its first to symbols.
// Lengths at or above from return w unchanged.
//
// Complexity: O(1).
func (w Word) Shorten(from, to int) Word {
	if to >= from {
		return w
	}
	return w >> (bitsPerLetter * uint(from-to))
}

// Letters unpacks the symbols of a word of the given length.
func (w Word) Letters(length int) []int {
	out := make([]int, length)
	for i := length - 1; i >= 0; i-- {
		out[i] = int(w & letterMask)
		w >>= bitsPerLetter
	}
	return out
}

// Format renders the word as letters a, b, c, d.
func (w Word) Format(length int) string {
	var sb strings.Builder
	for _, l := range w.Letters(length) {
		sb.WriteByte(byte('a' + l))
	}
	return sb.String()
}

// ShortenAll truncates every word from length from to length to.
// to must lie in [MinWordLength, from].
func ShortenAll(words []Word, from, to int) ([]Word, error) {
	if to < MinWordLength || to > from {
		return nil, fmt.Errorf("shorten %d → %d: %w", from, to, ErrWordLength)
	}
	out := make([]Word, len(words))
	for i, w := range words {
		out[i] = w.Shorten(from, to)
	}
	return out, nil
}
