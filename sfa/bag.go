// SPDX-License-Identifier: MIT

package sfa

// Bag is the word histogram of one series under one configuration.
type Bag struct {
	Counts map[Word]int
	Class  int
}

// NewBag returns an empty bag for the given class.
func NewBag(class int) Bag {
	return Bag{Counts: make(map[Word]int), Class: class}
}

// BagFrom folds a word sequence into a bag with numerosity reduction: a word
// equal to its immediate predecessor is not counted. The first word is
// always counted.
//
// Complexity: O(len(words)).
func BagFrom(words []Word, class int) Bag {
	b := NewBag(class)
	for i, w := range words {
		if i > 0 && w == words[i-1] {
			continue
		}
		b.Counts[w]++
	}
	return b
}

// BagFromShortened truncates every word from length from to length to and
// folds the result. Reduction runs on the truncated sequence, so runs that
// only differed in dropped symbols collapse.
func BagFromShortened(words []Word, from, to, class int) Bag {
	b := NewBag(class)
	var prev Word
	for i, w := range words {
		s := w.Shorten(from, to)
		if i > 0 && s == prev {
			continue
		}
		b.Counts[s]++
		prev = s
	}
	return b
}

// Len returns the number of distinct words.
func (b Bag) Len() int { return len(b.Counts) }

// Total returns the sum of all counts.
func (b Bag) Total() int {
	n := 0
	for _, c := range b.Counts {
		n += c
	}
	return n
}
