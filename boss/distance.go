// SPDX-License-Identifier: MIT

package boss

import (
	"math"

	"github.com/katalvlaran/sfaboss/sfa"
)

// Distance is the BOSS distance FROM query TO ref: the squared count
// difference summed over the words of query only. Words present only in ref
// contribute nothing, so Distance(a, b) != Distance(b, a) in general.
//
// The sum aborts with +Inf as soon as it exceeds best; partial sums only
// grow, so a finite result is always the exact distance.
//
// Complexity: O(|query|).
func Distance(query, ref sfa.Bag, best float64) float64 {
	var dist float64
	for w, a := range query.Counts {
		d := float64(a - ref.Counts[w])
		dist += d * d
		if dist > best {
			return math.Inf(1)
		}
	}
	return dist
}
