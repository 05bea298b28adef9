package prime

import (
	"iter"
	"math"
)

// First is the first candidate tested. 2 and 3 are known up front.
const First uint32 = 5

// Candidates yields odd integers from First upward, strictly below max.
// A max of 0 means the whole uint32 range. Iteration stops before the
// counter would wrap.
func Candidates(max uint32) iter.Seq[uint32] {
	if max == 0 {
		max = math.MaxUint32
	}
	return candidatesFrom(First, max)
}

func candidatesFrom(start, max uint32) iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for c := start; c < max; c += 2 {
			if !yield(c) {
				return
			}
			if c > math.MaxUint32-2 {
				return
			}
		}
	}
}
