// Package prime provides trial-division primality testing and the odd
// candidate sequence the search walks through.
package prime

// ISqrt returns the integer square root of n: the largest r with r*r <= n.
func ISqrt(n uint32) uint32 {
	if n < 2 {
		return n
	}
	x := uint64(n)
	r := x
	y := (r + 1) / 2
	for y < r {
		r = y
		y = (r + x/r) / 2
	}
	// Newton converges from above; guard the boundaries anyway.
	for r*r > x {
		r--
	}
	for (r+1)*(r+1) <= x {
		r++
	}
	return uint32(r)
}

// IsPrime reports whether candidate has no divisor among known.
// known must be ascending and contain every odd prime up to ISqrt(candidate);
// the even divisor 2 is never checked because candidates are odd.
func IsPrime(candidate uint32, known []uint32) bool {
	limit := ISqrt(candidate)
	for _, p := range known {
		if candidate%p == 0 {
			return false
		}
		if p > limit {
			break
		}
	}
	return true
}
