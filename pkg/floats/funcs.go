package floats

import "math"

// MinMax returns the joint minimum and maximum of xs using pairwise
// comparisons, 3n/2-2 of them in total instead of the 2n-2 of two
// separate scans. Returns (0, 0) for an empty input.
func MinMax(xs []float64) (min, max float64) {
	switch len(xs) {
	case 0:
		return 0, 0
	case 1:
		return xs[0], xs[0]
	}

	if xs[0] > xs[1] {
		min, max = xs[1], xs[0]
	} else {
		min, max = xs[0], xs[1]
	}

	// Sort each remaining pair locally, then compare the pair minimum and
	// maximum against the running ones.
	end := len(xs)
	if end%2 == 1 {
		end--
	}
	for i := 2; i < end; i += 2 {
		lo, hi := xs[i], xs[i+1]
		if lo > hi {
			lo, hi = hi, lo
		}
		if lo < min {
			min = lo
		}
		if hi > max {
			max = hi
		}
	}

	// A leftover element can improve at most one of the two bounds.
	if len(xs)%2 == 1 {
		last := xs[len(xs)-1]
		if last < min {
			min = last
		} else if last > max {
			max = last
		}
	}
	return min, max
}

// IntervalOverlap computes the overlap length of intervals [aLo, aHi] and
// [bLo, bHi], zero when they are disjoint.
func IntervalOverlap(aLo, aHi, bLo, bHi float64) float64 {
	return math.Max(0, math.Min(aHi, bHi)-math.Max(aLo, bLo))
}
