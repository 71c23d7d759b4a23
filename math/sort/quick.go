package sort

// sort3 sorts three values from largest to smallest.
func sort3(x, y, z float64) (max, mid, min float64) {
	if x > y {
		if x > z {
			if y > z {
				return x, y, z
			}
			return x, z, y
		}
		return z, x, y
	}
	if y > z {
		if x > z {
			return y, x, z
		}
		return y, z, x
	}
	return z, y, x
}

// partition rearranges the elements of a slice, xs, into two contiguous
// groups, such that every element of the first group is no larger than every
// element of the second. partition then returns the length of the first
// group. len(xs) must be at least 4.
func partition(xs []float64) int {
	n, n2 := len(xs), len(xs)/2
	// The median of three is the pivot, the other two are sentinels so the
	// scans below need no bounds checks.
	max, mid, min := sort3(xs[0], xs[n2], xs[n-1])
	xs[0], xs[n2], xs[n-1] = min, mid, max
	xs[1], xs[n2] = xs[n2], xs[1]

	lo, hi := 1, n-1
	for {
		lo++
		for xs[lo] < mid {
			lo++
		}
		hi--
		for xs[hi] > mid {
			hi--
		}
		if hi < lo {
			break
		}
		xs[lo], xs[hi] = xs[hi], xs[lo]
	}

	// Swap the pivot into the middle
	xs[1], xs[hi] = xs[hi], xs[1]

	return hi
}

// nthLargest recursively finds the nth largest (1-indexed) element of xs,
// scrambling xs in the process. It is quicksort, except that only the half
// of each partition containing the target is kept.
func nthLargest(xs []float64, n int) float64 {
	switch len(xs) {
	case 1:
		return xs[0]
	case 2:
		if xs[0] > xs[1] {
			xs[0], xs[1] = xs[1], xs[0]
		}
		return xs[2-n]
	case 3:
		high, mid, low := sort3(xs[0], xs[1], xs[2])
		return [3]float64{high, mid, low}[n-1]
	}

	pivIdx := partition(xs)
	nPiv := len(xs) - pivIdx
	if nPiv > n {
		return nthLargest(xs[pivIdx:], n)
	} else if nPiv < n {
		return nthLargest(xs[:pivIdx], n-nPiv)
	}
	return xs[pivIdx]
}
