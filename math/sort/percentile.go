/*package sort provides order statistics of float64 slices in linear time
without the overhead of Go's sort interfaces.
*/
package sort

import (
	"fmt"
	"math"
)

// NthSmallest returns the nth smallest element of xs, with n = 1 being the
// minimum. xs is not modified. An optional buffer slice of the same length
// may be supplied to prevent unneeded heap allocations. Runs in O(len(xs)).
func NthSmallest(xs []float64, n int, buf ...[]float64) float64 {
	if len(xs) == 0 {
		panic("xs empty in call to NthSmallest(xs, n)")
	} else if n < 1 || n > len(xs) {
		panic(fmt.Sprintf("n = %d out of range in call to NthSmallest(xs, "+
			"n) with len(xs) = %d", n, len(xs)))
	}

	var work []float64
	if len(buf) == 0 {
		work = make([]float64, len(xs))
	} else {
		work = buf[0]
		if len(work) != len(xs) {
			panic("Length of buffer does not equal length of input array.")
		}
	}
	copy(work, xs)

	return nthLargest(work, len(xs)-n+1)
}

// Percentile returns the nearest-rank percentile of xs: the smallest element
// which is no smaller than a fraction p of the elements. p must be in the
// range [0, 1]; p = 0 gives the minimum and p = 1 the maximum.
func Percentile(xs []float64, p float64, buf ...[]float64) float64 {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("percentile %g must be in the range [0, 1]", p))
	}
	n := int(math.Ceil(p * float64(len(xs))))
	if n == 0 {
		n = 1
	}
	return NthSmallest(xs, n, buf...)
}

// Median returns the lower median of xs.
func Median(xs []float64, buf ...[]float64) float64 {
	return NthSmallest(xs, (len(xs)+1)/2, buf...)
}
