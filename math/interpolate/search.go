package interpolate

// searcher locates the segment of a knot table that contains a point.
type searcher struct {
	xs          []float64
	x0, dx, lim float64
	n           int
	unif        bool
}

// init snapshots the knot abscissas. xs must be strictly increasing and have
// at least two elements.
func (s *searcher) init(xs Sequence) {
	s.xs = snapshot(xs, s.xs)
	s.n = len(s.xs)
	s.x0 = s.xs[0]
	s.lim = s.xs[s.n-1]
	s.dx = (s.lim - s.x0) / float64(s.n-1)
	_, s.unif = xs.(Uniform)
}

// search returns the index i of the segment [xs[i], xs[i+1]] containing x.
// Points outside the table are mapped onto the first or last segment, which
// is what lets every algorithm extrapolate by extending its end pieces.
func (s *searcher) search(x float64) int {
	if x <= s.x0 {
		return 0
	} else if x >= s.lim {
		return s.n - 2
	}

	// Guess under the assumption of uniform spacing.
	guess := int((x - s.x0) / s.dx)
	if guess > s.n-2 {
		guess = s.n - 2
	}
	if s.unif {
		return guess
	}
	if guess >= 0 && s.xs[guess] <= x && x < s.xs[guess+1] {
		return guess
	}

	// Binary search.
	lo, hi := 0, s.n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if x >= s.xs[mid] {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

func (s *searcher) val(i int) float64 { return s.xs[i] }

func (s *searcher) min() float64 { return s.x0 }
func (s *searcher) max() float64 { return s.lim }
