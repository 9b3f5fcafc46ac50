package engine

import "math/bits"

// sizeSearch bisects over candidate page sizes on one axis. In power-of-two
// mode it operates on exponents of the next-power-of-two-rounded bounds and
// the fuzziness tolerance is forced to zero; otherwise it works on raw pixel
// sizes and gives up once the bracket narrows below the tolerance. The
// result is a size close to the minimum feasible one, found in a logarithmic
// number of trials rather than a linear scan.
type sizeSearch struct {
	min, max  int
	fuzziness int
	low, high int
	current   int
	pot       bool
}

func newSizeSearch(min, max, fuzziness int, pot bool) *sizeSearch {
	s := &sizeSearch{pot: pot}
	if pot {
		s.min = log2(nextPowerOfTwo(min))
		s.max = log2(nextPowerOfTwo(max))
	} else {
		s.fuzziness = fuzziness
		s.min = min
		s.max = max
	}
	return s
}

// reset re-initializes the bracket to [min, max] and returns the midpoint
// candidate size.
func (s *sizeSearch) reset() int {
	s.low = s.min
	s.high = s.max
	s.current = s.low + (s.high-s.low)/2
	return s.size()
}

// next narrows the bracket based on whether the previous candidate packed
// every sprite: a fitting size means smaller ones are worth trying, a
// failing size means only larger ones can work. Returns ok=false once the
// bracket is exhausted.
func (s *sizeSearch) next(fits bool) (int, bool) {
	if s.low >= s.high {
		return 0, false
	}
	if fits {
		s.high = s.current - 1
	} else {
		s.low = s.current + 1
	}
	s.current = s.low + (s.high-s.low)/2
	if abs(s.low-s.high) < s.fuzziness {
		return 0, false
	}
	return s.size(), true
}

func (s *sizeSearch) size() int {
	if s.pot {
		return 1 << s.current
	}
	return s.current
}

// nextPowerOfTwo returns the smallest power of two greater than or equal to n.
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

func log2(n int) int {
	return bits.Len(uint(n)) - 1
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
