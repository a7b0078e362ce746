package planar

import "sort"

// Sentinels returned by [LinearSearch] and [BinarySearch] for queries outside
// of the breakpoint range.
const (
	// BelowFirst means that the query lies before the first breakpoint.
	BelowFirst = -1
	// AboveLast means that the query lies at or after the last breakpoint.
	AboveLast = -2
)

// SearchFunc locates the segment that contains a query value.
//
// Breakpoints must be sorted in strictly increasing order. The result is the
// greatest index i such that bkpts[i] <= q, or one of [BelowFirst] and
// [AboveLast]. Note that a query exactly equal to the last breakpoint yields
// AboveLast.
type SearchFunc func(bkpts []float64, q float64) int

var (
	_ SearchFunc = LinearSearch
	_ SearchFunc = BinarySearch
)

// LinearSearch implements [SearchFunc] in O(n).
func LinearSearch(bkpts []float64, q float64) int {
	for i, b := range bkpts {
		if b > q {
			return i - 1
		}
	}
	return AboveLast
}

// BinarySearch implements [SearchFunc] in O(log n). It returns the same
// results as [LinearSearch].
func BinarySearch(bkpts []float64, q float64) int {
	i := sort.Search(len(bkpts), func(i int) bool { return bkpts[i] > q })
	if i == len(bkpts) {
		return AboveLast
	}
	return i - 1
}

// segmentIndex returns the index of the segment whose polynomial is used to
// evaluate s. Queries outside of the domain extrapolate from the first or
// last segment.
func segmentIndex(bkpts []float64, s float64) int {
	switch idx := BinarySearch(bkpts, s); idx {
	case BelowFirst:
		return 0
	case AboveLast:
		return len(bkpts) - 2
	default:
		return idx
	}
}
