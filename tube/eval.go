package tube

import (
	"sort"

	"github.com/tubex-go/tubex/interval"
)

// Eval returns the hull of every slice's full enclosure (codomain and
// both gates) over every slice intersecting tInterval — a safe superset
// of the exact definition (hull of codomains unioned with any gate
// sitting strictly inside): because slice.Slice.Hull already folds in
// both of a slice's gates, hulling it in for every
// intersecting slice (rather than only the gates strictly inside
// tInterval) can only make the result less tight at the two extreme
// slices, never unsound. With a synthesis tree this runs in O(log n);
// without, O(n).
func (tu *Tube) Eval(tInterval interval.Interval) interval.Interval {
	if tInterval.IsEmpty() || !tu.domain.Intersects(tInterval) {
		return interval.Empty()
	}
	t := tInterval.Meet(tu.domain)
	if tu.synth != nil {
		lo, hi := tu.boundingIndices(t)
		return tu.synth.rangeHull(lo, hi)
	}
	return tu.evalLinear(t)
}

func (tu *Tube) evalLinear(t interval.Interval) interval.Interval {
	result := interval.Empty()
	for s := tu.head; s != nil; s = s.Next() {
		if s.TDomain().Intersects(t) {
			result = result.Hull(s.Hull())
		}
	}
	return result
}

// boundingIndices returns the inclusive [lo, hi] slice-index range
// intersecting t, used to drive the synthesis tree's range query. Slice i
// spans [boundaries[i], boundaries[i+1]], and boundaries is kept sorted
// by refreshBoundaries, so both ends are found by binary search in
// O(log n) rather than by walking the chain.
func (tu *Tube) boundingIndices(t interval.Interval) (int, int) {
	b := tu.boundaries
	n := tu.n
	tlo, thi := t.Lb(), t.Ub()

	// lo: smallest slice index whose right boundary reaches tlo.
	lo := sort.Search(n, func(i int) bool { return b[i+1] >= tlo })
	if lo > n-1 {
		lo = n - 1
	}

	// hi: largest slice index whose left boundary is at or before thi.
	hi := sort.Search(n, func(i int) bool { return b[i] > thi }) - 1
	if hi < lo {
		hi = lo
	}
	if hi > n-1 {
		hi = n - 1
	}

	return lo, hi
}

// At returns the hull of the one or two enclosures adjacent to the
// instant t: the shared gate if t is a slice boundary, otherwise the
// single slice's codomain (the `operator()(double)` accessor).
func (tu *Tube) At(t float64) interval.Interval {
	if !tu.domain.Contains(t) {
		return interval.Empty()
	}
	s := tu.SliceAt(t)
	if t == s.TDomain().Lb() {
		return s.InputGate()
	}
	if t == s.TDomain().Ub() {
		return s.OutputGate()
	}
	return s.Codomain()
}
