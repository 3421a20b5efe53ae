package tube

import (
	"github.com/tubex-go/tubex/interval"
	"github.com/tubex-go/tubex/slice"
)

// synthesisTree is the arena-backed balanced binary tree over a tube's
// slice chain: each leaf holds one slice's Hull, each internal node the
// hull of its children,
// plus the two primitive-integral offsets (sum of diam*lo and diam*hi
// over the range) needed by Integral/PartialIntegral to answer in
// O(log n) once built. hull, sumLo and sumHi form a classic 1-indexed
// segment-tree arena
// sized 4*n; node 1 is the root, node i's children are 2i and 2i+1.
type synthesisTree struct {
	n     int
	hull  []interval.Interval
	sumLo []float64
	sumHi []float64
}

func buildSynthesisTree(slices []*slice.Slice) *synthesisTree {
	n := len(slices)
	t := &synthesisTree{
		n:     n,
		hull:  make([]interval.Interval, 4*n),
		sumLo: make([]float64, 4*n),
		sumHi: make([]float64, 4*n),
	}
	if n > 0 {
		t.build(1, 0, n-1, slices)
	}
	return t
}

func (t *synthesisTree) build(node, l, r int, slices []*slice.Slice) {
	if l == r {
		s := slices[l]
		t.hull[node] = s.Hull()
		diam := s.TDomain().Diam()
		cod := s.Codomain()
		t.sumLo[node] = diam * cod.Lb()
		t.sumHi[node] = diam * cod.Ub()
		return
	}
	mid := (l + r) / 2
	left, right := 2*node, 2*node+1
	t.build(left, l, mid, slices)
	t.build(right, mid+1, r, slices)
	t.hull[node] = t.hull[left].Hull(t.hull[right])
	t.sumLo[node] = t.sumLo[left] + t.sumLo[right]
	t.sumHi[node] = t.sumHi[left] + t.sumHi[right]
}

// rangeHull returns the hull of slices [lo, hi] (inclusive, 0-based).
func (t *synthesisTree) rangeHull(lo, hi int) interval.Interval {
	if t.n == 0 || lo > hi {
		return interval.Empty()
	}
	return t.queryHull(1, 0, t.n-1, lo, hi)
}

func (t *synthesisTree) queryHull(node, l, r, qlo, qhi int) interval.Interval {
	if qhi < l || r < qlo {
		return interval.Empty()
	}
	if qlo <= l && r <= qhi {
		return t.hull[node]
	}
	mid := (l + r) / 2
	return t.queryHull(2*node, l, mid, qlo, qhi).Hull(t.queryHull(2*node+1, mid+1, r, qlo, qhi))
}

// rangeSums returns the sum of diam*lo and diam*hi over slices [lo, hi],
// the primitive-integral offsets consumed by Integral/PartialIntegral.
func (t *synthesisTree) rangeSums(lo, hi int) (float64, float64) {
	if t.n == 0 || lo > hi {
		return 0, 0
	}
	return t.querySums(1, 0, t.n-1, lo, hi)
}

func (t *synthesisTree) querySums(node, l, r, qlo, qhi int) (float64, float64) {
	if qhi < l || r < qlo {
		return 0, 0
	}
	if qlo <= l && r <= qhi {
		return t.sumLo[node], t.sumHi[node]
	}
	mid := (l + r) / 2
	lLo, lHi := t.querySums(2*node, l, mid, qlo, qhi)
	rLo, rHi := t.querySums(2*node+1, mid+1, r, qlo, qhi)
	return lLo + rLo, lHi + rHi
}

// EnableSynthesis toggles this tube's synthesis tree. Enabling rebuilds
// it immediately from the current chain; disabling frees it, falling
// back to the O(n) linear scan for Eval and Integral.
func (tu *Tube) EnableSynthesis(enabled bool) {
	if !enabled {
		tu.synth = nil
		return
	}
	tu.rebuildSynthesis()
}

// HasSynthesis reports whether this tube currently maintains a
// synthesis tree.
func (tu *Tube) HasSynthesis() bool {
	return tu.synth != nil
}

func (tu *Tube) rebuildSynthesis() {
	tu.synth = buildSynthesisTree(tu.Slices())
}

// RefreshSynthesis rebuilds the synthesis tree from the current slice
// chain if one is maintained; a no-op otherwise. Contractors that mutate
// slice codomains or gates in place (ctc.Deriv, ctc.Eval) call this once
// after their mutation pass so Eval/Integral don't read stale hull/sum
// data out of a tree built before the contraction ran.
func (tu *Tube) RefreshSynthesis() {
	if tu.synth != nil {
		tu.rebuildSynthesis()
	}
}
