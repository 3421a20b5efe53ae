package tube

import (
	"github.com/tubex-go/tubex/interval"
	"github.com/tubex-go/tubex/slice"
)

// Sample inserts a new slice boundary at t, splitting the slice that
// tiles it into two; both halves inherit the parent's codomain and the
// new interior gate starts at that same codomain. A no-op if t already
// sits on a boundary (sampling is idempotent) or is outside the domain.
func (tu *Tube) Sample(t float64) {
	if !tu.domain.Contains(t) {
		return
	}
	s := tu.SliceAt(t)
	td := s.TDomain()
	if t == td.Lb() || t == td.Ub() {
		return // already a boundary: idempotent
	}

	codomain := s.Codomain()
	mid := slice.NewGate(codomain)
	left, _ := slice.New(interval.New(td.Lb(), t), codomain, s.InputGatePtr(), mid)
	right, _ := slice.New(interval.New(t, td.Ub()), codomain, mid, s.OutputGatePtr())

	prev, next := s.Prev(), s.Next()
	left.SetLinks(prev, right)
	right.SetLinks(left, next)
	if prev != nil {
		prev.SetLinks(prev.Prev(), left)
	} else {
		tu.head = left
	}
	if next != nil {
		next.SetLinks(right, next.Next())
	} else {
		tu.tail = right
	}
	tu.n++
	tu.refreshBoundaries()

	if tu.synth != nil {
		tu.rebuildSynthesis()
	}
}

// RemoveGate merges the two slices sharing the interior gate at instant
// t into one, by hulling their codomains: this exactly undoes a prior
// Sample(t) iff the removed gate
// was already the hull of its two neighbour codomains). A no-op if t is
// not an interior boundary.
func (tu *Tube) RemoveGate(t float64) {
	if t == tu.domain.Lb() || t == tu.domain.Ub() {
		return
	}
	right := tu.SliceAt(t)
	if right.TDomain().Lb() != t {
		return // t is not an interior boundary of this tube
	}
	left := right.Prev()
	if left == nil {
		return
	}

	merged, _ := slice.New(interval.New(left.TDomain().Lb(), right.TDomain().Ub()),
		left.Codomain().Hull(right.Codomain()), left.InputGatePtr(), right.OutputGatePtr())

	prev, next := left.Prev(), right.Next()
	merged.SetLinks(prev, next)
	if prev != nil {
		prev.SetLinks(prev.Prev(), merged)
	} else {
		tu.head = merged
	}
	if next != nil {
		next.SetLinks(merged, next.Next())
	} else {
		tu.tail = merged
	}
	tu.n--
	tu.refreshBoundaries()

	if tu.synth != nil {
		tu.rebuildSynthesis()
	}
}
