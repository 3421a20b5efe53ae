package tube

import (
	"github.com/tubex-go/tubex/slice"
)

// Clone returns a deep copy of tu: a fresh slice chain with fresh gates,
// none shared with the original, used by Bisect to produce independent
// sub-tubes for outer solvers.
func (tu *Tube) Clone() *Tube {
	out := &Tube{domain: tu.domain, n: tu.n}
	if tu.head == nil {
		return out
	}

	slices := make([]*slice.Slice, tu.n)
	gates := make([]*slice.Gate, tu.n+1)
	i := 0
	for s := tu.head; s != nil; s = s.Next() {
		if i == 0 {
			gates[0] = slice.NewGate(s.InputGate())
		}
		gates[i+1] = slice.NewGate(s.OutputGate())
		i++
	}

	i = 0
	for s := tu.head; s != nil; s = s.Next() {
		cp, _ := slice.New(s.TDomain(), s.Codomain(), gates[i], gates[i+1])
		slices[i] = cp
		i++
	}
	for i := range slices {
		var prev, next *slice.Slice
		if i > 0 {
			prev = slices[i-1]
		}
		if i < len(slices)-1 {
			next = slices[i+1]
		}
		slices[i].SetLinks(prev, next)
	}

	out.head, out.tail = slices[0], slices[len(slices)-1]
	out.refreshBoundaries()
	if tu.synth != nil {
		out.rebuildSynthesis()
	}
	return out
}
