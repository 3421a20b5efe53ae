package tube

import "github.com/tubex-go/tubex/interval"

// Inflate widens every codomain and every gate by ±r.
// Gates are widened exactly once each — the head's input gate, then
// every slice's output gate, which together cover every shared interior
// gate without double-inflating it.
func (tu *Tube) Inflate(r float64) {
	for s := tu.head; s != nil; s = s.Next() {
		s.ReplaceCodomain(s.Codomain().Inflate(r))
	}
	if tu.head != nil {
		tu.head.InputGatePtr().Replace(tu.head.InputGate().Inflate(r))
		for s := tu.head; s != nil; s = s.Next() {
			s.OutputGatePtr().Replace(s.OutputGate().Inflate(r))
		}
	}
	if tu.synth != nil {
		tu.rebuildSynthesis()
	}
}

// Bisect splits tu into two independent tubes at instant t, each
// identical to tu except that x(t) has been contracted to one half of
// its bisection at the given ratio, used to drive
// branch-and-bound outer solvers. t is first sampled so the split lands
// exactly on a slice boundary in both results.
func (tu *Tube) Bisect(t, ratio float64) (*Tube, *Tube) {
	left, right := tu.Clone(), tu.Clone()
	left.Sample(t)
	right.Sample(t)

	x := left.At(t)
	lHalf, rHalf := x.Bisect(ratio)

	left.constrainAt(t, lHalf)
	right.constrainAt(t, rHalf)
	return left, right
}

// constrainAt meets the gate (or, for an interior point, the codomain)
// at instant t with v.
func (tu *Tube) constrainAt(t float64, v interval.Interval) {
	s := tu.SliceAt(t)
	if s == nil {
		return
	}
	if t == s.TDomain().Lb() {
		s.SetInputGate(v)
		return
	}
	if t == s.TDomain().Ub() {
		s.SetOutputGate(v)
		return
	}
	s.SetEnvelope(v)
}
