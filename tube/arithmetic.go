package tube

import (
	"github.com/tubex-go/tubex/interval"
	"github.com/tubex-go/tubex/trajectory"
)

// Go has no operator overloading, so the `+=`, `-=`, `*=`, `/=`, `|=`,
// `&=` family becomes named mutator methods. Every method in this file
// replaces each slice's codomain and every gate
// outright with the result of the elementwise operation, rather than
// intersecting — the stated exception to the package's otherwise
// contraction-only mutators. Because outward-rounded interval
// operations are inclusion-monotonic, applying the same transform
// independently to a slice's codomain and to its (possibly shared)
// gates keeps every gate within its slice's codomain intact without an
// explicit re-normalization step.

// applyElementwise transforms every slice's codomain, then every unique
// gate in the chain exactly once (the head's input gate, then each
// slice's output gate — which covers every interior gate exactly once
// since it is shared with the following slice's input gate).
func (tu *Tube) applyElementwise(fn func(interval.Interval) interval.Interval) {
	for s := tu.head; s != nil; s = s.Next() {
		s.ReplaceCodomain(fn(s.Codomain()))
	}
	if tu.head != nil {
		tu.head.InputGatePtr().Replace(fn(tu.head.InputGate()))
		for s := tu.head; s != nil; s = s.Next() {
			s.OutputGatePtr().Replace(fn(s.OutputGate()))
		}
	}
	if tu.synth != nil {
		tu.rebuildSynthesis()
	}
}

// AddAssign adds the constant interval v to every slice's enclosure.
func (tu *Tube) AddAssign(v interval.Interval) {
	tu.applyElementwise(func(x interval.Interval) interval.Interval { return x.Add(v) })
}

// SubAssign subtracts the constant interval v from every slice.
func (tu *Tube) SubAssign(v interval.Interval) {
	tu.applyElementwise(func(x interval.Interval) interval.Interval { return x.Sub(v) })
}

// MulAssign multiplies every slice's enclosure by the constant v.
func (tu *Tube) MulAssign(v interval.Interval) {
	tu.applyElementwise(func(x interval.Interval) interval.Interval { return x.Mul(v) })
}

// DivAssign divides every slice's enclosure by the constant v.
func (tu *Tube) DivAssign(v interval.Interval) {
	tu.applyElementwise(func(x interval.Interval) interval.Interval { return x.Div(v) })
}

// Hull widens every slice's enclosure to its hull with v (the `|=`
// operator).
func (tu *Tube) Hull(v interval.Interval) {
	tu.applyElementwise(func(x interval.Interval) interval.Interval { return x.Hull(v) })
}

// Meet narrows every slice's enclosure to its meet with v (the
// `&=` operator).
func (tu *Tube) Meet(v interval.Interval) {
	tu.applyElementwise(func(x interval.Interval) interval.Interval { return x.Meet(v) })
}

// applyElementwiseTrajectory transforms every slice's codomain and gate
// by fn applied against tr's range at the relevant instant: the slice's
// own time domain for the codomain, and the boundary instant for each
// gate (so two neighbouring slices agree on a shared gate's new value).
func (tu *Tube) applyElementwiseTrajectory(tr *trajectory.Trajectory, fn func(x, y interval.Interval) interval.Interval) {
	for s := tu.head; s != nil; s = s.Next() {
		s.ReplaceCodomain(fn(s.Codomain(), tr.Eval(s.TDomain())))
	}
	if tu.head != nil {
		t0 := tu.head.TDomain().Lb()
		tu.head.InputGatePtr().Replace(fn(tu.head.InputGate(), tr.Eval(interval.Degenerate(t0))))
		for s := tu.head; s != nil; s = s.Next() {
			tb := s.TDomain().Ub()
			s.OutputGatePtr().Replace(fn(s.OutputGate(), tr.Eval(interval.Degenerate(tb))))
		}
	}
	if tu.synth != nil {
		tu.rebuildSynthesis()
	}
}

// AddAssignTrajectory adds tr's range at each instant to tu's enclosure there.
func (tu *Tube) AddAssignTrajectory(tr *trajectory.Trajectory) {
	tu.applyElementwiseTrajectory(tr, func(x, y interval.Interval) interval.Interval { return x.Add(y) })
}

// SubAssignTrajectory subtracts tr's range at each instant from tu's
// enclosure there.
func (tu *Tube) SubAssignTrajectory(tr *trajectory.Trajectory) {
	tu.applyElementwiseTrajectory(tr, func(x, y interval.Interval) interval.Interval { return x.Sub(y) })
}

// sameSlicing reports whether tu and other tile the same domain with
// identically-bounded slices.
func (tu *Tube) sameSlicing(other *Tube) bool {
	if tu.n != other.n || len(tu.boundaries) != len(other.boundaries) {
		return false
	}
	for i, b := range tu.boundaries {
		if b != other.boundaries[i] {
			return false
		}
	}
	return true
}

// alignSlicing refines whichever of tu and other is coarser by sampling
// it at the other's boundary instants: tube-tube arithmetic requires
// identical slicing or refines the coarser one by
// sampling." Domains that don't match outright are a hard mismatch.
func (tu *Tube) alignSlicing(other *Tube) error {
	if !tu.domain.Equal(other.domain) {
		return ErrMismatchedSlicing
	}
	if tu.sameSlicing(other) {
		return nil
	}
	merged := mergeSortedUnique(tu.boundaries, other.boundaries)
	for _, t := range merged {
		tu.Sample(t)
		other.Sample(t)
	}
	return nil
}

// mergeSortedUnique merges two sorted slices, dropping duplicates.
func mergeSortedUnique(a, b []float64) []float64 {
	out := make([]float64, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// tubeOp applies fn slice-by-slice (and gate-by-gate) between tu and
// other, aligning their slicing first if needed, writing the result
// into tu. Returns ErrMismatchedSlicing if the two domains disagree.
func (tu *Tube) tubeOp(other *Tube, fn func(a, b interval.Interval) interval.Interval) error {
	if err := tu.alignSlicing(other); err != nil {
		return err
	}
	a, b := tu.head, other.head
	for a != nil {
		a.ReplaceCodomain(fn(a.Codomain(), b.Codomain()))
		a, b = a.Next(), b.Next()
	}
	if tu.head != nil {
		tu.head.InputGatePtr().Replace(fn(tu.head.InputGate(), other.head.InputGate()))
		a, b = tu.head, other.head
		for a != nil {
			a.OutputGatePtr().Replace(fn(a.OutputGate(), b.OutputGate()))
			a, b = a.Next(), b.Next()
		}
	}
	if tu.synth != nil {
		tu.rebuildSynthesis()
	}
	return nil
}

// AddAssignTube adds other to tu elementwise; both tubes must share a
// domain, and differing slicings are first refined by sampling both.
func (tu *Tube) AddAssignTube(other *Tube) error {
	return tu.tubeOp(other, func(a, b interval.Interval) interval.Interval { return a.Add(b) })
}

// SubAssignTube subtracts other from tu elementwise; both tubes must
// share a domain, and differing slicings are first refined by sampling
// both.
func (tu *Tube) SubAssignTube(other *Tube) error {
	return tu.tubeOp(other, func(a, b interval.Interval) interval.Interval { return a.Sub(b) })
}

// MulAssignTube multiplies tu by other elementwise; both tubes must
// share a domain, and differing slicings are first refined by sampling
// both.
func (tu *Tube) MulAssignTube(other *Tube) error {
	return tu.tubeOp(other, func(a, b interval.Interval) interval.Interval { return a.Mul(b) })
}

// DivAssignTube divides tu by other elementwise; both tubes must share a
// domain, and differing slicings are first refined by sampling both.
func (tu *Tube) DivAssignTube(other *Tube) error {
	return tu.tubeOp(other, func(a, b interval.Interval) interval.Interval { return a.Div(b) })
}

// HullTube widens tu to its elementwise hull with other; both tubes must
// share a domain, and differing slicings are first refined by sampling
// both.
func (tu *Tube) HullTube(other *Tube) error {
	return tu.tubeOp(other, func(a, b interval.Interval) interval.Interval { return a.Hull(b) })
}

// MeetTube narrows tu to its elementwise meet with other; both tubes
// must share a domain, and differing slicings are first refined by
// sampling both.
func (tu *Tube) MeetTube(other *Tube) error {
	return tu.tubeOp(other, func(a, b interval.Interval) interval.Interval { return a.Meet(b) })
}
