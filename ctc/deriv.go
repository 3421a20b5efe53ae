package ctc

import (
	"github.com/tubex-go/tubex/interval"
	"github.com/tubex-go/tubex/slice"
	"github.com/tubex-go/tubex/tube"
)

// Deriv enforces ẋ(t) ∈ v(t) over X's whole domain. X and
// V must share slicing; use tube.Tube's arithmetic helpers to align them
// beforehand if needed.
type Deriv struct {
	X, V *tube.Tube
}

// NewDeriv builds a Deriv contractor over x and v.
func NewDeriv(x, v *tube.Tube) *Deriv {
	return &Deriv{X: x, V: v}
}

// Name returns the canonical LaTeX label for the derivative contractor.
func (d *Deriv) Name() string {
	return `\mathcal{C}_{\frac{d}{dt}}`
}

// Contract runs one forward then one backward sweep over the slice
// chain — a fixed point for the derivative constraint alone — and
// reports whether anything shrank. It returns ErrMismatchedSlicing when
// X and V differ in domain or slice count; an inconsistent constraint
// shows up as empty slices, not as an error.
func (d *Deriv) Contract() (bool, error) {
	if !d.X.Domain().Equal(d.V.Domain()) || d.X.NbSlices() != d.V.NbSlices() {
		return false, tube.ErrMismatchedSlicing
	}

	shrunk := false
	xs, vs := d.X.Slices(), d.V.Slices()

	for i := range xs {
		if contractSlicePair(xs[i], vs[i], true) {
			shrunk = true
		}
	}
	for i := len(xs) - 1; i >= 0; i-- {
		if contractSlicePair(xs[i], vs[i], false) {
			shrunk = true
		}
	}
	d.X.RefreshSynthesis()
	d.V.RefreshSynthesis()
	return shrunk, nil
}

// contractSlicePair applies one step of a sweep to one (x, v) slice pair
// sharing a time domain: it narrows each gate against the other through
// the step delta*v, then narrows the codomain to the envelope reachable
// from the gates, forward or backward in time as forward says. Gate
// back-propagation to neighbours needs no code here: x's gates are
// shared *slice.Gate objects with its neighbours, so mutating them
// through SetInputGate/SetOutputGate is already visible on both sides.
func contractSlicePair(xs, vs *slice.Slice, forward bool) bool {
	delta := xs.TDomain().Diam()
	vcod := vs.Codomain()

	// Gate-to-gate propagation spans the whole slice of known duration
	// delta, so it uses the exact scalar product delta*vcod rather than
	// the wider [0,delta]*vcod range product below.
	gateStep := vcod.MulScalar(delta)
	step := interval.New(0, delta).Mul(vcod)

	shrunk := false

	if xs.SetOutputGate(xs.InputGate().Add(gateStep)) {
		shrunk = true
	}
	if xs.SetInputGate(xs.OutputGate().Sub(gateStep)) {
		shrunk = true
	}

	hull := xs.InputGate().Hull(xs.OutputGate())
	var envelope interval.Interval
	if forward {
		envelope = hull.Add(step)
	} else {
		envelope = hull.Add(interval.New(-delta, 0).Mul(vcod))
	}
	if xs.SetEnvelope(envelope) {
		shrunk = true
	}

	return shrunk
}
