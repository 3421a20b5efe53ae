package slice

import (
	"errors"

	"github.com/tubex-go/tubex/interval"
)

// ErrNonPositiveDiameter indicates a Slice was built over a degenerate or
// inverted time domain; slices must have positive diameter.
var ErrNonPositiveDiameter = errors.New("slice: time domain must have positive diameter")

// Gate is an interval enclosure at one slice boundary instant. It is
// owned by the tube.Tube chain and referenced by the (up to) two slices
// adjacent to it; mutating it through either slice is visible to both,
// enforced by construction rather than by copy-and-propagate.
type Gate struct {
	value interval.Interval
}

// NewGate returns a Gate initialized to v.
func NewGate(v interval.Interval) *Gate {
	return &Gate{value: v}
}

// Value returns the gate's current enclosure.
func (g *Gate) Value() interval.Interval {
	return g.value
}

// Contract narrows the gate to its meet with v, returning whether the
// value actually shrank. Contract never widens: silent drift must be
// impossible.
func (g *Gate) Contract(v interval.Interval) bool {
	before := g.value
	g.value = g.value.Meet(v)
	return !g.value.Equal(before)
}

// Replace overwrites the gate's value outright, bypassing the
// meet-only discipline of Contract. Used by tube.Tube's elementwise
// arithmetic family, Inflate and ReadFrom, where the operation redefines
// the enclosed signal
// rather than narrowing knowledge of it; inclusion-monotonicity of
// outward-rounded interval operations keeps gates within the codomain
// as long as the same transform is applied to a slice's codomain and
// its gates.
func (g *Gate) Replace(v interval.Interval) {
	g.value = v
}

// Slice is one cell of a Tube: a time interval with a codomain and two
// boundary Gates. prev/next are non-owning references into the owning
// Tube's chain (absent — nil — at the two ends of the tube).
type Slice struct {
	tDomain  interval.Interval
	codomain interval.Interval

	inputGate  *Gate
	outputGate *Gate

	prev, next *Slice
}

// New builds a Slice over tDomain with the given codomain, wiring in
// the supplied (possibly freshly allocated, possibly shared with a
// neighbour) gates. tDomain must have positive diameter.
func New(tDomain, codomain interval.Interval, inputGate, outputGate *Gate) (*Slice, error) {
	if tDomain.IsEmpty() || tDomain.Diam() <= 0 {
		return nil, ErrNonPositiveDiameter
	}
	s := &Slice{tDomain: tDomain, codomain: codomain, inputGate: inputGate, outputGate: outputGate}
	s.normalizeGates()
	return s, nil
}

// TDomain returns the slice's time interval.
func (s *Slice) TDomain() interval.Interval { return s.tDomain }

// Codomain returns the enclosure over the slice's open interior.
func (s *Slice) Codomain() interval.Interval { return s.codomain }

// InputGate returns the enclosure at the slice's left boundary.
func (s *Slice) InputGate() interval.Interval { return s.inputGate.Value() }

// OutputGate returns the enclosure at the slice's right boundary.
func (s *Slice) OutputGate() interval.Interval { return s.outputGate.Value() }

// InputGatePtr exposes the shared Gate object, used by tube.Tube to wire
// chain neighbours without copying values.
func (s *Slice) InputGatePtr() *Gate { return s.inputGate }

// OutputGatePtr exposes the shared Gate object.
func (s *Slice) OutputGatePtr() *Gate { return s.outputGate }

// Prev returns the preceding slice in the chain, or nil at the start.
func (s *Slice) Prev() *Slice { return s.prev }

// Next returns the following slice in the chain, or nil at the end.
func (s *Slice) Next() *Slice { return s.next }

// SetLinks wires the chain neighbours; only tube.Tube calls this.
func (s *Slice) SetLinks(prev, next *Slice) {
	s.prev, s.next = prev, next
}

// IsEmpty reports whether the slice is empty: its codomain or either
// gate is the empty interval.
func (s *Slice) IsEmpty() bool {
	return s.codomain.IsEmpty() || s.inputGate.Value().IsEmpty() || s.outputGate.Value().IsEmpty()
}

// normalizeGates re-establishes the gates-within-codomain invariant by
// contracting both gates into the current codomain. Called after every
// codomain mutation.
func (s *Slice) normalizeGates() {
	s.inputGate.Contract(s.codomain)
	s.outputGate.Contract(s.codomain)
}

// ReplaceCodomain overwrites the codomain outright without touching the
// gates, the counterpart to Gate.Replace used by tube.Tube's elementwise
// arithmetic family.
func (s *Slice) ReplaceCodomain(v interval.Interval) {
	s.codomain = v
}

// SetEnvelope contracts the codomain to its meet with v, then restores
// the gates-within-codomain invariant by contracting both gates into
// the new codomain. Returns whether anything shrank.
func (s *Slice) SetEnvelope(v interval.Interval) bool {
	before := s.codomain
	s.codomain = s.codomain.Meet(v)
	shrunk := !s.codomain.Equal(before)
	s.normalizeGates()
	return shrunk
}

// SetInputGate contracts the input gate to its meet with v (which also
// contracts the output gate of the preceding slice, since they are the
// same Gate object), then re-intersects with the codomain.
func (s *Slice) SetInputGate(v interval.Interval) bool {
	shrunk := s.inputGate.Contract(v)
	s.inputGate.Contract(s.codomain)
	return shrunk
}

// SetOutputGate contracts the output gate to its meet with v.
func (s *Slice) SetOutputGate(v interval.Interval) bool {
	shrunk := s.outputGate.Contract(v)
	s.outputGate.Contract(s.codomain)
	return shrunk
}

// Inflate widens the codomain and both gates by ±r.
func (s *Slice) Inflate(r float64) {
	s.codomain = s.codomain.Inflate(r)
	s.inputGate.value = s.inputGate.value.Inflate(r)
	s.outputGate.value = s.outputGate.value.Inflate(r)
}

// Hull returns the enclosure hull of the input gate, codomain, and
// output gate — the tightest single interval containing the whole
// slice, used by Tube.Eval and the synthesis tree.
func (s *Slice) Hull() interval.Interval {
	return s.inputGate.Value().Hull(s.codomain).Hull(s.outputGate.Value())
}
