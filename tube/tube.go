package tube

import (
	"errors"
	"math"

	"github.com/tubex-go/tubex/interval"
	"github.com/tubex-go/tubex/slice"
	"github.com/tubex-go/tubex/trajectory"
)

// Sentinel errors, package-prefixed and errors.Is-friendly.
var (
	// ErrInvalidDomain indicates a non-ordered or degenerate time domain.
	ErrInvalidDomain = errors.New("tube: invalid time domain")

	// ErrInvalidTimestep indicates a non-positive timestep.
	ErrInvalidTimestep = errors.New("tube: timestep must be positive")

	// ErrMismatchedSlicing indicates an operation (typically Equality or
	// CtcDeriv) was given tubes whose slice boundaries differ and that
	// cannot be aligned implicitly.
	ErrMismatchedSlicing = errors.New("tube: mismatched slicing")

	// ErrOutOfRange is a precondition-violation error: it
	// is returned only by APIs that document it, and is a programming
	// error everywhere else — see Tube.SliceByIndex.
	ErrOutOfRange = errors.New("tube: index out of range")
)

// Tube is a piecewise-constant interval-valued enclosure over a closed
// time domain: an ordered chain of slice.Slice.
//
// Tube owns its slice chain and its optional synthesis tree exclusively;
// Slice.prev/next are non-owning references into that
// chain whose lifetime equals the Tube's.
type Tube struct {
	domain interval.Interval

	head, tail *slice.Slice
	n          int

	boundaries []float64 // n+1 sorted slice-boundary instants, kept current by buildChain/Sample/RemoveGate

	synth *synthesisTree // nil unless EnableSynthesis(true) was called
}

// refreshBoundaries recomputes the cached, sorted slice-boundary array
// used for O(log n) index lookups; called after any structural change.
func (tu *Tube) refreshBoundaries() {
	tu.boundaries = make([]float64, 0, tu.n+1)
	s := tu.head
	tu.boundaries = append(tu.boundaries, s.TDomain().Lb())
	for ; s != nil; s = s.Next() {
		tu.boundaries = append(tu.boundaries, s.TDomain().Ub())
	}
}

// defaultSynthesis is the package-level default applied to new tubes,
// toggled by EnableSyntheses, which sets the default for future tubes.
var defaultSynthesis = false

// EnableSyntheses sets the default synthesis-tree policy for tubes
// created afterwards; it does not affect existing tubes.
func EnableSyntheses(enabled bool) {
	defaultSynthesis = enabled
}

// NewConstant builds a Tube over domain, sliced at uniform timestep dt,
// every slice (and every gate) initialized to codomain.
func NewConstant(domain interval.Interval, dt float64, codomain interval.Interval) (*Tube, error) {
	bounds, err := sliceBoundaries(domain, dt)
	if err != nil {
		return nil, err
	}
	tu := &Tube{domain: domain}
	tu.buildChain(bounds, func(int, interval.Interval) interval.Interval { return codomain })
	return tu, nil
}

// NewFromFunction builds a Tube over domain, sliced at uniform timestep
// dt, where slice i holds the outward-rounded range of f over its time
// domain, mirroring tubex_Function.cpp's eval(Interval) path.
func NewFromFunction(domain interval.Interval, dt float64, f func(interval.Interval) interval.Interval) (*Tube, error) {
	bounds, err := sliceBoundaries(domain, dt)
	if err != nil {
		return nil, err
	}
	tu := &Tube{domain: domain}
	tu.buildChain(bounds, func(i int, td interval.Interval) interval.Interval { return f(td) })
	return tu, nil
}

// NewFromTrajectories builds a Tube over domain, sliced at uniform
// timestep dt, whose slice codomains are the hull of lower and upper's
// ranges over each slice's time domain — the "pair of lower/upper
// trajectories" constructor.
func NewFromTrajectories(domain interval.Interval, dt float64, lower, upper *trajectory.Trajectory) (*Tube, error) {
	bounds, err := sliceBoundaries(domain, dt)
	if err != nil {
		return nil, err
	}
	tu := &Tube{domain: domain}
	tu.buildChain(bounds, func(i int, td interval.Interval) interval.Interval {
		return lower.Eval(td).Hull(upper.Eval(td))
	})
	return tu, nil
}

// sliceBoundaries computes the n+1 slice-boundary instants tiling
// domain at uniform step dt; the final slice absorbs any remainder so
// dt need not evenly divide the domain's diameter.
func sliceBoundaries(domain interval.Interval, dt float64) ([]float64, error) {
	if domain.IsEmpty() || domain.Diam() <= 0 {
		return nil, ErrInvalidDomain
	}
	if dt <= 0 {
		return nil, ErrInvalidTimestep
	}
	t0, tf := domain.Lb(), domain.Ub()
	n := int(math.Ceil((tf - t0) / dt))
	if n < 1 {
		n = 1
	}
	bounds := make([]float64, n+1)
	for i := 0; i < n; i++ {
		bounds[i] = t0 + float64(i)*dt
	}
	bounds[n] = tf
	return bounds, nil
}

// buildChain allocates n = len(bounds)-1 fresh slices tiling bounds,
// each codomain computed by codomainFor(index, tDomain), gates
// initialized to the hull of the two adjacent slice codomains; slice.New
// then contracts each gate into both bordering codomains, so an interior
// gate ends up as their meet.
func (tu *Tube) buildChain(bounds []float64, codomainFor func(int, interval.Interval) interval.Interval) {
	n := len(bounds) - 1
	codomains := make([]interval.Interval, n)
	for i := 0; i < n; i++ {
		codomains[i] = codomainFor(i, interval.New(bounds[i], bounds[i+1]))
	}

	gates := make([]*slice.Gate, n+1)
	gates[0] = slice.NewGate(codomains[0])
	for i := 1; i < n; i++ {
		gates[i] = slice.NewGate(codomains[i-1].Hull(codomains[i]))
	}
	gates[n] = slice.NewGate(codomains[n-1])

	slices := make([]*slice.Slice, n)
	for i := 0; i < n; i++ {
		s, _ := slice.New(interval.New(bounds[i], bounds[i+1]), codomains[i], gates[i], gates[i+1])
		slices[i] = s
	}
	for i := 0; i < n; i++ {
		var prev, next *slice.Slice
		if i > 0 {
			prev = slices[i-1]
		}
		if i < n-1 {
			next = slices[i+1]
		}
		slices[i].SetLinks(prev, next)
	}

	tu.head, tu.tail, tu.n = slices[0], slices[n-1], n
	tu.refreshBoundaries()
	if defaultSynthesis {
		tu.EnableSynthesis(true)
	}
}

// Domain returns the tube's time domain [t0, tf].
func (tu *Tube) Domain() interval.Interval { return tu.domain }

// NbSlices returns the number of slices in the chain.
func (tu *Tube) NbSlices() int { return tu.n }

// IsEmpty reports whether any slice is empty: gate-sharing propagates
// emptiness across the whole chain in practice, so a single empty slice
// is treated as making the whole tube empty for every query.
func (tu *Tube) IsEmpty() bool {
	for s := tu.head; s != nil; s = s.Next() {
		if s.IsEmpty() {
			return true
		}
	}
	return false
}

// Codomain returns the hull of every slice's enclosure — the tube's
// overall range.
func (tu *Tube) Codomain() interval.Interval {
	var h interval.Interval = interval.Empty()
	for s := tu.head; s != nil; s = s.Next() {
		h = h.Hull(s.Hull())
	}
	return h
}

// SliceAt returns the slice tiling instant t, or nil if t is outside the
// domain. Setters throughout this package silently ignore out-of-range
// time.
func (tu *Tube) SliceAt(t float64) *slice.Slice {
	if !tu.domain.Contains(t) {
		return nil
	}
	for s := tu.head; s != nil; s = s.Next() {
		td := s.TDomain()
		if t < td.Ub() || (t == td.Ub() && s.Next() == nil) {
			return s
		}
	}
	return tu.tail
}

// SliceIndexAt returns the index of the slice tiling instant t, or -1 if
// t is outside the domain, using the same tie-break as SliceAt (an
// instant exactly on an interior boundary belongs to the later
// slice).
func (tu *Tube) SliceIndexAt(t float64) int {
	if !tu.domain.Contains(t) {
		return -1
	}
	i := 0
	for s := tu.head; s != nil; s = s.Next() {
		td := s.TDomain()
		if t < td.Ub() || (t == td.Ub() && s.Next() == nil) {
			return i
		}
		i++
	}
	return tu.n - 1
}

// SliceByIndex returns the i-th slice (0-based). Index out of range is a
// precondition violation and panics, following the convention of
// panicking only at the boundary of misuse rather than inside the
// propagation hot path.
func (tu *Tube) SliceByIndex(i int) *slice.Slice {
	if i < 0 || i >= tu.n {
		panic(ErrOutOfRange)
	}
	s := tu.head
	for ; i > 0; i-- {
		s = s.Next()
	}
	return s
}

// Slices returns every slice in the chain, head to tail.
func (tu *Tube) Slices() []*slice.Slice {
	out := make([]*slice.Slice, 0, tu.n)
	for s := tu.head; s != nil; s = s.Next() {
		out = append(out, s)
	}
	return out
}

// index2input maps a slice index to the instant at which it starts,
// uniformly spaced over the domain. The source's `1.5 * index * Δ / n`
// factor is dropped here in favour of the unscaled `index*Δ/n`, which
// lands exactly on slice boundaries instead of partway into the next one.
func (tu *Tube) index2input(index int) float64 {
	delta := tu.domain.Diam()
	return tu.domain.Lb() + float64(index)*delta/float64(tu.n)
}

// input2index maps an instant to the slice index that would tile it
// under a uniform subdivision, clamping the exact upper bound to n-1.
func (tu *Tube) input2index(t float64) int {
	delta := tu.domain.Diam()
	idx := int(float64(tu.n) * (t - tu.domain.Lb()) / delta)
	if idx >= tu.n {
		idx = tu.n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
