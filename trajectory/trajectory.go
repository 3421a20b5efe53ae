package trajectory

import (
	"errors"
	"sort"

	"github.com/tubex-go/tubex/interval"
)

// ErrNoPoints indicates a tabulated Trajectory was built from an empty map.
var ErrNoPoints = errors.New("trajectory: no points given")

// ErrNotTabulated indicates Set was called on a symbolic Trajectory.
var ErrNotTabulated = errors.New("trajectory: not tabulated")

// Trajectory is a point-valued signal: either tabulated (piecewise-linear
// between sampled instants) or symbolic (backed by a function of t).
//
// A Trajectory built by NewFromMap owns its points; one built by
// NewFromFunction owns only the domain and the two evaluator closures.
// The two representations never mix within one value.
type Trajectory struct {
	domain interval.Interval
	points map[float64]float64 // nil for symbolic trajectories
	times  []float64           // sorted cache of map keys, nil until needed

	at    func(t float64) float64             // symbolic point evaluator
	rng   func(t interval.Interval) interval.Interval // symbolic range evaluator
}

// NewFromMap builds a tabulated Trajectory, piecewise-linear between the
// given instants. The domain is the hull of the map's keys.
func NewFromMap(m map[float64]float64) (*Trajectory, error) {
	if len(m) == 0 {
		return nil, ErrNoPoints
	}
	points := make(map[float64]float64, len(m))
	times := make([]float64, 0, len(m))
	for t, y := range m {
		points[t] = y
		times = append(times, t)
	}
	sort.Float64s(times)
	return &Trajectory{
		domain: interval.New(times[0], times[len(times)-1]),
		points: points,
		times:  times,
	}, nil
}

// NewFromFunction builds a symbolic Trajectory over domain, evaluated by
// at (point) and rng (outward-rounded range), mirroring tubex_Function's
// role as the analytic definition of a Trajectory.
func NewFromFunction(domain interval.Interval, at func(float64) float64, rng func(interval.Interval) interval.Interval) *Trajectory {
	return &Trajectory{domain: domain, at: at, rng: rng}
}

// NotDefined reports whether the Trajectory carries neither points nor a
// function (the zero value, or a Trajectory over the empty domain).
func (tr *Trajectory) NotDefined() bool {
	return tr == nil || tr.domain.IsEmpty() || (tr.points == nil && tr.at == nil)
}

// Domain returns the time domain over which the Trajectory is defined.
func (tr *Trajectory) Domain() interval.Interval {
	return tr.domain
}

// Codomain returns the hull of the Trajectory's values over its domain.
func (tr *Trajectory) Codomain() interval.Interval {
	return tr.Eval(tr.domain)
}

// SampledTimes returns the sorted sample instants of a tabulated
// Trajectory, or nil for a symbolic one.
func (tr *Trajectory) SampledTimes() []float64 {
	if !tr.isTabulated() {
		return nil
	}
	out := make([]float64, len(tr.times))
	copy(out, tr.times)
	return out
}

// isTabulated reports whether tr is backed by a point map.
func (tr *Trajectory) isTabulated() bool {
	return tr.points != nil
}

// At evaluates the Trajectory at a single instant t. For a tabulated
// Trajectory, values between sampled instants are linearly interpolated;
// t outside the domain clamps to the nearest sampled instant, mirroring
// the original's tolerance for boundary queries.
func (tr *Trajectory) At(t float64) float64 {
	if tr.isTabulated() {
		return tr.interpolate(t)
	}
	return tr.at(t)
}

func (tr *Trajectory) interpolate(t float64) float64 {
	n := len(tr.times)
	if t <= tr.times[0] {
		return tr.points[tr.times[0]]
	}
	if t >= tr.times[n-1] {
		return tr.points[tr.times[n-1]]
	}
	// binary search for the bracketing pair [times[i], times[i+1]]
	i := sort.Search(n, func(i int) bool { return tr.times[i] >= t })
	if tr.times[i] == t {
		return tr.points[tr.times[i]]
	}
	t0, t1 := tr.times[i-1], tr.times[i]
	y0, y1 := tr.points[t0], tr.points[t1]
	ratio := (t - t0) / (t1 - t0)
	return y0 + ratio*(y1-y0)
}

// Eval returns the outward-rounded range of the Trajectory over the time
// interval t.
func (tr *Trajectory) Eval(t interval.Interval) interval.Interval {
	if tr.NotDefined() || t.IsEmpty() || !tr.domain.Intersects(t) {
		return interval.Empty()
	}
	t = t.Meet(tr.domain)
	if !tr.isTabulated() {
		return tr.rng(t)
	}
	// Piecewise-linear range: the hull of endpoint values and every
	// sampled value strictly inside t (linear segments attain their
	// extrema at segment endpoints).
	result := interval.Degenerate(tr.interpolate(t.Lb())).Hull(interval.Degenerate(tr.interpolate(t.Ub())))
	for _, ti := range tr.times {
		if ti > t.Lb() && ti < t.Ub() {
			result = result.Hull(interval.Degenerate(tr.points[ti]))
		}
	}
	return result
}

// Set adds or overwrites the sampled value at instant t, extending the
// domain if necessary. Only valid on tabulated trajectories.
func (tr *Trajectory) Set(t, y float64) error {
	if !tr.isTabulated() {
		return ErrNotTabulated
	}
	if _, exists := tr.points[t]; !exists {
		i := sort.SearchFloat64s(tr.times, t)
		tr.times = append(tr.times, 0)
		copy(tr.times[i+1:], tr.times[i:])
		tr.times[i] = t
	}
	tr.points[t] = y
	tr.domain = tr.domain.Hull(interval.Degenerate(t))
	return nil
}

// TruncateDomain restricts the Trajectory's domain to d ∩ tr.Domain();
// sampled points outside the resulting domain are dropped.
func (tr *Trajectory) TruncateDomain(d interval.Interval) {
	tr.domain = tr.domain.Meet(d)
	if !tr.isTabulated() {
		return
	}
	kept := tr.times[:0]
	for _, t := range tr.times {
		if tr.domain.Contains(t) {
			kept = append(kept, t)
		} else {
			delete(tr.points, t)
		}
	}
	tr.times = kept
}

// ShiftDomain translates every sampled instant (and the domain) by ref.
func (tr *Trajectory) ShiftDomain(ref float64) {
	tr.domain = interval.New(tr.domain.Lb()+ref, tr.domain.Ub()+ref)
	if !tr.isTabulated() {
		fn, rng := tr.at, tr.rng
		tr.at = func(t float64) float64 { return fn(t - ref) }
		tr.rng = func(t interval.Interval) interval.Interval { return rng(interval.New(t.Lb()-ref, t.Ub()-ref)) }
		return
	}
	shifted := make(map[float64]float64, len(tr.points))
	times := make([]float64, len(tr.times))
	for i, t := range tr.times {
		nt := t + ref
		times[i] = nt
		shifted[nt] = tr.points[t]
	}
	tr.points, tr.times = shifted, times
}
