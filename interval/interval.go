package interval

import (
	"math"
	"strconv"
)

// Interval is a closed, possibly empty or unbounded, real range [Lo, Hi].
//
// The zero value is the degenerate point {0}, not the empty set; use
// Empty() for the empty set and New/Degenerate for everything else.
type Interval struct {
	Lo float64
	Hi float64
}

// Empty returns the canonical empty interval: Lo = +Inf, Hi = -Inf, as
// written by the binary serialization format of tube's Tube.WriteTo.
func Empty() Interval {
	return Interval{Lo: math.Inf(1), Hi: math.Inf(-1)}
}

// Whole returns (-Inf, +Inf), the top of the interval lattice.
func Whole() Interval {
	return Interval{Lo: math.Inf(-1), Hi: math.Inf(1)}
}

// New builds the interval [lo, hi]. If lo > hi the result is empty,
// matching ibex's convention that construction never panics on bad bounds —
// callers that need to fail fast on a precondition violation should check
// IsEmpty() themselves.
func New(lo, hi float64) Interval {
	if lo > hi {
		return Empty()
	}
	return Interval{Lo: lo, Hi: hi}
}

// Degenerate returns the single-point interval {x}.
func Degenerate(x float64) Interval {
	return Interval{Lo: x, Hi: x}
}

// IsEmpty reports whether x is the empty set.
func (x Interval) IsEmpty() bool {
	return x.Lo > x.Hi
}

// Lb returns the lower bound.
func (x Interval) Lb() float64 { return x.Lo }

// Ub returns the upper bound.
func (x Interval) Ub() float64 { return x.Hi }

// Diam returns the diameter (Hi - Lo), or 0 for the empty set.
func (x Interval) Diam() float64 {
	if x.IsEmpty() {
		return 0
	}
	return x.Hi - x.Lo
}

// Mid returns the midpoint, or NaN for the empty set.
func (x Interval) Mid() float64 {
	if x.IsEmpty() {
		return math.NaN()
	}
	return 0.5 * (x.Lo + x.Hi)
}

// Contains reports whether the real value v lies in x.
func (x Interval) Contains(v float64) bool {
	if x.IsEmpty() {
		return false
	}
	return v >= x.Lo && v <= x.Hi
}

// ContainsInterval reports whether x is a superset of y (the empty set is
// a subset of every interval, including itself).
func (x Interval) ContainsInterval(y Interval) bool {
	if y.IsEmpty() {
		return true
	}
	if x.IsEmpty() {
		return false
	}
	return x.Lo <= y.Lo && y.Hi <= x.Hi
}

// Intersects reports whether x and y share at least one point.
func (x Interval) Intersects(y Interval) bool {
	if x.IsEmpty() || y.IsEmpty() {
		return false
	}
	return x.Lo <= y.Hi && y.Lo <= x.Hi
}

// Equal reports bound-for-bound equality; two empty intervals are equal
// regardless of how they were produced.
func (x Interval) Equal(y Interval) bool {
	if x.IsEmpty() && y.IsEmpty() {
		return true
	}
	return x.Lo == y.Lo && x.Hi == y.Hi
}

// Hull returns the smallest interval containing both x and y (the `|`
// operator).
func (x Interval) Hull(y Interval) Interval {
	if x.IsEmpty() {
		return y
	}
	if y.IsEmpty() {
		return x
	}
	return Interval{Lo: math.Min(x.Lo, y.Lo), Hi: math.Max(x.Hi, y.Hi)}
}

// Meet returns the intersection of x and y (the `&` operator).
func (x Interval) Meet(y Interval) Interval {
	if x.IsEmpty() || y.IsEmpty() {
		return Empty()
	}
	return New(math.Max(x.Lo, y.Lo), math.Min(x.Hi, y.Hi))
}

// down rounds v outward (downward) by one ULP, the outward-rounding
// primitive every arithmetic operation below uses for its lower bound.
func down(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	return math.Nextafter(v, math.Inf(-1))
}

// up rounds v outward (upward) by one ULP, used for upper bounds.
func up(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	return math.Nextafter(v, math.Inf(1))
}

// Neg returns -x.
func (x Interval) Neg() Interval {
	if x.IsEmpty() {
		return Empty()
	}
	return Interval{Lo: -x.Hi, Hi: -x.Lo}
}

// Add returns x + y, outward rounded.
func (x Interval) Add(y Interval) Interval {
	if x.IsEmpty() || y.IsEmpty() {
		return Empty()
	}
	return Interval{Lo: down(x.Lo + y.Lo), Hi: up(x.Hi + y.Hi)}
}

// AddScalar returns x + c.
func (x Interval) AddScalar(c float64) Interval {
	return x.Add(Degenerate(c))
}

// Sub returns x - y, outward rounded.
func (x Interval) Sub(y Interval) Interval {
	if x.IsEmpty() || y.IsEmpty() {
		return Empty()
	}
	return Interval{Lo: down(x.Lo - y.Hi), Hi: up(x.Hi - y.Lo)}
}

// Mul returns x * y, outward rounded, handling sign combinations via
// the four-corner rule.
func (x Interval) Mul(y Interval) Interval {
	if x.IsEmpty() || y.IsEmpty() {
		return Empty()
	}
	a, b, c, d := x.Lo*y.Lo, x.Lo*y.Hi, x.Hi*y.Lo, x.Hi*y.Hi
	lo := math.Min(math.Min(a, b), math.Min(c, d))
	hi := math.Max(math.Max(a, b), math.Max(c, d))
	return Interval{Lo: down(lo), Hi: up(hi)}
}

// MulScalar returns x * c.
func (x Interval) MulScalar(c float64) Interval {
	return x.Mul(Degenerate(c))
}

// Div returns x / y. A divisor containing zero is a domain issue, not a
// failure: the result widens to Whole() rather than raising an error,
// exactly as `1/[-e,e] = (-Inf,+Inf)`.
func (x Interval) Div(y Interval) Interval {
	if x.IsEmpty() || y.IsEmpty() {
		return Empty()
	}
	if y.Contains(0) {
		if x.Contains(0) {
			// 0/[...] with a zero divisor containing zero: still sound to
			// widen fully rather than special-case {0}/{0}.
			return Whole()
		}
		return Whole()
	}
	return x.Mul(Interval{Lo: down(1 / y.Hi), Hi: up(1 / y.Lo)})
}

// Bisect splits x at the fraction ratio∈(0,1) of its diameter into two
// adjacent sub-intervals (L, R) with L.Hi == R.Lo.
func (x Interval) Bisect(ratio float64) (Interval, Interval) {
	if x.IsEmpty() {
		return Empty(), Empty()
	}
	mid := x.Lo + ratio*(x.Hi-x.Lo)
	return Interval{Lo: x.Lo, Hi: mid}, Interval{Lo: mid, Hi: x.Hi}
}

// Inflate widens x by ±r on each side (r >= 0); a no-op on the empty set.
func (x Interval) Inflate(r float64) Interval {
	if x.IsEmpty() {
		return Empty()
	}
	return Interval{Lo: down(x.Lo - r), Hi: up(x.Hi + r)}
}

// Volume returns the domain-volume metric used by the contractor network
// to judge contraction ratio: the diameter, with an empty interval
// treated as the fixed-point value 0 (network.Network skips the ratio
// check only for a domain whose volume was already 0; a domain that goes
// to empty has shrunk fully and re-enqueues its dependents).
func (x Interval) Volume() float64 {
	return x.Diam()
}

// String renders x the way ibex-derived libraries traditionally do.
func (x Interval) String() string {
	if x.IsEmpty() {
		return "∅"
	}
	return "[" + ftoa(x.Lo) + "," + ftoa(x.Hi) + "]"
}

func ftoa(v float64) string {
	if math.IsInf(v, 1) {
		return "+oo"
	}
	if math.IsInf(v, -1) {
		return "-oo"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
