package interval

import "math"

// Elementary functions over intervals, supplementing the basic
// arithmetic with the catalogue tubex_traj_arithmetic.h exposes for
// Trajectory (cos, sin, abs, sqr, sqrt, exp, log, pow, atan2, ...),
// grounded the same way for Interval so tube.Tube arithmetic and
// trajectory evaluation share one
// rounding-safe implementation.

// Abs returns |x|.
func (x Interval) Abs() Interval {
	if x.IsEmpty() {
		return Empty()
	}
	if x.Lo >= 0 {
		return x
	}
	if x.Hi <= 0 {
		return x.Neg()
	}
	return Interval{Lo: 0, Hi: up(math.Max(-x.Lo, x.Hi))}
}

// Sqr returns x^2.
func (x Interval) Sqr() Interval {
	return x.Mul(x)
}

// Sqrt returns the outward-rounded range of sqrt over x ∩ [0, +Inf); a
// wholly negative input produces the empty set (no domain value), and a
// straddling input is clipped at zero rather than raising an error.
func (x Interval) Sqrt() Interval {
	if x.IsEmpty() {
		return Empty()
	}
	lo := x.Lo
	if lo < 0 {
		lo = 0
	}
	if lo > x.Hi {
		return Empty()
	}
	return Interval{Lo: math.Max(0, down(math.Sqrt(lo))), Hi: up(math.Sqrt(x.Hi))}
}

// Exp returns exp(x).
func (x Interval) Exp() Interval {
	if x.IsEmpty() {
		return Empty()
	}
	return Interval{Lo: down(math.Exp(x.Lo)), Hi: up(math.Exp(x.Hi))}
}

// Log returns log(x) over x ∩ (0, +Inf); an input reaching down to zero
// or below gets a -Inf lower bound, and a wholly non-positive input
// produces the empty set, rather than failing.
func (x Interval) Log() Interval {
	if x.IsEmpty() {
		return Empty()
	}
	if x.Hi <= 0 {
		return Empty()
	}
	lo := x.Lo
	var lb float64
	if lo <= 0 {
		lb = math.Inf(-1)
	} else {
		lb = down(math.Log(lo))
	}
	return Interval{Lo: lb, Hi: up(math.Log(x.Hi))}
}

// Pow returns x^p for an integer exponent p, monotone-aware of sign
// changes across zero for even/odd powers.
func (x Interval) Pow(p int) Interval {
	if x.IsEmpty() {
		return Empty()
	}
	if p == 0 {
		return Degenerate(1)
	}
	if p < 0 {
		return Degenerate(1).Div(x.Pow(-p))
	}
	if p%2 == 0 {
		return x.Abs().powMonotone(p)
	}
	return Interval{Lo: down(signedPow(x.Lo, p)), Hi: up(signedPow(x.Hi, p))}
}

func (x Interval) powMonotone(p int) Interval {
	return Interval{Lo: math.Max(0, down(math.Pow(x.Lo, float64(p)))), Hi: up(math.Pow(x.Hi, float64(p)))}
}

func signedPow(v float64, p int) float64 {
	r := math.Pow(math.Abs(v), float64(p))
	if v < 0 && p%2 != 0 {
		return -r
	}
	return r
}

// sinCosRange bounds trig functions over a bounded interval by sampling
// the endpoints and any critical point (multiple of π/2) inside x; wide
// or unbounded inputs saturate to [-1, 1], which is always sound.
func sinCosRange(x Interval, f func(float64) float64, critical func(k int) float64, period float64) Interval {
	if x.IsEmpty() {
		return Empty()
	}
	if math.IsInf(x.Lo, 0) || math.IsInf(x.Hi, 0) || x.Hi-x.Lo >= period {
		return New(-1, 1)
	}
	lo, hi := f(x.Lo), f(x.Lo)
	if v := f(x.Hi); v < lo {
		lo = v
	} else if v > hi {
		hi = v
	}
	k0 := int(math.Floor(x.Lo / (period / 4)))
	for k := k0; ; k++ {
		c := critical(k)
		if c < x.Lo {
			continue
		}
		if c > x.Hi {
			break
		}
		v := f(c)
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return Interval{Lo: down(lo), Hi: up(hi)}
}

// Sin returns the range of sin over x.
func (x Interval) Sin() Interval {
	return sinCosRange(x, math.Sin, func(k int) float64 { return math.Pi/2 + float64(k)*math.Pi/2 }, 2*math.Pi)
}

// Cos returns the range of cos over x.
func (x Interval) Cos() Interval {
	return sinCosRange(x, math.Cos, func(k int) float64 { return float64(k) * math.Pi / 2 }, 2*math.Pi)
}

// Tan returns the range of tan over x; intervals straddling an odd
// multiple of π/2 widen to Whole() since tan is unbounded there.
func (x Interval) Tan() Interval {
	if x.IsEmpty() {
		return Empty()
	}
	if math.IsInf(x.Lo, 0) || math.IsInf(x.Hi, 0) {
		return Whole()
	}
	k0 := math.Floor((x.Lo/math.Pi - 0.5)) + 0.5
	asymptote := k0 * math.Pi
	for asymptote < x.Lo {
		asymptote += math.Pi
	}
	if asymptote <= x.Hi {
		return Whole()
	}
	return Interval{Lo: down(math.Tan(x.Lo)), Hi: up(math.Tan(x.Hi))}
}
