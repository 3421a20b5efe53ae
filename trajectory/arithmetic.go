package trajectory

import (
	"math"

	"github.com/tubex-go/tubex/interval"
)

// Free-function elementary arithmetic on Trajectory, mirroring the
// surface tubex_traj_arithmetic.h exposes (cos, sin, abs, sqr, sqrt,
// exp, log, pow, atan2, ...). Every function here is built on
// Transform/Combine so both tabulated and symbolic trajectories are
// handled uniformly.

// Transform returns a new Trajectory equal to f(tr(t)) at every instant.
// For a tabulated Trajectory, f is applied to the sampled values directly
// (no interpolation error introduced); for a symbolic Trajectory, f is
// composed with the existing evaluators. rng must be the outward-rounded
// range counterpart of f, used for the symbolic range evaluator.
func Transform(tr *Trajectory, f func(float64) float64, rng func(interval.Interval) interval.Interval) *Trajectory {
	if tr.isTabulated() {
		out := make(map[float64]float64, len(tr.points))
		for t, y := range tr.points {
			out[t] = f(y)
		}
		r, _ := NewFromMap(out)
		return r
	}
	inner := tr.at
	return NewFromFunction(tr.domain, func(t float64) float64 { return f(inner(t)) }, func(t interval.Interval) interval.Interval {
		return rng(tr.rng(t))
	})
}

// Combine returns a new Trajectory equal to f(x(t), y(t)) at every instant
// common to both domains.
func Combine(x, y *Trajectory, f func(a, b float64) float64) *Trajectory {
	domain := x.domain.Meet(y.domain)
	if x.isTabulated() && y.isTabulated() {
		out := make(map[float64]float64)
		for _, t := range x.times {
			if domain.Contains(t) {
				out[t] = f(x.points[t], y.At(t))
			}
		}
		for _, t := range y.times {
			if domain.Contains(t) {
				if _, done := out[t]; !done {
					out[t] = f(x.At(t), y.points[t])
				}
			}
		}
		r, _ := NewFromMap(out)
		return r
	}
	return NewFromFunction(domain, func(t float64) float64 { return f(x.At(t), y.At(t)) }, nil)
}

// Add returns x + y.
func Add(x, y *Trajectory) *Trajectory { return Combine(x, y, func(a, b float64) float64 { return a + b }) }

// Sub returns x - y.
func Sub(x, y *Trajectory) *Trajectory { return Combine(x, y, func(a, b float64) float64 { return a - b }) }

// Neg returns -x.
func Neg(x *Trajectory) *Trajectory {
	return Transform(x, func(v float64) float64 { return -v }, func(i interval.Interval) interval.Interval { return i.Neg() })
}

// Abs returns |x(·)|.
func Abs(x *Trajectory) *Trajectory {
	return Transform(x, math.Abs, func(i interval.Interval) interval.Interval { return i.Abs() })
}

// Sqr returns x(·)^2.
func Sqr(x *Trajectory) *Trajectory {
	return Transform(x, func(v float64) float64 { return v * v }, func(i interval.Interval) interval.Interval { return i.Sqr() })
}

// Sqrt returns √x(·).
func Sqrt(x *Trajectory) *Trajectory {
	return Transform(x, math.Sqrt, func(i interval.Interval) interval.Interval { return i.Sqrt() })
}

// Exp returns exp(x(·)).
func Exp(x *Trajectory) *Trajectory {
	return Transform(x, math.Exp, func(i interval.Interval) interval.Interval { return i.Exp() })
}

// Log returns log(x(·)).
func Log(x *Trajectory) *Trajectory {
	return Transform(x, math.Log, func(i interval.Interval) interval.Interval { return i.Log() })
}

// Cos returns cos(x(·)).
func Cos(x *Trajectory) *Trajectory {
	return Transform(x, math.Cos, func(i interval.Interval) interval.Interval { return i.Cos() })
}

// Sin returns sin(x(·)).
func Sin(x *Trajectory) *Trajectory {
	return Transform(x, math.Sin, func(i interval.Interval) interval.Interval { return i.Sin() })
}

// Tan returns tan(x(·)).
func Tan(x *Trajectory) *Trajectory {
	return Transform(x, math.Tan, func(i interval.Interval) interval.Interval { return i.Tan() })
}

// Atan2 returns arctan2(y(·), x(·)).
func Atan2(y, x *Trajectory) *Trajectory {
	return Combine(y, x, math.Atan2)
}

// Pow returns x(·)^p for an integer power p.
func Pow(x *Trajectory, p int) *Trajectory {
	return Transform(x, func(v float64) float64 { return math.Pow(v, float64(p)) }, func(i interval.Interval) interval.Interval { return i.Pow(p) })
}
