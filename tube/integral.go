package tube

import "github.com/tubex-go/tubex/interval"

// Integral returns an enclosure of ∫₀ᵗ x(s) ds, accumulating the lower
// and upper primitive separately so each is guaranteed monotone in t
// even though the enclosure as a whole need not be.
func (tu *Tube) Integral(t float64) interval.Interval {
	lo, hi := tu.primitiveRange(tu.domain.Lb(), t)
	return interval.New(lo, hi)
}

// PartialIntegral returns the pair (lower_primitive_range,
// upper_primitive_range) over [t1, t2]: the range the lower primitive of
// x can take at t1 and t2, and likewise for the upper primitive.
func (tu *Tube) PartialIntegral(t1, t2 float64) (interval.Interval, interval.Interval) {
	lo1, hi1 := tu.primitiveRange(tu.domain.Lb(), t1)
	lo2, hi2 := tu.primitiveRange(tu.domain.Lb(), t2)
	lowerRange := interval.New(minF(lo1, lo2), maxF(lo1, lo2))
	upperRange := interval.New(minF(hi1, hi2), maxF(hi1, hi2))
	return lowerRange, upperRange
}

// primitiveRange returns the lower and upper primitive values of x at t,
// i.e. ∫ from the domain's start to t of the codomain's lower and upper
// bound respectively. With a synthesis tree the whole-slice contribution
// is read from its cached sums in O(log n); the partial slice
// straddling t is always computed directly.
func (tu *Tube) primitiveRange(t0, t float64) (float64, float64) {
	if t <= t0 {
		return 0, 0
	}
	clamped := t
	if clamped > tu.domain.Ub() {
		clamped = tu.domain.Ub()
	}

	idx, _ := tu.boundingIndices(interval.Degenerate(clamped))
	var lo, hi float64
	if tu.synth != nil && idx > 0 {
		lo, hi = tu.synth.rangeSums(0, idx-1)
	} else if idx > 0 {
		i := 0
		for s := tu.head; s != nil && i < idx; s = s.Next() {
			diam := s.TDomain().Diam()
			cod := s.Codomain()
			lo += diam * cod.Lb()
			hi += diam * cod.Ub()
			i++
		}
	}

	s := tu.SliceByIndex(idx)
	partial := clamped - s.TDomain().Lb()
	cod := s.Codomain()
	lo += partial * cod.Lb()
	hi += partial * cod.Ub()
	return lo, hi
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
