package ctc

import (
	"math"

	"github.com/tubex-go/tubex/interval"
	"github.com/tubex-go/tubex/tube"
)

// fixedPointTolerance bounds the iterate-to-fixpoint loop of Contract:
// it stops once no domain shrinks by more than this absolute amount.
const fixedPointTolerance = 1e-9

// Eval enforces y ∈ x(t) ∧ ẋ ∈ v for interval-valued T, Y bound
// in-place. T and Y are owned by the caller (typically
// registered as domain.Domain scalars in a network.Network); X and V
// are the position and derivative tubes, which must share slicing.
type Eval struct {
	T, Y *interval.Interval
	X, V *tube.Tube
}

// NewEval builds an Eval contractor over the given bound domains.
func NewEval(t, y *interval.Interval, x, v *tube.Tube) *Eval {
	return &Eval{T: t, Y: y, X: x, V: v}
}

// Name returns the canonical LaTeX label for the evaluation contractor.
func (e *Eval) Name() string {
	return `\mathcal{C}_{\textrm{eval}}`
}

// Contract narrows T against X's codomain, then Y against X over T,
// then each X slice meeting T against the slope bound taken from V, and
// iterates until T and Y stop changing (steps 1–3); it then always
// samples X and V at the two endpoints of the narrowed T (step 4) to
// concentrate future contraction. It returns ErrMismatchedSlicing when X
// and V differ in domain or slice count; an inconsistent constraint
// manifests as T and Y both collapsing to empty, not as an error.
func (e *Eval) Contract() (bool, error) {
	if !e.X.Domain().Equal(e.V.Domain()) || e.X.NbSlices() != e.V.NbSlices() {
		return false, tube.ErrMismatchedSlicing
	}
	defer func() {
		e.X.RefreshSynthesis()
		e.V.RefreshSynthesis()
	}()

	anyShrunk := false
	for {
		beforeT, beforeY := *e.T, *e.Y

		newT := e.X.Invert(*e.Y, *e.T)
		*e.T = newT
		if e.T.IsEmpty() {
			*e.Y = interval.Empty()
			return true, nil
		}

		*e.Y = e.Y.Meet(e.X.Eval(*e.T))
		if e.Y.IsEmpty() {
			*e.T = interval.Empty()
			return true, nil
		}

		xs, vs := e.X.Slices(), e.V.Slices()
		for i, s := range xs {
			localContract(s, vs[i], *e.T, *e.Y)
		}

		if beforeT.Equal(*e.T) && beforeY.Equal(*e.Y) {
			break
		}
		anyShrunk = true
		if converged(beforeT, *e.T, fixedPointTolerance) && converged(beforeY, *e.Y, fixedPointTolerance) {
			break
		}
	}

	e.X.Sample(e.T.Lb())
	e.X.Sample(e.T.Ub())
	e.V.Sample(e.T.Lb())
	e.V.Sample(e.T.Ub())

	return anyShrunk, nil
}

// localContract narrows xs's codomain (and, through it, its gates) so
// that it stays consistent with y holding somewhere in xs.t_domain ∩ t
// given the derivative bound vs.Codomain(): over the whole slice, x can
// depart from y by at most diam(slice) · max(|v.lb|, |v.ub|), a sound
// (if not maximally tight) superset of the exact localized
// forward/backward propagation Deriv performs.
func localContract(xs, vs interface {
	TDomain() interval.Interval
	Codomain() interval.Interval
	SetEnvelope(interval.Interval) bool
}, t, y interval.Interval) {
	if !xs.TDomain().Intersects(t) {
		return
	}
	margin := xs.TDomain().Diam() * maxMagnitude(vs.Codomain())
	xs.SetEnvelope(y.Inflate(margin))
}

func maxMagnitude(v interval.Interval) float64 {
	if v.IsEmpty() {
		return 0
	}
	return math.Max(math.Abs(v.Lb()), math.Abs(v.Ub()))
}

func converged(before, after interval.Interval, tol float64) bool {
	if before.IsEmpty() || after.IsEmpty() {
		return true
	}
	return math.Abs(before.Lb()-after.Lb()) <= tol && math.Abs(before.Ub()-after.Ub()) <= tol
}
