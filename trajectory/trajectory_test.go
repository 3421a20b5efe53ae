package trajectory_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tubex-go/tubex/interval"
	"github.com/tubex-go/tubex/trajectory"
)

func TestNewFromMapInterpolates(t *testing.T) {
	tr, err := trajectory.NewFromMap(map[float64]float64{0: 0, 10: 10})
	require.NoError(t, err)

	assert.InDelta(t, 5, tr.At(5), 1e-9)
	assert.Equal(t, interval.New(0, 10), tr.Domain())
}

func TestNewFromMapEmptyErrors(t *testing.T) {
	_, err := trajectory.NewFromMap(nil)
	assert.ErrorIs(t, err, trajectory.ErrNoPoints)
}

func TestEvalRangeHullsEndpointsAndInterior(t *testing.T) {
	tr, err := trajectory.NewFromMap(map[float64]float64{0: 0, 5: 10, 10: 0})
	require.NoError(t, err)

	r := tr.Eval(interval.New(0, 10))
	assert.Equal(t, 0.0, r.Lb())
	assert.Equal(t, 10.0, r.Ub())
}

func TestSetExtendsDomain(t *testing.T) {
	tr, err := trajectory.NewFromMap(map[float64]float64{0: 0, 10: 10})
	require.NoError(t, err)

	require.NoError(t, tr.Set(20, 5))
	assert.Equal(t, 20.0, tr.Domain().Ub())
	assert.InDelta(t, 5, tr.At(20), 1e-9)
}

func TestSetOnSymbolicErrors(t *testing.T) {
	tr := trajectory.NewFromFunction(interval.New(0, 1), func(t float64) float64 { return t }, func(i interval.Interval) interval.Interval { return i })
	assert.ErrorIs(t, tr.Set(0, 0), trajectory.ErrNotTabulated)
}

func TestSymbolicTrajectory(t *testing.T) {
	tr := trajectory.NewFromFunction(interval.New(0, 10), math.Sin, func(i interval.Interval) interval.Interval { return i.Sin() })
	assert.InDelta(t, math.Sin(3), tr.At(3), 1e-12)
}

func TestArithmeticSqr(t *testing.T) {
	tr, err := trajectory.NewFromMap(map[float64]float64{0: 1, 1: 2, 2: 3})
	require.NoError(t, err)

	sq := trajectory.Sqr(tr)
	assert.InDelta(t, 4, sq.At(1), 1e-9)
	assert.InDelta(t, 9, sq.At(2), 1e-9)
}

func TestAddTwoTabulated(t *testing.T) {
	a, _ := trajectory.NewFromMap(map[float64]float64{0: 1, 1: 2})
	b, _ := trajectory.NewFromMap(map[float64]float64{0: 10, 1: 20})
	sum := trajectory.Add(a, b)
	assert.InDelta(t, 11, sum.At(0), 1e-9)
	assert.InDelta(t, 22, sum.At(1), 1e-9)
}

func TestShiftDomain(t *testing.T) {
	tr, _ := trajectory.NewFromMap(map[float64]float64{0: 1, 1: 2})
	tr.ShiftDomain(5)
	assert.Equal(t, interval.New(5, 6), tr.Domain())
	assert.InDelta(t, 1, tr.At(5), 1e-9)
}
