package tube_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tubex-go/tubex/interval"
	"github.com/tubex-go/tubex/tube"
)

func TestNewConstantTilesDomain(t *testing.T) {
	tu, err := tube.NewConstant(interval.New(0, 3), 1, interval.New(-1, 1))
	require.NoError(t, err)
	assert.Equal(t, 3, tu.NbSlices())
	assert.Equal(t, interval.New(-1, 1), tu.Codomain())
	assert.False(t, tu.IsEmpty())
}

func TestNewConstantRejectsBadDomain(t *testing.T) {
	_, err := tube.NewConstant(interval.Degenerate(1), 1, interval.New(0, 1))
	assert.ErrorIs(t, err, tube.ErrInvalidDomain)
}

func TestNewConstantRejectsBadTimestep(t *testing.T) {
	_, err := tube.NewConstant(interval.New(0, 1), 0, interval.New(0, 1))
	assert.ErrorIs(t, err, tube.ErrInvalidTimestep)
}

func TestEvalOutsideDomainIsEmpty(t *testing.T) {
	tu, err := tube.NewConstant(interval.New(0, 1), 1, interval.New(0, 1))
	require.NoError(t, err)
	assert.True(t, tu.Eval(interval.New(5, 6)).IsEmpty())
}

func TestAtMidSliceReturnsCodomain(t *testing.T) {
	tu, err := tube.NewConstant(interval.New(0, 1), 1, interval.New(2, 3))
	require.NoError(t, err)
	assert.Equal(t, interval.New(2, 3), tu.At(0.5))
}

func TestSampleSplitsSliceAndIsIdempotentAtBoundary(t *testing.T) {
	tu, err := tube.NewConstant(interval.New(0, 2), 1, interval.New(0, 1))
	require.NoError(t, err)

	tu.Sample(0.5)
	assert.Equal(t, 3, tu.NbSlices())

	tu.Sample(1) // already a boundary
	assert.Equal(t, 3, tu.NbSlices())
}

func TestRemoveGateUndoesSample(t *testing.T) {
	tu, err := tube.NewConstant(interval.New(0, 2), 1, interval.New(0, 1))
	require.NoError(t, err)
	tu.Sample(1.5)
	assert.Equal(t, 3, tu.NbSlices())

	tu.RemoveGate(1.5)
	assert.Equal(t, 2, tu.NbSlices())
}

func TestSliceByIndexPanicsOutOfRange(t *testing.T) {
	tu, err := tube.NewConstant(interval.New(0, 1), 1, interval.New(0, 1))
	require.NoError(t, err)
	assert.Panics(t, func() { tu.SliceByIndex(5) })
}

func TestConstantTubeEvalOverWholeDomain(t *testing.T) {
	tu, err := tube.NewConstant(interval.New(0, 3), 1, interval.New(-2, 2))
	require.NoError(t, err)
	assert.Equal(t, interval.New(-2, 2), tu.Eval(tu.Domain()))
}
