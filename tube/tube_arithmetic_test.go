package tube_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tubex-go/tubex/interval"
	"github.com/tubex-go/tubex/tube"
)

func TestAddAssignConstant(t *testing.T) {
	tu, err := tube.NewConstant(interval.New(0, 2), 1, interval.New(0, 1))
	require.NoError(t, err)
	tu.AddAssign(interval.New(10, 10))
	assert.Equal(t, interval.New(10, 11), tu.Codomain())
}

func TestMulAssignConstant(t *testing.T) {
	tu, err := tube.NewConstant(interval.New(0, 2), 1, interval.New(1, 2))
	require.NoError(t, err)
	tu.MulAssign(interval.New(2, 2))
	assert.Equal(t, interval.New(2, 4), tu.Codomain())
}

func TestAddAssignTubeRequiresMatchingDomain(t *testing.T) {
	a, err := tube.NewConstant(interval.New(0, 2), 1, interval.New(0, 1))
	require.NoError(t, err)
	b, err := tube.NewConstant(interval.New(0, 3), 1, interval.New(0, 1))
	require.NoError(t, err)

	err = a.AddAssignTube(b)
	assert.ErrorIs(t, err, tube.ErrMismatchedSlicing)
}

func TestAddAssignTubeRefinesCoarserSlicing(t *testing.T) {
	a, err := tube.NewConstant(interval.New(0, 2), 2, interval.New(1, 1))
	require.NoError(t, err)
	b, err := tube.NewConstant(interval.New(0, 2), 1, interval.New(10, 10))
	require.NoError(t, err)

	require.NoError(t, a.AddAssignTube(b))
	assert.Equal(t, 2, a.NbSlices())
	assert.Equal(t, interval.New(11, 11), a.Codomain())
}

func TestDivAssignByZeroContainingWidensToWhole(t *testing.T) {
	tu, err := tube.NewConstant(interval.New(0, 1), 1, interval.New(1, 1))
	require.NoError(t, err)
	tu.DivAssign(interval.New(-1, 1))
	assert.Equal(t, interval.Whole(), tu.Codomain())
}

func TestInflateWidensCodomain(t *testing.T) {
	tu, err := tube.NewConstant(interval.New(0, 1), 1, interval.New(0, 0))
	require.NoError(t, err)
	tu.Inflate(2)
	assert.Equal(t, interval.New(-2, 2), tu.Codomain())
}
