package ctc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tubex-go/tubex/ctc"
	"github.com/tubex-go/tubex/interval"
	"github.com/tubex-go/tubex/tube"
)

func twoSliceStep(t *testing.T) *tube.Tube {
	t.Helper()
	x, err := tube.NewFromFunction(interval.New(0, 2), 1, func(td interval.Interval) interval.Interval {
		if td.Lb() < 1 {
			return interval.New(0, 2)
		}
		return interval.New(3, 5)
	})
	require.NoError(t, err)
	return x
}

func TestEvalNarrowsTToQualifyingSlice(t *testing.T) {
	x := twoSliceStep(t)
	v, err := tube.NewConstant(interval.New(0, 2), 1, interval.New(1, 1))
	require.NoError(t, err)

	tDom := interval.New(0, 2)
	y := interval.New(4, 4)

	e := ctc.NewEval(&tDom, &y, x, v)
	shrunk, err := e.Contract()
	require.NoError(t, err)
	assert.True(t, shrunk)

	assert.Equal(t, interval.New(1, 2), tDom)
	assert.Equal(t, interval.New(4, 4), y)
}

func TestEvalCollapsesOnInconsistentObservation(t *testing.T) {
	x, err := tube.NewConstant(interval.New(0, 2), 1, interval.New(0, 1))
	require.NoError(t, err)
	v, err := tube.NewConstant(interval.New(0, 2), 1, interval.New(0, 1))
	require.NoError(t, err)

	tDom := interval.New(0, 2)
	y := interval.New(10, 20)

	e := ctc.NewEval(&tDom, &y, x, v)
	shrunk, err := e.Contract()
	require.NoError(t, err)
	assert.True(t, shrunk)
	assert.True(t, tDom.IsEmpty())
	assert.True(t, y.IsEmpty())
}

func TestEvalRejectsMismatchedSlicing(t *testing.T) {
	x, err := tube.NewConstant(interval.New(0, 2), 1, interval.New(0, 1))
	require.NoError(t, err)
	v, err := tube.NewConstant(interval.New(0, 3), 1, interval.New(0, 1))
	require.NoError(t, err)

	tDom := interval.New(0, 2)
	y := interval.New(0, 1)
	e := ctc.NewEval(&tDom, &y, x, v)
	_, err = e.Contract()
	assert.ErrorIs(t, err, tube.ErrMismatchedSlicing)
}

func TestEvalNameIsCanonical(t *testing.T) {
	x, _ := tube.NewConstant(interval.New(0, 1), 1, interval.New(0, 1))
	v, _ := tube.NewConstant(interval.New(0, 1), 1, interval.New(0, 1))
	tDom, y := interval.New(0, 1), interval.New(0, 1)
	e := ctc.NewEval(&tDom, &y, x, v)
	assert.Equal(t, `\mathcal{C}_{\textrm{eval}}`, e.Name())
}
