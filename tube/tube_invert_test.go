package tube_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tubex-go/tubex/interval"
	"github.com/tubex-go/tubex/tube"
)

func newPiecewiseTube(t *testing.T) *tube.Tube {
	t.Helper()
	tu, err := tube.NewFromFunction(interval.New(0, 3), 1, func(td interval.Interval) interval.Interval {
		switch {
		case td.Lb() < 1:
			return interval.New(1, 2)
		case td.Lb() < 2:
			return interval.New(3, 4)
		default:
			return interval.New(1, 2)
		}
	})
	require.NoError(t, err)
	return tu
}

func TestInvertReturnsHullOfQualifyingSlices(t *testing.T) {
	tu := newPiecewiseTube(t)
	got := tu.Invert(interval.New(1.5, 3.5), interval.New(0, 3))
	assert.Equal(t, interval.New(0, 3), got)
}

func TestInvertSetReturnsThreeMaximalComponents(t *testing.T) {
	tu := newPiecewiseTube(t)
	got := tu.InvertSet(interval.New(1.5, 3.5), interval.New(0, 3))
	require.Len(t, got, 3)
	assert.Equal(t, interval.New(0, 1), got[0])
	assert.Equal(t, interval.New(1, 2), got[1])
	assert.Equal(t, interval.New(2, 3), got[2])
}

func TestInvertEmptyWhenNoSliceQualifies(t *testing.T) {
	tu := newPiecewiseTube(t)
	got := tu.Invert(interval.New(100, 200), interval.New(0, 3))
	assert.True(t, got.IsEmpty())
}
