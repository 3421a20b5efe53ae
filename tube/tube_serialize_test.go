package tube_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tubex-go/tubex/interval"
	"github.com/tubex-go/tubex/tube"
)

func TestWriteToThenReadFromRoundTrips(t *testing.T) {
	original, err := tube.NewFromFunction(interval.New(0, 4), 1, func(td interval.Interval) interval.Interval {
		return interval.New(td.Lb(), td.Ub()+1)
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = original.WriteTo(&buf)
	require.NoError(t, err)

	decoded := &tube.Tube{}
	_, err = decoded.ReadFrom(&buf)
	require.NoError(t, err)

	assert.Equal(t, original.NbSlices(), decoded.NbSlices())
	assert.Equal(t, original.Domain(), decoded.Domain())
	for i := 0; i < original.NbSlices(); i++ {
		assert.Equal(t, original.SliceByIndex(i).Codomain(), decoded.SliceByIndex(i).Codomain())
	}
}

func TestReadFromRejectsBadMagic(t *testing.T) {
	decoded := &tube.Tube{}
	_, err := decoded.ReadFrom(bytes.NewReader([]byte("NOPE1234567890")))
	assert.ErrorIs(t, err, tube.ErrBadMagic)
}

func TestRoundTripPreservesEmptySlice(t *testing.T) {
	original, err := tube.NewConstant(interval.New(0, 2), 1, interval.New(5, 6))
	require.NoError(t, err)
	original.SliceByIndex(0).SetEnvelope(interval.New(100, 200)) // disjoint -> empty

	var buf bytes.Buffer
	_, err = original.WriteTo(&buf)
	require.NoError(t, err)

	decoded := &tube.Tube{}
	_, err = decoded.ReadFrom(&buf)
	require.NoError(t, err)
	assert.True(t, decoded.SliceByIndex(0).Codomain().IsEmpty())
}
