package network_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tubex-go/tubex/contractor"
	"github.com/tubex-go/tubex/ctc"
	"github.com/tubex-go/tubex/domain"
	"github.com/tubex-go/tubex/interval"
	"github.com/tubex-go/tubex/network"
	"github.com/tubex-go/tubex/tube"
)

// sumAddCtc is a toy Algebraic contractor enforcing a + b = c over a
// 3-wide box.
type sumAddCtc struct{}

func (sumAddCtc) Arity() int { return 3 }

func (sumAddCtc) Contract(box interval.Vector) error {
	a, b, c := box[0], box[1], box[2]
	box[2] = c.Meet(a.Add(b))
	box[0] = a.Meet(box[2].Sub(b))
	box[1] = b.Meet(box[2].Sub(a))
	return nil
}

func TestNetworkContractPropagatesAcrossSharedDomain(t *testing.T) {
	a := interval.New(1, 1)
	b := interval.New(2, 2)
	c := interval.New(-100, 100)

	da, db, dc := domain.NewScalar(&a), domain.NewScalar(&b), domain.NewScalar(&c)

	n := network.New()
	rec, err := contractor.NewAlgebraic(sumAddCtc{}, da, db, dc)
	require.NoError(t, err)
	n.Add(rec, da, db, dc)

	require.NoError(t, n.Contract())

	assert.Equal(t, interval.New(3, 3), c)
	assert.Equal(t, 0, n.NbCtcInStack())
}

func TestNetworkAddDedupesIdenticalBinding(t *testing.T) {
	a := interval.New(0, 1)
	b := interval.New(0, 1)
	da, db := domain.NewScalar(&a), domain.NewScalar(&b)

	n := network.New()
	eq1, err := contractor.NewEquality(da, db)
	require.NoError(t, err)
	eq2, err := contractor.NewEquality(da, db)
	require.NoError(t, err)

	i1 := n.Add(eq1, da, db)
	i2 := n.Add(eq2, da, db)
	assert.Equal(t, i1, i2)
	assert.Equal(t, 1, n.NbCtc())
	assert.Equal(t, 2, n.NbDom())
}

func TestNetworkAddAutoLinksVectorComponents(t *testing.T) {
	v := interval.NewVector(2, interval.New(-5, 5))
	dv := domain.NewVector(&v)

	n := network.New()
	n.Add(contractor.NewComponentLink(dv), dv)

	// ensureComponentLink should have registered its own component-link
	// record wired to two fresh scalar domains, in addition to the
	// explicit one just added (both records are kept: the explicit one
	// has no component domains, so the two are not equal).
	assert.GreaterOrEqual(t, n.NbDom(), 3) // vector + 2 components
}

func TestNetworkSubvectorAliasesBackingStorage(t *testing.T) {
	v := interval.NewVector(3, interval.New(0, 1))
	dv := domain.NewVector(&v)

	n := network.New()
	sub, err := n.Subvector(dv, 1, 3)
	require.NoError(t, err)

	vp, ok := sub.VectorPtr()
	require.True(t, ok)
	(*vp)[0] = interval.New(5, 5)
	assert.Equal(t, interval.New(5, 5), v[1])
}

func TestNetworkAddDataBuffersUntilSliceBoundaryCrossed(t *testing.T) {
	x, err := tube.NewConstant(interval.New(0, 5), 1, interval.New(-100, 100))
	require.NoError(t, err)

	n := network.New()
	dx := domain.NewTube(x)
	v, err := tube.NewConstant(interval.New(0, 5), 1, interval.New(-100, 100))
	require.NoError(t, err)
	n.Add(contractor.NewTubeLevel(ctc.NewDeriv(x, v)), dx, domain.NewTube(v))

	require.NoError(t, n.AddData(x, 0, 0))
	require.NoError(t, n.AddData(x, 0.3, 0))
	require.NoError(t, n.AddData(x, 0.5, 0))
	// still within slice 0: nothing finalized yet
	assert.Equal(t, interval.New(-100, 100), x.SliceByIndex(0).Codomain())

	require.NoError(t, n.AddData(x, 1.3, 1))
	// crossing into slice 1 finalizes slice 0's buffer
	assert.Equal(t, interval.New(0, 0), x.SliceByIndex(0).Codomain())
	assert.Equal(t, interval.New(0, 0), x.SliceByIndex(0).InputGate())
}

func TestNetworkAddDataRetainsOutOfDomainSamples(t *testing.T) {
	x, err := tube.NewConstant(interval.New(0, 5), 1, interval.New(-100, 100))
	require.NoError(t, err)

	n := network.New()

	// Before any in-domain sample, an out-of-domain one just sits in
	// overflow: there is no last-slice buffer yet to confirm.
	require.NoError(t, n.AddData(x, -1, 42))
	assert.Equal(t, interval.New(-100, 100), x.SliceByIndex(0).Codomain())

	require.NoError(t, n.AddData(x, 4.2, 7))
	require.NoError(t, n.AddData(x, 4.8, 7))
	// still buffered, last slice untouched
	assert.Equal(t, interval.New(-100, 100), x.SliceByIndex(x.NbSlices()-1).Codomain())

	// a sample past the domain end confirms the last slice's bracket
	// instead of erroring outright.
	require.NoError(t, n.AddData(x, 5.5, 7))
	assert.Equal(t, interval.New(7, 7), x.SliceByIndex(x.NbSlices()-1).Codomain())
	assert.Equal(t, interval.New(7, 7), x.SliceByIndex(x.NbSlices()-1).OutputGate())
}

func TestNetworkWriteDotProducesValidDigraph(t *testing.T) {
	a := interval.New(0, 1)
	b := interval.New(0, 1)
	da, db := domain.NewScalar(&a), domain.NewScalar(&b)
	rec, err := contractor.NewEquality(da, db)
	require.NoError(t, err)

	n := network.New()
	n.SetName(da, "a")
	n.Add(rec, da, db)

	var sb strings.Builder
	require.NoError(t, n.WriteDot(&sb))
	out := sb.String()
	assert.True(t, strings.HasPrefix(out, "digraph tubex {"))
	assert.Contains(t, out, `label="a"`)
	assert.Contains(t, out, "->")
}
