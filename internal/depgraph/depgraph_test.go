package depgraph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tubex-go/tubex/internal/depgraph"
)

func TestGraphWriteToRendersNodesAndEdges(t *testing.T) {
	g := depgraph.New()
	ctcID := g.AddContractor(`\mathcal{C}_{\frac{d}{dt}}`)
	domID := g.AddDomain("x")
	g.Link(ctcID, domID)
	g.Link(ctcID, domID) // idempotent

	var sb strings.Builder
	n, err := g.WriteTo(&sb)
	require.NoError(t, err)
	assert.Equal(t, int64(sb.Len()), n)

	out := sb.String()
	assert.True(t, strings.HasPrefix(out, "digraph tubex {"))
	assert.Contains(t, out, "c0 [shape=box")
	assert.Contains(t, out, `d0 [shape=ellipse label="x"]`)
	assert.Equal(t, 1, strings.Count(out, "c0 -> d0"))
	assert.Equal(t, 1, g.NbContractors())
	assert.Equal(t, 1, g.NbDomains())
}

func TestGraphEmpty(t *testing.T) {
	g := depgraph.New()
	var sb strings.Builder
	require.NoError(t, func() error { _, err := g.WriteTo(&sb); return err }())
	assert.Equal(t, "digraph tubex {\n}\n", sb.String())
}
