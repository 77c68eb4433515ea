package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nullgraph/core"
)

func TestNewDense_Validation(t *testing.T) {
	_, err := core.NewDense(-1)
	assert.ErrorIs(t, err, core.ErrNegativeVertexCount)

	g, err := core.NewDense(0)
	require.NoError(t, err)
	assert.Equal(t, 0, g.VertexCount())
}

func TestDense_AddEdge_Symmetry(t *testing.T) {
	g, err := core.NewDense(3)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 1, nil))
	require.NoError(t, g.AddEdge(1, 2, nil))

	n0, err := g.Adjacent(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, n0)

	// Middle vertex sees both endpoints in arrival order.
	n1, err := g.Adjacent(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, n1)
}

func TestDense_Adjacent_IsAFreshSlice(t *testing.T) {
	g, _ := core.NewDense(2)
	require.NoError(t, g.AddEdge(0, 1, nil))

	n0, _ := g.Adjacent(0)
	n0[0] = 99

	again, _ := g.Adjacent(0)
	assert.Equal(t, []int{1}, again, "mutating a returned slice must not corrupt the store")
}

func TestDense_BoundsChecking(t *testing.T) {
	g, _ := core.NewDense(2)

	_, err := g.Adjacent(2)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)
	assert.ErrorIs(t, g.AddEdge(-1, 0, nil), core.ErrIndexOutOfRange)
	assert.ErrorIs(t, g.AddEdge(0, 2, nil), core.ErrIndexOutOfRange)
	assert.ErrorIs(t, g.RemoveEdge(0, 5), core.ErrIndexOutOfRange)
	assert.ErrorIs(t, g.SetVertexProp(7, nil), core.ErrIndexOutOfRange)

	_, err = g.EdgeProp(-3, 0)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)
}

func TestDense_RemoveEdge(t *testing.T) {
	g, _ := core.NewDense(3)
	require.NoError(t, g.AddEdge(0, 1, nil))
	require.NoError(t, g.AddEdge(0, 2, nil))

	require.NoError(t, g.RemoveEdge(1, 0), "removal works from either endpoint")

	n0, _ := g.Adjacent(0)
	assert.Equal(t, []int{2}, n0)
	n1, _ := g.Adjacent(1)
	assert.Empty(t, n1)

	assert.ErrorIs(t, g.RemoveEdge(0, 1), core.ErrEdgeNotFound)
}

func TestDense_RemoveEdge_OneInstanceOfParallel(t *testing.T) {
	g, _ := core.NewDense(2)
	require.NoError(t, g.AddEdge(0, 1, "first"))
	require.NoError(t, g.AddEdge(0, 1, "second"))

	require.NoError(t, g.RemoveEdge(0, 1))

	n0, _ := g.Adjacent(0)
	assert.Equal(t, []int{1}, n0, "exactly one parallel instance removed")

	prop, err := g.EdgeProp(0, 1)
	require.NoError(t, err)
	assert.Equal(t, "second", prop)
}

func TestDense_SelfLoop(t *testing.T) {
	g, _ := core.NewDense(1)
	require.NoError(t, g.AddEdge(0, 0, nil))

	n0, _ := g.Adjacent(0)
	assert.Equal(t, []int{0}, n0, "a loop is stored once under its vertex")

	require.NoError(t, g.RemoveEdge(0, 0))
	n0, _ = g.Adjacent(0)
	assert.Empty(t, n0)
}

func TestDense_Properties(t *testing.T) {
	g, _ := core.NewDense(2)
	require.NoError(t, g.AddEdge(0, 1, "weight=3"))

	require.NoError(t, g.SetVertexProp(1, "leaf"))
	vp, err := g.VertexProp(1)
	require.NoError(t, err)
	assert.Equal(t, "leaf", vp)

	ep, err := g.EdgeProp(1, 0)
	require.NoError(t, err)
	assert.Equal(t, "weight=3", ep, "edge prop readable from either endpoint")

	require.NoError(t, g.SetEdgeProp(0, 1, "weight=7"))
	ep, err = g.EdgeProp(1, 0)
	require.NoError(t, err)
	assert.Equal(t, "weight=7", ep, "SetEdgeProp keeps both halves in sync")

	_, err = g.EdgeProp(0, 0)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)

	g.SetGraphProp("bundle")
	assert.Equal(t, "bundle", g.GraphProp())
}

func TestDense_Blank(t *testing.T) {
	g, _ := core.NewDense(5)
	g.SetGraphProp("original")

	out := g.Blank(3)
	assert.Equal(t, 3, out.VertexCount())
	assert.Nil(t, out.GraphProp(), "Blank yields an empty graph, no payload carried over")

	neg := g.Blank(-4)
	assert.Equal(t, 0, neg.VertexCount())
}
