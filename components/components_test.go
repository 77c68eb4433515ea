package components_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nullgraph/components"
	"github.com/katalvlaran/nullgraph/core"
)

// build constructs a Dense graph with n vertices and the given edges.
func build(t *testing.T, n int, edges [][2]int) *core.Dense {
	t.Helper()
	g, err := core.NewDense(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1], nil))
	}

	return g
}

// twoTriangles builds the disjoint triangles {0,1,2} and {3,4,5}.
func twoTriangles(t *testing.T) *core.Dense {
	return build(t, 6, [][2]int{{0, 1}, {1, 2}, {0, 2}, {3, 4}, {4, 5}, {3, 5}})
}

func TestFind_NilGraph(t *testing.T) {
	_, _, err := components.Find(nil)
	assert.ErrorIs(t, err, components.ErrGraphNil)
}

func TestFind_EmptyGraph(t *testing.T) {
	g := build(t, 0, nil)
	labels, k, err := components.Find(g)
	require.NoError(t, err)
	assert.Empty(t, labels)
	assert.Equal(t, 0, k)
}

func TestFind_IsolatedVertices(t *testing.T) {
	g := build(t, 3, nil)
	labels, k, err := components.Find(g)
	require.NoError(t, err)
	assert.Equal(t, 3, k)
	// Discovery order numbering: each vertex is its own component id.
	assert.Equal(t, []int{0, 1, 2}, labels)
}

// TestFind_TwoTriangles covers the canonical scenario: two disjoint triangles
// yield two labels covering exactly three vertices each.
func TestFind_TwoTriangles(t *testing.T) {
	g := twoTriangles(t)

	labels, k, err := components.Find(g)
	require.NoError(t, err)
	assert.Equal(t, 2, k)
	assert.Equal(t, []int{0, 0, 0, 1, 1, 1}, labels)

	counts := components.Sizes(labels, k)
	assert.Equal(t, []int{3, 3}, counts)
}

// TestFind_PathOfFive: the path 0-1-2-3-4 is a single component.
func TestFind_PathOfFive(t *testing.T) {
	g := build(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}})

	labels, k, err := components.Find(g)
	require.NoError(t, err)
	assert.Equal(t, 1, k)
	assert.Equal(t, []int{0, 0, 0, 0, 0}, labels)
}

// TestFind_PartitionProperty: labels are contiguous in [0,k), per-label counts
// sum to n, and connectivity within a component holds on a mixed fixture.
func TestFind_PartitionProperty(t *testing.T) {
	// Components: {0,4} (edge), {1,2,3,5} (square via 1-2-3-5-1), {6} isolated.
	g := build(t, 7, [][2]int{{0, 4}, {1, 2}, {2, 3}, {3, 5}, {5, 1}})

	labels, k, err := components.Find(g)
	require.NoError(t, err)
	assert.Equal(t, 3, k)

	counts := components.Sizes(labels, k)
	total := 0
	for _, c := range counts {
		assert.Positive(t, c, "every issued label must own at least one vertex")
		total += c
	}
	assert.Equal(t, g.VertexCount(), total)

	assert.Equal(t, labels[0], labels[4])
	assert.Equal(t, labels[1], labels[2])
	assert.Equal(t, labels[2], labels[3])
	assert.Equal(t, labels[3], labels[5])
	assert.NotEqual(t, labels[0], labels[1])
	assert.NotEqual(t, labels[0], labels[6])
	assert.NotEqual(t, labels[1], labels[6])
}

func TestFind_SelfLoopAndParallelEdges(t *testing.T) {
	g := build(t, 2, [][2]int{{0, 0}, {0, 1}, {0, 1}})

	labels, k, err := components.Find(g)
	require.NoError(t, err)
	assert.Equal(t, 1, k)
	assert.Equal(t, []int{0, 0}, labels)
}

func TestFind_DeepChain_NoStackOverflow(t *testing.T) {
	// A long path exercises the explicit stack far beyond safe recursion depth.
	const n = 200000
	g, err := core.NewDense(n)
	require.NoError(t, err)
	for i := 0; i < n-1; i++ {
		require.NoError(t, g.AddEdge(i, i+1, nil))
	}

	labels, k, ferr := components.Find(g)
	require.NoError(t, ferr)
	assert.Equal(t, 1, k)
	assert.Equal(t, 0, labels[n-1])
}
