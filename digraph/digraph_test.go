package digraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metailurini/collections/digraph"
)

func buildGraph(t *testing.T) *digraph.Graph[string, float64] {
	t.Helper()
	g := digraph.New[string, float64]()
	for n, name := range map[int]string{1: "one", 2: "two", 3: "three"} {
		require.NoError(t, g.AddVertex(n, name))
	}
	require.NoError(t, g.AddEdge(1, 2, 1.5))
	require.NoError(t, g.AddEdge(2, 3, 2.5))
	require.NoError(t, g.AddEdge(1, 3, 10.0))
	return g
}

func TestVerticesAndEdges(t *testing.T) {
	g := buildGraph(t)

	assert.Equal(t, []int{1, 2, 3}, g.Vertices())
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())

	count, err := g.EdgeCountFrom(1)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	edges, err := g.EdgesFrom(1)
	require.NoError(t, err)
	assert.Len(t, edges, 2)

	info, err := g.VertexInfo(2)
	require.NoError(t, err)
	assert.Equal(t, "two", info)

	w, err := g.EdgeInfo(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2.5, w)
}

func TestErrors(t *testing.T) {
	g := buildGraph(t)

	assert.ErrorIs(t, g.AddVertex(1, "dup"), digraph.ErrVertexExists)
	assert.ErrorIs(t, g.AddEdge(1, 2, 0), digraph.ErrEdgeExists)
	assert.ErrorIs(t, g.AddEdge(1, 99, 0), digraph.ErrVertexNotFound)
	assert.ErrorIs(t, g.RemoveVertex(99), digraph.ErrVertexNotFound)
	assert.ErrorIs(t, g.RemoveEdge(2, 1), digraph.ErrEdgeNotFound)

	_, err := g.VertexInfo(99)
	assert.ErrorIs(t, err, digraph.ErrVertexNotFound)
	_, err = g.EdgeInfo(3, 1)
	assert.ErrorIs(t, err, digraph.ErrEdgeNotFound)
	_, err = g.EdgesFrom(99)
	assert.ErrorIs(t, err, digraph.ErrVertexNotFound)
	_, err = g.EdgeCountFrom(99)
	assert.ErrorIs(t, err, digraph.ErrVertexNotFound)
	_, err = g.ShortestPaths(99, func(float64) float64 { return 0 })
	assert.ErrorIs(t, err, digraph.ErrVertexNotFound)
}

func TestRemoveVertexDropsIncomingEdges(t *testing.T) {
	g := buildGraph(t)

	require.NoError(t, g.RemoveVertex(3))

	assert.Equal(t, []int{1, 2}, g.Vertices())
	assert.Equal(t, 1, g.EdgeCount(), "edges into the removed vertex must go too")
	_, err := g.EdgeInfo(1, 3)
	assert.ErrorIs(t, err, digraph.ErrVertexNotFound)
}

func TestRemoveEdge(t *testing.T) {
	g := buildGraph(t)

	require.NoError(t, g.RemoveEdge(1, 3))
	assert.Equal(t, 2, g.EdgeCount())
	_, err := g.EdgeInfo(1, 3)
	assert.ErrorIs(t, err, digraph.ErrEdgeNotFound)
}

func TestStronglyConnected(t *testing.T) {
	g := buildGraph(t)
	assert.False(t, g.StronglyConnected(), "no path leads back to vertex 1")

	require.NoError(t, g.AddEdge(3, 1, 1.0))
	assert.True(t, g.StronglyConnected())

	assert.True(t, digraph.New[string, float64]().StronglyConnected(),
		"the empty graph is vacuously strongly connected")
}

func TestShortestPaths(t *testing.T) {
	g := digraph.New[string, float64]()
	for n := 1; n <= 5; n++ {
		require.NoError(t, g.AddVertex(n, ""))
	}
	// The direct 1->4 edge is heavier than the detour through 2 and 3.
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.NoError(t, g.AddEdge(3, 4, 1))
	require.NoError(t, g.AddEdge(1, 4, 10))

	prev, err := g.ShortestPaths(1, func(w float64) float64 { return w })
	require.NoError(t, err)

	assert.Equal(t, 1, prev[1], "start maps to itself")
	assert.Equal(t, 1, prev[2])
	assert.Equal(t, 2, prev[3])
	assert.Equal(t, 3, prev[4], "the cheap detour must win over the direct edge")
	assert.Equal(t, 5, prev[5], "unreachable vertex maps to itself")
}

func TestCloneIsIndependent(t *testing.T) {
	g := buildGraph(t)
	c := g.Clone()

	require.NoError(t, c.AddVertex(4, "four"))
	require.NoError(t, c.AddEdge(3, 4, 1.0))
	require.NoError(t, g.RemoveEdge(1, 2))

	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 4, c.EdgeCount())
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 4, c.VertexCount())
}
