package topo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marvin-hansen/next-graph/core"
	"github.com/marvin-hansen/next-graph/csr"
	"github.com/marvin-hansen/next-graph/topo"
)

// freeze builds a frozen graph from an edge list over n nodes.
func freeze(t *testing.T, n int, edges [][2]int) (*csr.Graph[int, int64], []core.NodeIndex) {
	t.Helper()
	g := core.NewDynGraph[int, int64]()
	idx := make([]core.NodeIndex, n)
	for i := 0; i < n; i++ {
		idx[i] = g.AddNode(i)
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(idx[e[0]], idx[e[1]], 1))
	}

	return csr.Freeze(g), idx
}

// positions inverts an ordering into index → position.
func positions(order []core.NodeIndex) map[core.NodeIndex]int {
	pos := make(map[core.NodeIndex]int, len(order))
	for p, i := range order {
		pos[i] = p
	}

	return pos
}

func TestSort_FourCity(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {0, 2}}
	g, idx := freeze(t, 4, edges)

	order, err := topo.Sort(g)
	require.NoError(t, err)
	require.Len(t, order, 4)

	// Every edge points forward in the ordering.
	pos := positions(order)
	for _, e := range edges {
		require.Less(t, pos[idx[e[0]]], pos[idx[e[1]]],
			"edge %d->%d violated", e[0], e[1])
	}

	// Deterministic seeding makes the full ordering reproducible.
	require.Equal(t, []core.NodeIndex{idx[0], idx[1], idx[2], idx[3]}, order)
}

func TestSort_NotADAG(t *testing.T) {
	g, _ := freeze(t, 3, [][2]int{{0, 1}, {1, 2}, {2, 0}})

	_, err := topo.Sort(g)
	require.ErrorIs(t, err, topo.ErrGraphContainsCycle)
}

func TestSort_SelfLoop(t *testing.T) {
	g, _ := freeze(t, 2, [][2]int{{0, 1}, {1, 1}})

	_, err := topo.Sort(g)
	require.ErrorIs(t, err, topo.ErrGraphContainsCycle)
}

func TestSort_EmptyGraph(t *testing.T) {
	g, _ := freeze(t, 0, nil)

	order, err := topo.Sort(g)
	require.NoError(t, err)
	require.Empty(t, order)

	order, err = topo.Sort[int, int64](nil)
	require.NoError(t, err)
	require.Empty(t, order)
}

func TestSort_DisconnectedComponents(t *testing.T) {
	edges := [][2]int{{0, 1}, {2, 3}, {3, 4}}
	g, idx := freeze(t, 5, edges)

	order, err := topo.Sort(g)
	require.NoError(t, err)
	require.Len(t, order, 5)

	pos := positions(order)
	for _, e := range edges {
		require.Less(t, pos[idx[e[0]]], pos[idx[e[1]]])
	}
}

// TestSort_SpeaksOriginalIndices sorts a graph with tombstones: the
// ordering must contain exactly the surviving original indices.
func TestSort_SpeaksOriginalIndices(t *testing.T) {
	g := core.NewDynGraph[int, int64]()
	a := g.AddNode(0)
	gone := g.AddNode(1)
	b := g.AddNode(2)
	require.NoError(t, g.AddEdge(a, b, 1))
	require.True(t, g.RemoveNode(gone))

	order, err := topo.Sort(csr.Freeze(g))
	require.NoError(t, err)
	require.Equal(t, []core.NodeIndex{a, b}, order)
}
