package csr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marvin-hansen/next-graph/core"
	"github.com/marvin-hansen/next-graph/csr"
)

// hubGraph builds one hub with out-degree well above the scan threshold
// (every even-indexed leaf) plus a low-degree node, so both lookup paths
// are exercised.
func hubGraph(t *testing.T) (*csr.Graph[int, int64], core.NodeIndex, []core.NodeIndex) {
	t.Helper()
	const leaves = 200

	g := core.NewDynGraph[int, int64]()
	hub := g.AddNode(-1)
	idx := make([]core.NodeIndex, leaves)
	for i := 0; i < leaves; i++ {
		idx[i] = g.AddNode(i)
		if i%2 == 0 {
			require.NoError(t, g.AddEdge(hub, idx[i], int64(i)))
		}
	}

	return csr.Freeze(g), hub, idx
}

func TestContainsEdge_AdaptiveEquivalence(t *testing.T) {
	f, hub, idx := hubGraph(t)

	// Every threshold must agree with the production lookup: 0 forces
	// binary search everywhere, a huge value forces the linear scan.
	thresholds := []int{0, 1, 2, csr.LinearScanThreshold_TestOnly, 1 << 20}
	for _, leaf := range idx {
		want := f.ContainsEdge(hub, leaf)
		for _, th := range thresholds {
			require.Equal(t, want, f.ContainsEdgeWithThreshold_TestOnly(hub, leaf, th),
				"threshold %d diverges on hub->%d", th, leaf)
		}
	}

	// Spot-check the expected membership itself.
	require.True(t, f.ContainsEdge(hub, idx[0]))
	require.False(t, f.ContainsEdge(hub, idx[1]))
	require.True(t, f.ContainsEdge(hub, idx[198]))
	require.False(t, f.ContainsEdge(hub, idx[199]))
}

func TestContainsEdge_AbsentEndpoints(t *testing.T) {
	g := core.NewDynGraph[int, int64]()
	a := g.AddNode(0)
	b := g.AddNode(1)
	gone := g.AddNode(2)
	require.NoError(t, g.AddEdge(a, b, 1))
	require.True(t, g.RemoveNode(gone))

	f := csr.Freeze(g)
	require.False(t, f.ContainsEdge(gone, a))
	require.False(t, f.ContainsEdge(a, gone))
	require.False(t, f.ContainsEdge(-1, b))
	require.False(t, f.ContainsEdge(a, 99))
	require.False(t, f.ContainsEdge(b, a), "direction matters")
}

func TestNeighbors_UnknownNode(t *testing.T) {
	g := core.NewDynGraph[int, int64]()
	a := g.AddNode(0)
	f := csr.Freeze(g)

	_, err := f.Neighbors(99)
	require.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = f.Predecessors(99)
	require.ErrorIs(t, err, core.ErrNodeNotFound)

	es, err := f.Neighbors(a)
	require.NoError(t, err)
	require.Empty(t, es)
}
