package topo

import (
	"errors"

	"github.com/marvin-hansen/next-graph/core"
	"github.com/marvin-hansen/next-graph/csr"
)

// ErrGraphContainsCycle indicates the graph is not a DAG, so no
// topological ordering exists.
var ErrGraphContainsCycle = errors.New("topo: graph contains a cycle")

// Sort returns a topological ordering of the frozen graph as original
// indices, or ErrGraphContainsCycle if the graph is not a DAG.
//
// An empty (or nil) graph sorts to the empty ordering. A self-loop makes
// its node unreachable for Kahn's algorithm and therefore reports a
// cycle.
// Complexity: O(V + E).
func Sort[N any, W any](g *csr.Graph[N, W]) ([]core.NodeIndex, error) {
	if g == nil {
		return nil, nil
	}
	n := g.CompactCount()

	// In-degree per compact position, O(1) each off the transposed
	// offsets.
	indeg := make([]int, n)
	for c := 0; c < n; c++ {
		indeg[c] = g.InDegree(c)
	}

	// Seed with all sources in ascending compact order.
	queue := make([]int, 0, n)
	for c := 0; c < n; c++ {
		if indeg[c] == 0 {
			queue = append(queue, c)
		}
	}

	order := make([]core.NodeIndex, 0, n)
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		order = append(order, g.OrigOf(u))
		for _, v := range g.OutTargets(u) {
			indeg[v]--
			if indeg[v] == 0 {
				queue = append(queue, v)
			}
		}
	}

	if len(order) < n {
		return nil, ErrGraphContainsCycle
	}

	return order, nil
}
