package bfs

import (
	"github.com/marvin-hansen/next-graph/core"
	"github.com/marvin-hansen/next-graph/csr"
)

// unseen marks a compact position not yet discovered by the traversal.
const unseen = -1

// ShortestPath returns the fewest-hop path from src to dst over the
// frozen graph, both endpoints given and returned as original indices,
// inclusive of src and dst.
//
// The second result is false when either endpoint is absent (tombstoned
// or out of range) or dst is unreachable from src. A query with
// src == dst returns [src] without traversing any edge, self-loop or
// not. Weights are ignored; every edge costs one hop.
// Complexity: O(V + E).
func ShortestPath[N any, W any](g *csr.Graph[N, W], src, dst core.NodeIndex) ([]core.NodeIndex, bool) {
	if g == nil {
		return nil, false
	}
	s, ok := g.CompactOf(src)
	if !ok {
		return nil, false
	}
	t, ok := g.CompactOf(dst)
	if !ok {
		return nil, false
	}
	if s == t {
		return []core.NodeIndex{src}, true
	}

	// parent[c] is the compact predecessor that discovered c; the first
	// discovery wins, which is what makes the path minimal.
	parent := make([]int, g.CompactCount())
	for c := range parent {
		parent[c] = unseen
	}
	parent[s] = s

	queue := make([]int, 0, g.CompactCount())
	queue = append(queue, s)
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for _, v := range g.OutTargets(u) {
			if parent[v] != unseen {
				continue
			}
			parent[v] = u
			if v == t {
				return buildPath(g, parent, s, t), true
			}
			queue = append(queue, v)
		}
	}

	return nil, false
}

// buildPath walks the parent chain from t back to s and returns the
// reversed walk translated to original indices.
func buildPath[N any, W any](g *csr.Graph[N, W], parent []int, s, t int) []core.NodeIndex {
	rev := []int{t}
	for c := t; c != s; c = parent[c] {
		rev = append(rev, parent[c])
	}

	out := make([]core.NodeIndex, len(rev))
	for k, c := range rev {
		out[len(rev)-1-k] = g.OrigOf(c)
	}

	return out
}
