// Package csr: the thaw transformation.
package csr

import "github.com/marvin-hansen/next-graph/core"

// Thaw converts the frozen graph back into a mutable DynGraph.
//
// The index space is rehydrated at the high-water mark recorded by
// Freeze, with exactly the original positions of the compact layout
// live; every tombstone that existed at freeze time reappears at its old
// position. Payloads are copied into the new graph by Go assignment, so
// the frozen value stays intact and read-usable until the host drops it;
// a payload holding references shares their backing store with the
// frozen value. Edges are rebuilt
// from the forward CSR, which leaves each adjacency list in ascending
// target order.
//
// Thaw is total and runs in O(n + m).
func (g *Graph[N, W]) Thaw() *core.DynGraph[N, W] {
	nodes := make([]core.HydratedNode[N], len(g.payloads))
	for c := range g.payloads {
		nodes[c] = core.HydratedNode[N]{Index: g.origOf[c], Payload: g.payloads[c]}
	}
	d := core.Hydrate[N, W](g.next, nodes)

	for c := range g.payloads {
		from := g.origOf[c]
		for k := g.fwd.offsets[c]; k < g.fwd.offsets[c+1]; k++ {
			// Cannot fail: both endpoints are live and the CSR holds no
			// duplicate pairs.
			_ = d.AddEdge(from, g.origOf[g.fwd.targets[k]], g.fwd.weights[k])
		}
	}

	return d
}
