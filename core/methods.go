// Package core: node-level operations on DynGraph.
//
// This file provides the mutation and view operations that touch the node
// slot table: AddNode, RemoveNode, Node, ContainsNode, NodeCount,
// EdgeCount, NodeIndices, and the Clear/IsFrozen surface.
package core

// AddNode stores payload p in a fresh slot and returns its index.
// The returned index has never been issued by this graph before and stays
// valid until the graph is discarded. AddNode always succeeds.
// Complexity: O(1) amortized.
func (g *DynGraph[N, W]) AddNode(p N) NodeIndex {
	i := g.index.Alloc()

	g.slots = append(g.slots, slot[N]{payload: p, live: true})

	var lst []halfEdge[W]
	if g.perNodeEdgeCap > 0 {
		lst = make([]halfEdge[W], 0, g.perNodeEdgeCap)
	}
	g.adj = append(g.adj, lst)

	return i
}

// RemoveNode tombstones slot i, drops its payload, and removes every edge
// with source i or target i. It reports whether i was live before the
// call; removing a dead or out-of-range index is a no-op.
//
// The back-reference purge sweeps all live adjacency lists. Mutation-phase
// workloads are expected to batch edits before freezing, so the linear
// sweep is the accepted cost of not storing a backward adjacency.
// Complexity: O(deg_out(i) + total adjacency entries).
func (g *DynGraph[N, W]) RemoveNode(i NodeIndex) bool {
	if !g.index.Free(i) {
		return false
	}

	// Drop the payload and the outgoing edges.
	var zero N
	g.slots[i] = slot[N]{payload: zero, live: false}
	g.edgeCount -= len(g.adj[i])
	g.adj[i] = nil

	// Purge every edge that targeted i, compacting each list in place.
	for u := range g.adj {
		if !g.slots[u].live {
			continue
		}
		lst := g.adj[u]
		kept := lst[:0]
		for _, e := range lst {
			if e.to == i {
				g.edgeCount--
				continue
			}
			kept = append(kept, e)
		}
		g.adj[u] = kept
	}

	return true
}

// Node returns the payload stored at i, and whether i is live.
// Complexity: O(1).
func (g *DynGraph[N, W]) Node(i NodeIndex) (N, bool) {
	if !g.index.IsLive(i) {
		var zero N
		return zero, false
	}

	return g.slots[i].payload, true
}

// ContainsNode reports whether i denotes a live node.
// Complexity: O(1).
func (g *DynGraph[N, W]) ContainsNode(i NodeIndex) bool {
	return g.index.IsLive(i)
}

// NodeCount returns the number of live nodes.
// Complexity: O(1).
func (g *DynGraph[N, W]) NodeCount() int {
	return g.index.LiveCount()
}

// EdgeCount returns the number of edges between live nodes.
// Complexity: O(1).
func (g *DynGraph[N, W]) EdgeCount() int {
	return g.edgeCount
}

// NodeIndices returns the live node indices in ascending order.
// Complexity: O(n) over the slot table, including tombstones.
func (g *DynGraph[N, W]) NodeIndices() []NodeIndex {
	out := make([]NodeIndex, 0, g.index.LiveCount())
	for i := range g.slots {
		if g.slots[i].live {
			out = append(out, NodeIndex(i))
		}
	}

	return out
}

// NextIndex returns the index the next AddNode call would issue. The thaw
// path records it at freeze time so index stability survives the round
// trip.
func (g *DynGraph[N, W]) NextIndex() NodeIndex {
	return g.index.NextIndex()
}

// IsFrozen reports false: DynGraph is the mutable representation.
func (g *DynGraph[N, W]) IsFrozen() bool {
	return false
}

// Clear resets the graph to empty, forgetting all slots, edges, and
// issued indices. Freeze calls it to consume its input; afterwards the
// drained value behaves like a freshly constructed graph and AddNode
// starts issuing indices from zero again.
// Complexity: O(n) to release adjacency lists.
func (g *DynGraph[N, W]) Clear() {
	g.index.clear()
	g.slots = nil
	g.adj = nil
	g.edgeCount = 0
}
