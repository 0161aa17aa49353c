// Package core: hydration of a DynGraph at previously issued indices.
//
// Thawing a frozen graph must place payloads back at their original slot
// positions and restore the index-space high-water mark, so that indices
// issued before the freeze keep resolving and AddNode keeps issuing fresh
// ones. Hydrate is that entry point; the csr package is its caller.
package core

// HydratedNode pairs a previously issued index with the payload to place
// back at that position.
type HydratedNode[N any] struct {
	Index   NodeIndex
	Payload N
}

// Hydrate builds a DynGraph whose index space has already issued every
// index below next, with exactly the given nodes live at their recorded
// positions; every other position below next is a tombstone.
//
// Hydrate is total: an entry at or above next extends the index space,
// negative indices are skipped, and a duplicate index keeps the first
// payload. Edges are not part of hydration; callers rebuild them with
// AddEdge.
// Complexity: O(int(next) + len(nodes)).
func Hydrate[N any, W any](next NodeIndex, nodes []HydratedNode[N], opts ...GraphOption) *DynGraph[N, W] {
	g := NewDynGraph[N, W](opts...)

	live := make([]NodeIndex, 0, len(nodes))
	for _, hn := range nodes {
		if hn.Index >= 0 {
			live = append(live, hn.Index)
		}
	}
	g.index.rehydrate(next, live)

	n := int(g.index.NextIndex())
	g.slots = make([]slot[N], n)
	g.adj = make([][]halfEdge[W], n)
	for _, hn := range nodes {
		if hn.Index < 0 || g.slots[hn.Index].live {
			continue
		}
		g.slots[hn.Index] = slot[N]{payload: hn.Payload, live: true}
		if g.perNodeEdgeCap > 0 {
			g.adj[hn.Index] = make([]halfEdge[W], 0, g.perNodeEdgeCap)
		}
	}

	return g
}
