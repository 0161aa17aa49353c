// Package nextgraph is a dual-state, in-memory engine for directed,
// edge-weighted graphs with arbitrary node payloads.
//
// The engine is built around two representations of the same logical graph:
//
//	core/  — DynGraph, the mutable form: a slotted node table with
//	         tombstoned deletion, stable indices, and per-node forward
//	         adjacency. Built for the mutation phase of a workload.
//	csr/   — Graph, the frozen form: a pair of compressed-sparse-row
//	         adjacencies (forward and transposed) stored struct-of-arrays.
//	         Built for the analysis phase: compact, cache-friendly,
//	         immutable, safe to share among concurrent readers.
//
// Freezing and thawing move a graph between the two forms in O(n+m):
//
//	d := core.NewDynGraph[string, int64]()
//	sf := d.AddNode("SF")
//	sea := d.AddNode("SEA")
//	_ = d.AddEdge(sf, sea, 807)
//
//	g := csr.Freeze(d)               // compact, sort, build both CSRs
//	path, ok := bfs.ShortestPath(g, sf, sea)
//	d2 := g.Thaw()                   // back to editable form
//
// Node indices are stable for the lifetime of the logical graph: the index
// returned by AddNode keeps denoting the same node across any sequence of
// edits, freezes, and thaws. Removal tombstones the slot rather than
// renumbering survivors; compaction is deferred to Freeze, which retains
// the original↔compact mapping so that every public surface speaks
// original indices.
//
// Analyses operate only on the frozen form:
//
//	bfs/   — unweighted single-source shortest path (fewest hops)
//	topo/  — Kahn topological sort over a DAG
//	dfs/   — cycle detection and witness extraction
//
// The engine is single-threaded by design: DynGraph must not be mutated
// concurrently, while a frozen csr.Graph may be read from any number of
// goroutines because no operation mutates it.
package nextgraph
