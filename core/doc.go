// Package core defines the mutable half of the dual-state graph engine:
// the DynGraph type, its slotted node table with tombstoned deletion, and
// the IndexSpace allocator that keeps node indices stable for the lifetime
// of a logical graph.
//
// What:
//
//   - NodeIndex: a stable integer handle for a node. Once issued by
//     AddNode, an index keeps denoting the same logical node across all
//     edits, freezes, and thaws, until the graph is discarded. Indices are
//     never reused.
//   - IndexSpace: monotone index allocator with per-slot liveness.
//   - DynGraph: directed, edge-weighted graph with opaque payloads,
//     forward-only adjacency, and O(1) amortized node insertion. Removing a
//     node tombstones its slot so that surviving indices never shift.
//   - Hydrate: rebuilds a DynGraph at previously issued index positions;
//     the thaw path of the csr package is its caller.
//
// Why tombstones:
//
//	Renumbering survivors after a removal would invalidate every handle
//	the host still holds. Dead slots instead keep their position, and
//	compaction is deferred to csr.Freeze, where it folds into an already
//	linear pass.
//
// Key types & operations:
//
//   - NewDynGraph(opts ...GraphOption) — WithNodeCapacity, WithEdgeCapacity
//     are pure performance hints.
//   - AddNode, RemoveNode, AddEdge, RemoveEdge — mutation capability.
//   - Node, ContainsNode, ContainsEdge, NodeCount, EdgeCount,
//     NodeIndices, Neighbors — view capability.
//
// Complexity:
//
//   - AddNode: O(1) amortized
//   - AddEdge: O(deg_out(u)); the duplicate check scans u's adjacency,
//     there is no per-node lookup set
//   - RemoveNode: O(deg(i) + total adjacency sweep for back-references)
//   - RemoveEdge, ContainsEdge: O(deg(u))
//
// Errors:
//
//	ErrNodeNotFound      — index outside the index space or tombstoned.
//	ErrEdgeNotFound      — RemoveEdge on a missing edge.
//	ErrEdgeAlreadyExists — AddEdge on an existing (u,v) pair; parallel
//	                       edges are forbidden and the old weight stays.
//
// DynGraph is not safe for concurrent mutation. Freeze it into a
// csr.Graph when a workload needs shared read-only access.
package core
