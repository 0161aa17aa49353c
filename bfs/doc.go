// Package bfs provides single-source unweighted shortest path over a
// frozen csr.Graph.
//
// ShortestPath treats every edge as unit weight and returns the
// fewest-hop path between two original indices, or no path at all when
// either endpoint is absent or the target is unreachable. Edge weights
// are never read: a workload whose weights encode distances wants a
// weighted algorithm, not BFS.
//
// Determinism:
//
//	The frontier is a FIFO queue and the per-source CSR slices are
//	strictly ascending, so among equal-length paths the one preferring
//	numerically smaller neighbors is found first. This tie-break is an
//	emergent property of the frozen layout, observable but not
//	contractual.
//
// Complexity:
//
//   - Time:   O(V + E) over the touched subgraph
//   - Memory: O(V) for the parent table and queue
package bfs
