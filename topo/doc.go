// Package topo provides Kahn's topological sort over a frozen csr.Graph.
//
// Sort computes a linear ordering of all nodes such that for every edge
// u → v, u appears before v. The in-degree table falls straight out of
// the transposed CSR's offsets, which is the reason the frozen form
// carries one. If the graph is not a DAG, ErrGraphContainsCycle is
// returned and no partial ordering escapes; dfs.FindCycle names a
// witness when the caller wants one.
//
// Determinism:
//
//	Sources are seeded in ascending compact order and newly freed nodes
//	are appended in encounter order, so the ordering is a pure function
//	of the frozen layout.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package topo
