// Package dfs provides cycle detection over a frozen csr.Graph using
// iterative depth-first search with three-colour marking.
//
// FindCycle walks every component with an explicit frame stack (no
// recursion, so graph depth never threatens the goroutine stack). A node
// is white before discovery, gray while its frame is on the stack, and
// black once fully explored. An edge into a gray node is a back edge;
// the witness cycle is cut straight out of the live stack.
//
// The witness is a closed walk [v0, v1, ..., v0] of original indices:
// every consecutive pair is an edge and the back-edge target appears as
// both first and last element. A self-loop yields the length-1 cycle
// [a, a].
//
// Complexity:
//
//   - Time:   O(V + E) — each node is pushed once, each edge examined once
//   - Memory: O(V) for the colour table and stack
package dfs
