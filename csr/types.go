// Package csr: the frozen graph type and its struct-of-arrays storage.
package csr

import (
	"sort"

	"github.com/marvin-hansen/next-graph/core"
)

// adjacency is one CSR direction stored struct-of-arrays.
//
// Well-formedness, maintained by Freeze and never mutated afterwards:
//
//   - offsets has length n+1, offsets[0] == 0, offsets[n] == m, and is
//     non-decreasing
//   - targets[offsets[u]:offsets[u+1]] is strictly ascending per source u
//   - weights is parallel to targets
type adjacency[W any] struct {
	offsets []int
	targets []int
	weights []W
}

// degree returns the slice length of compact source u.
func (a *adjacency[W]) degree(u int) int {
	return a.offsets[u+1] - a.offsets[u]
}

// slice returns the target view of compact source u.
func (a *adjacency[W]) slice(u int) []int {
	return a.targets[a.offsets[u]:a.offsets[u+1]]
}

// coSort sorts the slice of compact source u ascending by target,
// carrying the parallel weights with it. sort.Stable keeps equal targets
// in insertion order; the slice is not de-duplicated, so the result is
// strictly ascending only because AddEdge rejects parallel edges.
func (a *adjacency[W]) coSort(u int) {
	lo, hi := a.offsets[u], a.offsets[u+1]
	sort.Stable(&coSlice[W]{targets: a.targets[lo:hi], weights: a.weights[lo:hi]})
}

// coSlice adapts one (targets, weights) slice pair to sort.Interface.
type coSlice[W any] struct {
	targets []int
	weights []W
}

func (s *coSlice[W]) Len() int           { return len(s.targets) }
func (s *coSlice[W]) Less(i, j int) bool { return s.targets[i] < s.targets[j] }
func (s *coSlice[W]) Swap(i, j int) {
	s.targets[i], s.targets[j] = s.targets[j], s.targets[i]
	s.weights[i], s.weights[j] = s.weights[j], s.weights[i]
}

// Graph is the frozen graph representation: two paired CSR adjacencies
// (forward and transposed) over one compact node layout.
//
// Construct with Freeze. No method mutates a Graph after construction,
// so a value may be shared among any number of concurrent readers.
type Graph[N any, W any] struct {
	fwd adjacency[W]
	bwd adjacency[W]

	// payloads is indexed by compact position.
	payloads []N

	// origOf maps compact position → original index; ascending, since
	// compaction walks the slot table in original order.
	origOf []core.NodeIndex

	// compactOf maps original index → compact position, dense over the
	// whole index space with -1 for tombstoned positions.
	compactOf []int

	// next is the index-space high-water mark recorded at freeze time;
	// Thaw restores it.
	next core.NodeIndex
}
