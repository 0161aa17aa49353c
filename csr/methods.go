// Package csr: read-only accessors over the frozen graph.
//
// Two surfaces live here. The original-index surface mirrors the
// DynGraph view capability for hosts. The compact surface hands the
// analysis packages zero-copy views of the CSR arrays; those slices are
// shared storage and must be treated as read-only.
package csr

import (
	"fmt"

	"github.com/marvin-hansen/next-graph/core"
)

// NodeCount returns the number of live nodes in the frozen graph.
func (g *Graph[N, W]) NodeCount() int {
	return len(g.payloads)
}

// EdgeCount returns the number of edges.
func (g *Graph[N, W]) EdgeCount() int {
	return len(g.fwd.targets)
}

// ContainsNode reports whether original index i denotes a node of the
// frozen graph.
func (g *Graph[N, W]) ContainsNode(i core.NodeIndex) bool {
	_, ok := g.CompactOf(i)
	return ok
}

// Node returns the payload at original index i, and whether i is present.
func (g *Graph[N, W]) Node(i core.NodeIndex) (N, bool) {
	c, ok := g.CompactOf(i)
	if !ok {
		var zero N
		return zero, false
	}

	return g.payloads[c], true
}

// NodeIndices returns the original indices of all nodes, ascending.
// The returned slice is a fresh copy.
func (g *Graph[N, W]) NodeIndices() []core.NodeIndex {
	out := make([]core.NodeIndex, len(g.origOf))
	copy(out, g.origOf)

	return out
}

// Neighbors returns the outbound edges of u in ascending target order.
// Returns core.ErrNodeNotFound if u is not part of the frozen graph.
func (g *Graph[N, W]) Neighbors(u core.NodeIndex) ([]core.Edge[W], error) {
	c, ok := g.CompactOf(u)
	if !ok {
		return nil, fmt.Errorf("%w: node %d", core.ErrNodeNotFound, u)
	}

	lo, hi := g.fwd.offsets[c], g.fwd.offsets[c+1]
	out := make([]core.Edge[W], hi-lo)
	for k := lo; k < hi; k++ {
		out[k-lo] = core.Edge[W]{From: u, To: g.origOf[g.fwd.targets[k]], Weight: g.fwd.weights[k]}
	}

	return out, nil
}

// Predecessors returns the inbound edges of u in ascending source order,
// read off the transposed CSR. Returns core.ErrNodeNotFound if u is not
// part of the frozen graph.
func (g *Graph[N, W]) Predecessors(u core.NodeIndex) ([]core.Edge[W], error) {
	c, ok := g.CompactOf(u)
	if !ok {
		return nil, fmt.Errorf("%w: node %d", core.ErrNodeNotFound, u)
	}

	lo, hi := g.bwd.offsets[c], g.bwd.offsets[c+1]
	out := make([]core.Edge[W], hi-lo)
	for k := lo; k < hi; k++ {
		out[k-lo] = core.Edge[W]{From: g.origOf[g.bwd.targets[k]], To: u, Weight: g.bwd.weights[k]}
	}

	return out, nil
}

// IsFrozen reports true: Graph is the immutable representation.
func (g *Graph[N, W]) IsFrozen() bool {
	return true
}

// --- compact surface ---------------------------------------------------

// CompactCount returns n, the number of compact positions. Compact
// positions are dense: 0 <= c < CompactCount().
func (g *Graph[N, W]) CompactCount() int {
	return len(g.payloads)
}

// CompactOf translates an original index to its compact position.
// The second result is false for tombstoned or out-of-range indices.
func (g *Graph[N, W]) CompactOf(i core.NodeIndex) (int, bool) {
	if i < 0 || int(i) >= len(g.compactOf) {
		return 0, false
	}
	c := g.compactOf[i]
	if c < 0 {
		return 0, false
	}

	return c, true
}

// OrigOf translates a compact position back to its original index.
func (g *Graph[N, W]) OrigOf(c int) core.NodeIndex {
	return g.origOf[c]
}

// OutTargets returns the forward targets of compact source c, strictly
// ascending. Zero-copy view; read-only.
func (g *Graph[N, W]) OutTargets(c int) []int {
	return g.fwd.slice(c)
}

// InTargets returns the transposed targets (i.e. the sources of inbound
// edges) of compact position c, strictly ascending. Zero-copy view;
// read-only.
func (g *Graph[N, W]) InTargets(c int) []int {
	return g.bwd.slice(c)
}

// OutDegree returns the out-degree of compact position c.
func (g *Graph[N, W]) OutDegree(c int) int {
	return g.fwd.degree(c)
}

// InDegree returns the in-degree of compact position c, O(1) off the
// transposed offsets.
func (g *Graph[N, W]) InDegree(c int) int {
	return g.bwd.degree(c)
}
