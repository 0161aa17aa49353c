// Package csr: adaptive edge containment.
package csr

import (
	"sort"

	"github.com/marvin-hansen/next-graph/core"
)

// linearScanThreshold is the out-degree below which ContainsEdge scans
// the target slice linearly instead of binary searching it. Below this
// point the contiguous, likely-in-cache scan beats the branchy search.
// The value is a property of cache-line geometry, fixed at compile time;
// it is not a per-graph or per-call tuning knob.
const linearScanThreshold = 64

// ContainsEdge reports whether the frozen graph has the edge u → v, both
// given as original indices. Absent or tombstoned endpoints report false.
//
// Complexity: O(deg_out(u)) below the scan threshold, O(log deg_out(u))
// above it.
func (g *Graph[N, W]) ContainsEdge(u, v core.NodeIndex) bool {
	cu, ok := g.CompactOf(u)
	if !ok {
		return false
	}
	cv, ok := g.CompactOf(v)
	if !ok {
		return false
	}

	return searchTargets(g.fwd.slice(cu), cv, linearScanThreshold)
}

// searchTargets looks for v in a strictly ascending target slice,
// switching from linear scan to binary search at the given threshold.
func searchTargets(targets []int, v, threshold int) bool {
	if len(targets) < threshold {
		for _, t := range targets {
			if t == v {
				return true
			}
			if t > v {
				return false
			}
		}

		return false
	}

	k := sort.SearchInts(targets, v)

	return k < len(targets) && targets[k] == v
}
