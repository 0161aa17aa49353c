package csr

// Test-only bridge exposing the private containment kernel, so the test
// suite can assert that the adaptive lookup is equivalent at every
// threshold without widening the production API.

import "github.com/marvin-hansen/next-graph/core"

// LinearScanThreshold_TestOnly mirrors the production constant for
// white-box assertions.
const LinearScanThreshold_TestOnly = linearScanThreshold

// ContainsEdgeWithThreshold_TestOnly forwards to the private searchTargets
// kernel with an explicit threshold. A threshold of 0 forces binary
// search on every slice; a very large one forces the linear scan.
func (g *Graph[N, W]) ContainsEdgeWithThreshold_TestOnly(u, v core.NodeIndex, threshold int) bool {
	cu, ok := g.CompactOf(u)
	if !ok {
		return false
	}
	cv, ok := g.CompactOf(v)
	if !ok {
		return false
	}

	return searchTargets(g.fwd.slice(cu), cv, threshold)
}
