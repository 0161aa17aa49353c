// Package csr: the freeze transformation.
//
// Freeze is a counting-sort CSR build: one pass assigns compact positions
// and counts degrees, a prefix sum turns counts into offsets, and a
// second pass writes targets and weights through per-source cursors. The
// transposed CSR repeats the count/fill pair over the forward targets.
package csr

import "github.com/marvin-hansen/next-graph/core"

// Freeze converts a mutable graph into its frozen CSR form.
//
// Compact positions 0..n-1 are assigned to live slots in ascending
// original-index order; tombstones vanish from the compact layout but
// their positions are remembered through the original↔compact mapping,
// so the frozen surface keeps speaking original indices.
//
// Freeze consumes its input: d is drained (Clear) once the frozen graph
// is built, and must not be used for further edits — Thaw the result
// instead. Freeze is total and runs in O(n + m).
func Freeze[N any, W any](d *core.DynGraph[N, W]) *Graph[N, W] {
	live := d.NodeIndices()
	n := len(live)
	next := int(d.NextIndex())

	g := &Graph[N, W]{
		payloads:  make([]N, n),
		origOf:    make([]core.NodeIndex, n),
		compactOf: make([]int, next),
		next:      core.NodeIndex(next),
	}
	for i := range g.compactOf {
		g.compactOf[i] = -1
	}

	// Compaction map and payload carry-over, in ascending original order.
	for c, orig := range live {
		g.compactOf[orig] = c
		g.origOf[c] = orig
		p, _ := d.Node(orig)
		g.payloads[c] = p
	}

	// Snapshot adjacencies once; the slices serve both the degree count
	// and the fill pass.
	nbrs := make([][]core.Edge[W], n)
	m := 0
	for c, orig := range live {
		es, _ := d.Neighbors(orig)
		nbrs[c] = es
		m += len(es)
	}

	// Forward CSR: prefix-sum offsets, then fill and co-sort each slice.
	g.fwd = adjacency[W]{
		offsets: make([]int, n+1),
		targets: make([]int, m),
		weights: make([]W, m),
	}
	for c := range nbrs {
		g.fwd.offsets[c+1] = g.fwd.offsets[c] + len(nbrs[c])
	}
	for c, es := range nbrs {
		at := g.fwd.offsets[c]
		for k, e := range es {
			g.fwd.targets[at+k] = g.compactOf[e.To]
			g.fwd.weights[at+k] = e.Weight
		}
	}
	for c := 0; c < n; c++ {
		g.fwd.coSort(c)
	}

	// Transposed CSR: count in-degrees off the forward targets, prefix
	// sum, then fill through cursors. Sources are visited in ascending
	// compact order, so every backward slice is born sorted.
	g.bwd = adjacency[W]{
		offsets: make([]int, n+1),
		targets: make([]int, m),
		weights: make([]W, m),
	}
	for _, t := range g.fwd.targets {
		g.bwd.offsets[t+1]++
	}
	for c := 0; c < n; c++ {
		g.bwd.offsets[c+1] += g.bwd.offsets[c]
	}
	cursor := make([]int, n)
	copy(cursor, g.bwd.offsets[:n])
	for c := 0; c < n; c++ {
		for k := g.fwd.offsets[c]; k < g.fwd.offsets[c+1]; k++ {
			t := g.fwd.targets[k]
			g.bwd.targets[cursor[t]] = c
			g.bwd.weights[cursor[t]] = g.fwd.weights[k]
			cursor[t]++
		}
	}

	d.Clear()

	return g
}
