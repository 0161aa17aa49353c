package dfs

import (
	"github.com/marvin-hansen/next-graph/core"
	"github.com/marvin-hansen/next-graph/csr"
)

// Visitation states for the three-colour marking.
const (
	white = iota // undiscovered
	gray         // on the DFS stack
	black        // fully explored
)

// frame is one entry of the explicit DFS stack: a compact node and the
// cursor into its target slice.
type frame struct {
	node int
	next int
}

// FindCycle searches the frozen graph for a cycle and returns the first
// witness found, as a closed walk of original indices with the back-edge
// target as both first and last element.
//
// The second result is false when the graph is acyclic (a nil or empty
// graph is acyclic). Which cycle is witnessed on a graph with several is
// determined by the frozen layout: roots are tried in ascending compact
// order and targets in ascending order within each slice.
// Complexity: O(V + E).
func FindCycle[N any, W any](g *csr.Graph[N, W]) ([]core.NodeIndex, bool) {
	if g == nil {
		return nil, false
	}
	n := g.CompactCount()

	state := make([]uint8, n)
	stack := make([]frame, 0, n)

	for root := 0; root < n; root++ {
		if state[root] != white {
			continue
		}
		state[root] = gray
		stack = append(stack, frame{node: root})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			targets := g.OutTargets(top.node)

			if top.next == len(targets) {
				// Slice exhausted: retreat.
				state[top.node] = black
				stack = stack[:len(stack)-1]
				continue
			}

			v := targets[top.next]
			top.next++

			switch state[v] {
			case white:
				state[v] = gray
				stack = append(stack, frame{node: v})
			case gray:
				// Back edge into the live stack: cycle found.
				return cutCycle(g, stack, v), true
			}
		}
	}

	return nil, false
}

// IsCyclic reports whether the frozen graph contains at least one cycle.
// Complexity: O(V + E).
func IsCyclic[N any, W any](g *csr.Graph[N, W]) bool {
	_, found := FindCycle(g)
	return found
}

// cutCycle extracts the witness from the live stack: the suffix starting
// at the back-edge target v, closed by repeating v, translated to
// original indices.
func cutCycle[N any, W any](g *csr.Graph[N, W], stack []frame, v int) []core.NodeIndex {
	at := len(stack) - 1
	for stack[at].node != v {
		at--
	}

	out := make([]core.NodeIndex, 0, len(stack)-at+1)
	for _, f := range stack[at:] {
		out = append(out, g.OrigOf(f.node))
	}
	out = append(out, g.OrigOf(v))

	return out
}
