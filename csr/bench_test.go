package csr_test

import (
	"testing"

	"github.com/marvin-hansen/next-graph/core"
	"github.com/marvin-hansen/next-graph/csr"
)

// buildChain returns a linear chain of n+1 nodes ready to freeze.
func buildChain(n int) *core.DynGraph[int, int64] {
	g := core.NewDynGraph[int, int64](core.WithNodeCapacity(n + 1))
	prev := g.AddNode(0)
	for k := 1; k <= n; k++ {
		cur := g.AddNode(k)
		_ = g.AddEdge(prev, cur, int64(k))
		prev = cur
	}

	return g
}

// BenchmarkFreeze_Chain measures the full freeze pipeline on a chain.
func BenchmarkFreeze_Chain(b *testing.B) {
	const n = 10000

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := buildChain(n)
		b.StartTimer()

		_ = csr.Freeze(g)
	}
}

// BenchmarkContainsEdge_HighDegree measures the binary-search path on a
// hub whose degree is far above the scan threshold.
func BenchmarkContainsEdge_HighDegree(b *testing.B) {
	const leaves = 4096

	g := core.NewDynGraph[int, int64](core.WithNodeCapacity(leaves + 1))
	hub := g.AddNode(-1)
	var last core.NodeIndex
	for i := 0; i < leaves; i++ {
		last = g.AddNode(i)
		_ = g.AddEdge(hub, last, 1)
	}
	f := csr.Freeze(g)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !f.ContainsEdge(hub, last) {
			b.Fatal("edge must exist")
		}
	}
}
