// Package csr implements the frozen half of the dual-state graph engine:
// an immutable pair of compressed-sparse-row adjacencies, plus the total
// Freeze and Thaw transformations that move a graph between the mutable
// and frozen forms.
//
// What:
//
//   - Graph: forward and transposed CSR adjacencies sharing one compact
//     node layout, each stored struct-of-arrays (offsets, targets,
//     weights), with node payloads in a parallel dense vector.
//   - Freeze: core.DynGraph → Graph. Compacts tombstones away, builds
//     both CSRs by counting sort, and co-sorts every adjacency slice so
//     per-source targets are strictly ascending. O(n + m).
//   - Thaw: Graph → core.DynGraph. Rehydrates the index space at the
//     recorded high-water mark and places payloads back at their original
//     positions, so indices issued before the freeze stay valid. O(n + m).
//
// Why struct-of-arrays:
//
//	Topology-only analyses (BFS, cycle detection, topological sort) never
//	touch weights. Keeping weights in their own array keeps them out of
//	the cache lines loaded during traversal.
//
// Indices:
//
//	The public surface speaks original core.NodeIndex values; the frozen
//	graph carries the original↔compact mapping built at freeze time.
//	The analysis packages additionally use the compact (dense, 0-based)
//	surface — CompactCount, OutTargets, InTargets, OrigOf, CompactOf —
//	whose slices are zero-copy views that must not be mutated.
//
// ContainsEdge is adaptive: sources below a fixed degree threshold are
// scanned linearly (the slice is contiguous and likely already in cache);
// larger slices are binary searched. The threshold is a compile-time
// constant, not a per-call knob.
//
// A frozen Graph is never mutated by any of its methods, which is what
// makes it safe to share among concurrent readers.
package csr
