// Package core: central types for the mutable graph representation.
//
// This file declares NodeIndex, Edge, the DynGraph type with its
// functional options, sentinel errors, and the NewDynGraph constructor.
package core

import "errors"

// Sentinel errors for mutable graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced an index that is
	// outside the index space or refers to a tombstoned slot.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates RemoveEdge referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrEdgeAlreadyExists indicates AddEdge was called for an existing
	// (from, to) pair. Parallel edges are not permitted; the weight of
	// the existing edge is left untouched.
	ErrEdgeAlreadyExists = errors.New("core: edge already exists")
)

// NodeIndex is a stable handle for a node, issued by AddNode.
//
// The numerical value of a NodeIndex keeps denoting the same logical node
// across all edits, freezes, and thaws of the graph that issued it.
// Indices are never reused, even after RemoveNode.
type NodeIndex int

// Edge describes one directed edge (From → To) carrying an opaque weight.
// It is the unit of edge enumeration for both graph representations.
type Edge[W any] struct {
	// From is the source node index.
	From NodeIndex

	// To is the target node index.
	To NodeIndex

	// Weight is the opaque edge payload.
	Weight W
}

// halfEdge is the adjacency-list entry stored per source: the target and
// the weight, with the source implied by the list it lives in.
type halfEdge[W any] struct {
	to     NodeIndex
	weight W
}

// slot is one position in the dense node table. Dead slots are tombstones:
// the payload is zeroed but the position is retained so later indices do
// not shift.
type slot[N any] struct {
	payload N
	live    bool
}

// GraphOption configures a DynGraph at construction time.
type GraphOption func(*graphConfig)

// graphConfig collects construction hints; both are pure performance
// hints with no semantic effect.
type graphConfig struct {
	nodeCap        int // initial node-slot capacity
	perNodeEdgeCap int // initial capacity of each adjacency list
}

// WithNodeCapacity pre-sizes the node slot table for the expected number
// of nodes. Values <= 0 are ignored.
func WithNodeCapacity(n int) GraphOption {
	return func(c *graphConfig) {
		if n > 0 {
			c.nodeCap = n
		}
	}
}

// WithEdgeCapacity pre-sizes every per-node adjacency list for the
// expected out-degree. Values <= 0 are ignored.
func WithEdgeCapacity(perNode int) GraphOption {
	return func(c *graphConfig) {
		if perNode > 0 {
			c.perNodeEdgeCap = perNode
		}
	}
}

// DynGraph is the mutable graph representation: a slotted node table plus
// per-node forward adjacency, over an IndexSpace that guarantees index
// stability.
//
// Invariants maintained by every method:
//
//   - len(slots) == len(adj) == int(index.NextIndex())
//   - every adjacency entry points at a live slot
//   - at most one edge per (from, to) pair
//
// The zero value is an empty graph without capacity hints; NewDynGraph
// and Hydrate are the constructors.
type DynGraph[N any, W any] struct {
	index IndexSpace

	slots []slot[N]
	adj   [][]halfEdge[W]

	edgeCount int

	// perNodeEdgeCap is remembered so adjacency lists of nodes added
	// later are pre-sized too.
	perNodeEdgeCap int
}

// NewDynGraph creates an empty DynGraph with the given capacity hints.
// Complexity: O(1) plus the requested allocations.
func NewDynGraph[N any, W any](opts ...GraphOption) *DynGraph[N, W] {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &DynGraph[N, W]{
		slots:          make([]slot[N], 0, cfg.nodeCap),
		adj:            make([][]halfEdge[W], 0, cfg.nodeCap),
		perNodeEdgeCap: cfg.perNodeEdgeCap,
	}
}
