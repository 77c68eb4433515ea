// Package core - storage contract types and sentinel errors.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertexCount indicates a graph was requested with n < 0 vertices.
	ErrNegativeVertexCount = errors.New("core: vertex count must be non-negative")

	// ErrIndexOutOfRange indicates a vertex index outside [0, n).
	ErrIndexOutOfRange = errors.New("core: vertex index out of range")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Graph is the capability contract every nullgraph algorithm is written against.
//
// Implementations store an undirected multigraph over dense vertex indices
// [0, n). Duplicate-edge avoidance is the caller's responsibility: AddEdge never
// deduplicates, and self-loops are accepted by the store (the algorithms that
// forbid them enforce that themselves).
//
// Every index-taking method must validate its indices and report
// ErrIndexOutOfRange rather than panic.
type Graph interface {
	// VertexCount returns n, the dense upper bound on valid vertex indices.
	VertexCount() int

	// Adjacent returns the neighbor indices of v as a fresh slice the caller may
	// keep. A neighbor appears once per parallel edge; a self-loop contributes v
	// itself once. Order is unspecified but stable between mutations.
	Adjacent(v int) ([]int, error)

	// AddEdge inserts the undirected edge (u,v) carrying prop (may be nil).
	// Duplicates are inserted as parallel edges, not rejected.
	AddEdge(u, v int, prop any) error

	// RemoveEdge removes exactly one instance of the undirected edge (u,v).
	// Missing edges are signalled with ErrEdgeNotFound, never ignored.
	RemoveEdge(u, v int) error

	// VertexProp and SetVertexProp read/write the opaque per-vertex payload.
	VertexProp(v int) (any, error)
	SetVertexProp(v int, prop any) error

	// EdgeProp and SetEdgeProp read/write the payload of one instance of (u,v).
	EdgeProp(u, v int) (any, error)
	SetEdgeProp(u, v int, prop any) error

	// GraphProp and SetGraphProp read/write the graph-level payload ("bundle").
	GraphProp() any
	SetGraphProp(prop any)

	// Blank allocates a fresh, empty graph with n vertices on the same backing
	// store as the receiver. Negative n is treated as 0.
	Blank(n int) Graph
}
