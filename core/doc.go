// Package core defines the Graph storage contract consumed by every algorithm in
// nullgraph, and provides Dense, the reference adjacency-list backend.
//
// Vertices are dense integer indices in [0, n); the index is the identity. Each
// vertex, each edge, and the graph itself may carry one opaque, caller-defined
// property value. Edges are undirected and appear symmetrically in both endpoints'
// adjacency.
//
// The contract is deliberately small: algorithms read through VertexCount and
// Adjacent, mutate through AddEdge/RemoveEdge, and allocate result graphs through
// Blank so outputs live on the same backing store as their inputs. Any structure
// satisfying Graph can be plugged in; Dense is a plain in-memory implementation
// with no locking — the caller is the unit of exclusive access.
//
// Errors:
//
//	ErrNegativeVertexCount - construction with n < 0.
//	ErrIndexOutOfRange     - vertex index outside [0, n).
//	ErrEdgeNotFound        - RemoveEdge/EdgeProp on a missing edge.
package core
