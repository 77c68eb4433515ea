// File: dense.go
// Role: Dense, the reference Graph backend: a plain adjacency-list store over
//       dense vertex indices with opaque vertex/edge/graph payloads.
// Determinism:
//   - Adjacent(v) preserves edge-arrival order; RemoveEdge deletes the first
//     matching instance and keeps the order of the rest.
// Concurrency:
//   - No internal locking. One writer xor many readers, enforced by the caller.

package core

import "fmt"

// halfEdge is one directed half of an undirected edge. The prop value is shared
// by reference semantics only when the caller stores a pointer; the store keeps
// both halves' props in sync on SetEdgeProp.
type halfEdge struct {
	to   int
	prop any
}

// Dense is an in-memory adjacency-list graph over vertices [0, n).
// The zero value is an empty graph with no vertices; use NewDense for n > 0.
type Dense struct {
	n         int
	adj       [][]halfEdge
	vertProps []any
	bundle    any
}

// compile-time contract check
var _ Graph = (*Dense)(nil)

// NewDense returns an empty Dense graph with n vertices and no edges.
// Complexity: O(n).
func NewDense(n int) (*Dense, error) {
	if n < 0 {
		return nil, fmt.Errorf("core: NewDense(%d): %w", n, ErrNegativeVertexCount)
	}

	return &Dense{
		n:         n,
		adj:       make([][]halfEdge, n),
		vertProps: make([]any, n),
	}, nil
}

// check validates a single vertex index against [0, n).
func (d *Dense) check(v int) error {
	if v < 0 || v >= d.n {
		return fmt.Errorf("core: vertex %d outside [0,%d): %w", v, d.n, ErrIndexOutOfRange)
	}

	return nil
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (d *Dense) VertexCount() int { return d.n }

// Adjacent returns a fresh slice with the neighbors of v in edge-arrival order.
// Complexity: O(degree(v)).
func (d *Dense) Adjacent(v int) ([]int, error) {
	if err := d.check(v); err != nil {
		return nil, err
	}

	out := make([]int, len(d.adj[v]))
	for i, h := range d.adj[v] {
		out[i] = h.to
	}

	return out, nil
}

// AddEdge inserts the undirected edge (u,v) carrying prop. Both endpoints'
// adjacency gain a half-edge; a self-loop is stored once under its vertex.
// Duplicates are not detected. Complexity: O(1) amortized.
func (d *Dense) AddEdge(u, v int, prop any) error {
	if err := d.check(u); err != nil {
		return err
	}
	if err := d.check(v); err != nil {
		return err
	}

	d.adj[u] = append(d.adj[u], halfEdge{to: v, prop: prop})
	if u != v {
		d.adj[v] = append(d.adj[v], halfEdge{to: u, prop: prop})
	}

	return nil
}

// RemoveEdge deletes exactly one instance of the undirected edge (u,v),
// unlinking both halves while preserving the arrival order of the remainder.
// Returns ErrEdgeNotFound when no instance exists (documented policy: missing
// edges are signalled, not ignored). Complexity: O(degree(u)+degree(v)).
func (d *Dense) RemoveEdge(u, v int) error {
	if err := d.check(u); err != nil {
		return err
	}
	if err := d.check(v); err != nil {
		return err
	}

	if !d.unlink(u, v) {
		return fmt.Errorf("core: RemoveEdge(%d,%d): %w", u, v, ErrEdgeNotFound)
	}
	if u != v {
		// The mirror half must exist by the symmetry invariant.
		d.unlink(v, u)
	}

	return nil
}

// unlink removes the first half-edge u→v, keeping slice order. Reports success.
func (d *Dense) unlink(u, v int) bool {
	row := d.adj[u]
	for i, h := range row {
		if h.to == v {
			d.adj[u] = append(row[:i], row[i+1:]...)

			return true
		}
	}

	return false
}

// VertexProp returns the opaque payload of vertex v. Complexity: O(1).
func (d *Dense) VertexProp(v int) (any, error) {
	if err := d.check(v); err != nil {
		return nil, err
	}

	return d.vertProps[v], nil
}

// SetVertexProp stores the opaque payload of vertex v. Complexity: O(1).
func (d *Dense) SetVertexProp(v int, prop any) error {
	if err := d.check(v); err != nil {
		return err
	}
	d.vertProps[v] = prop

	return nil
}

// EdgeProp returns the payload of the first stored instance of edge (u,v).
// Complexity: O(degree(u)).
func (d *Dense) EdgeProp(u, v int) (any, error) {
	if err := d.check(u); err != nil {
		return nil, err
	}
	if err := d.check(v); err != nil {
		return nil, err
	}

	for _, h := range d.adj[u] {
		if h.to == v {
			return h.prop, nil
		}
	}

	return nil, fmt.Errorf("core: EdgeProp(%d,%d): %w", u, v, ErrEdgeNotFound)
}

// SetEdgeProp updates the payload of the first stored instance of edge (u,v)
// on both halves. Complexity: O(degree(u)+degree(v)).
func (d *Dense) SetEdgeProp(u, v int, prop any) error {
	if err := d.check(u); err != nil {
		return err
	}
	if err := d.check(v); err != nil {
		return err
	}

	if !d.relabel(u, v, prop) {
		return fmt.Errorf("core: SetEdgeProp(%d,%d): %w", u, v, ErrEdgeNotFound)
	}
	if u != v {
		d.relabel(v, u, prop)
	}

	return nil
}

// relabel updates the prop of the first half-edge u→v. Reports success.
func (d *Dense) relabel(u, v int, prop any) bool {
	for i := range d.adj[u] {
		if d.adj[u][i].to == v {
			d.adj[u][i].prop = prop

			return true
		}
	}

	return false
}

// GraphProp returns the graph-level payload. Complexity: O(1).
func (d *Dense) GraphProp() any { return d.bundle }

// SetGraphProp stores the graph-level payload. Complexity: O(1).
func (d *Dense) SetGraphProp(prop any) { d.bundle = prop }

// Blank allocates a fresh empty Dense with n vertices (negative n acts as 0),
// satisfying the Graph contract's constructor capability. Complexity: O(n).
func (d *Dense) Blank(n int) Graph {
	if n < 0 {
		n = 0
	}
	out, _ := NewDense(n) // n is non-negative here, cannot fail

	return out
}
