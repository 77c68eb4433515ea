package edgeview

import (
	"fmt"

	"github.com/katalvlaran/nullgraph/core"
)

// Edges enumerates every undirected edge of g exactly once in canonical form.
// Scanning vertices ascending, a neighbor v of u is kept only when u ≤ v, so the
// mirrored half of each edge is skipped and a self-loop is emitted once.
//
// Time:   O(V + E).
// Memory: O(E) for the result.
func Edges(g core.Graph) ([]Pair, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.VertexCount()
	out := make([]Pair, 0, n)
	for u := 0; u < n; u++ {
		nbs, err := g.Adjacent(u)
		if err != nil {
			return nil, fmt.Errorf("edgeview: Adjacent(%d): %w", u, err)
		}
		for _, v := range nbs {
			if u <= v {
				out = append(out, Pair{U: u, V: v})
			}
		}
	}

	return out, nil
}

// HasEdge reports whether at least one instance of the undirected edge (u,v)
// exists, by a linear scan of u's adjacency. No side effects.
//
// Time:   O(degree(u)).
// Memory: O(degree(u)) for the adjacency snapshot.
func HasEdge(g core.Graph, u, v int) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if v < 0 || v >= g.VertexCount() {
		return false, fmt.Errorf("edgeview: vertex %d outside [0,%d): %w",
			v, g.VertexCount(), core.ErrIndexOutOfRange)
	}

	nbs, err := g.Adjacent(u)
	if err != nil {
		return false, fmt.Errorf("edgeview: Adjacent(%d): %w", u, err)
	}
	for _, w := range nbs {
		if w == v {
			return true, nil
		}
	}

	return false, nil
}

// AddEdges inserts every pair of the list via the graph's edge-insertion
// primitive, carrying no edge payload. Purely a batch convenience: duplicates
// are neither checked nor deduplicated.
//
// Time:   O(len(pairs)).
func AddEdges(g core.Graph, pairs []Pair) error {
	if g == nil {
		return ErrGraphNil
	}

	for _, p := range pairs {
		if err := g.AddEdge(p.U, p.V, nil); err != nil {
			return fmt.Errorf("edgeview: AddEdge(%d,%d): %w", p.U, p.V, err)
		}
	}

	return nil
}

// RemoveLoops deletes every self-loop from g, including parallel loop instances.
// Returns the number of loops removed.
//
// Time:   O(V + E).
func RemoveLoops(g core.Graph) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}

	removed := 0
	n := g.VertexCount()
	for v := 0; v < n; v++ {
		nbs, err := g.Adjacent(v)
		if err != nil {
			return removed, fmt.Errorf("edgeview: Adjacent(%d): %w", v, err)
		}

		loops := 0
		for _, w := range nbs {
			if w == v {
				loops++
			}
		}
		for i := 0; i < loops; i++ {
			if err = g.RemoveEdge(v, v); err != nil {
				return removed, fmt.Errorf("edgeview: RemoveEdge(%d,%d): %w", v, v, err)
			}
			removed++
		}
	}

	return removed, nil
}
