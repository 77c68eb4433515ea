// SPDX-License-Identifier: MIT
//
// families.go - deterministic graph families on the core.Dense backend.
//
// Contract:
//   - Each constructor validates its parameters first (fail fast, no partial
//     graphs on invalid input) and returns only sentinel errors; never panics.
//   - Edge insertion order is fixed and documented per family, so canonical
//     enumeration of the result is stable across runs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/nullgraph/core"
)

// Path returns the path 0-1-…-(n-1). Edges are added (i, i+1) for i ascending.
// n ≥ 1; a single vertex yields an edgeless graph.
func Path(n int) (*core.Dense, error) {
	if n < minPathVertices {
		return nil, fmt.Errorf("builder: Path(%d): n < %d: %w", n, minPathVertices, ErrTooFewVertices)
	}

	g, err := core.NewDense(n)
	if err != nil {
		return nil, fmt.Errorf("builder: Path: %w", err)
	}
	for i := 0; i < n-1; i++ {
		if err = g.AddEdge(i, i+1, nil); err != nil {
			return nil, fmt.Errorf("builder: Path: %w", err)
		}
	}

	return g, nil
}

// Cycle returns the cycle 0-1-…-(n-1)-0. n ≥ 3 (smaller rings would need loops
// or parallel edges). Edge order: the path edges ascending, then the closing
// edge (0, n-1) in canonical orientation.
func Cycle(n int) (*core.Dense, error) {
	if n < minCycleVertices {
		return nil, fmt.Errorf("builder: Cycle(%d): n < %d: %w", n, minCycleVertices, ErrTooFewVertices)
	}

	g, err := Path(n)
	if err != nil {
		return nil, err
	}
	if err = g.AddEdge(0, n-1, nil); err != nil {
		return nil, fmt.Errorf("builder: Cycle: %w", err)
	}

	return g, nil
}

// Star returns the star with center 0 and leaves 1..n-1. n ≥ 2. Edges are added
// (0, leaf) for leaves ascending. Stars admit no double-edge swap, which makes
// them the canonical unsatisfiable input for the rewiring package.
func Star(n int) (*core.Dense, error) {
	if n < minStarVertices {
		return nil, fmt.Errorf("builder: Star(%d): n < %d: %w", n, minStarVertices, ErrTooFewVertices)
	}

	g, err := core.NewDense(n)
	if err != nil {
		return nil, fmt.Errorf("builder: Star: %w", err)
	}
	for leaf := 1; leaf < n; leaf++ {
		if err = g.AddEdge(0, leaf, nil); err != nil {
			return nil, fmt.Errorf("builder: Star: %w", err)
		}
	}

	return g, nil
}

// Complete returns the clique on n vertices. n ≥ 1. Edges are added for each
// unordered pair {i,j}, i ascending then j > i ascending.
func Complete(n int) (*core.Dense, error) {
	if n < minCompleteVertices {
		return nil, fmt.Errorf("builder: Complete(%d): n < %d: %w", n, minCompleteVertices, ErrTooFewVertices)
	}

	g, err := core.NewDense(n)
	if err != nil {
		return nil, fmt.Errorf("builder: Complete: %w", err)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err = g.AddEdge(i, j, nil); err != nil {
				return nil, fmt.Errorf("builder: Complete: %w", err)
			}
		}
	}

	return g, nil
}

// Triangles returns k disjoint triangles on 3k vertices: triangle t spans
// {3t, 3t+1, 3t+2}. k ≥ 1.
func Triangles(k int) (*core.Dense, error) {
	if k < 1 {
		return nil, fmt.Errorf("builder: Triangles(%d): k < 1: %w", k, ErrTooFewVertices)
	}

	g, err := core.NewDense(k * triangleSize)
	if err != nil {
		return nil, fmt.Errorf("builder: Triangles: %w", err)
	}
	for t := 0; t < k; t++ {
		base := t * triangleSize
		for _, e := range [][2]int{{0, 1}, {1, 2}, {0, 2}} {
			if err = g.AddEdge(base+e[0], base+e[1], nil); err != nil {
				return nil, fmt.Errorf("builder: Triangles: %w", err)
			}
		}
	}

	return g, nil
}
