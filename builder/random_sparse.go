// SPDX-License-Identifier: MIT
//
// random_sparse.go - Erdős–Rényi-like G(n,p) sampler on core.Dense.
//
// Canonical model:
//   - Include each admissible undirected edge {i,j}, i < j, independently with
//     probability p. No loops, no parallel edges.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource); the boundary
//     probabilities are deterministic and need no RNG.
//
// Determinism:
//   - Stable trial order: i asc, then j > i asc ⇒ identical edge sets for a
//     fixed seed.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/nullgraph/core"
)

// RandomSparse samples a G(n,p)-style random graph over n vertices.
//
// Time:   O(n²) Bernoulli trials.
// Memory: O(n + E) for the result.
func RandomSparse(n int, p float64, rng *rand.Rand) (*core.Dense, error) {
	// 1) Validate parameters early; zero side effects on invalid input.
	if n < minPathVertices {
		return nil, fmt.Errorf("builder: RandomSparse(%d): n < %d: %w", n, minPathVertices, ErrTooFewVertices)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("builder: RandomSparse: p=%.6f not in [%.1f,%.1f]: %w",
			p, probMin, probMax, ErrInvalidProbability)
	}
	if rng == nil && p > probMin && p < probMax {
		return nil, fmt.Errorf("builder: RandomSparse: %w", ErrNeedRandSource)
	}

	g, err := core.NewDense(n)
	if err != nil {
		return nil, fmt.Errorf("builder: RandomSparse: %w", err)
	}

	// 2) Degenerate probabilities short-circuit deterministically.
	if p == probMin {
		return g, nil
	}

	// 3) Bernoulli trials over unordered pairs in stable order.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if p == probMax || rng.Float64() < p {
				if err = g.AddEdge(i, j, nil); err != nil {
					return nil, fmt.Errorf("builder: RandomSparse: AddEdge(%d,%d): %w", i, j, err)
				}
			}
		}
	}

	return g, nil
}
