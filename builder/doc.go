// SPDX-License-Identifier: MIT
// Package builder constructs reference graphs on the core.Dense backend:
// deterministic families (paths, cycles, stars, cliques, disjoint triangles)
// and an Erdős–Rényi-like random sampler.
//
// These constructors exist to feed the analysis and rewiring packages with
// well-understood inputs — fixtures for tests and seed graphs for null-model
// experiments. They synthesize graphs from parameters; parsing graphs from
// external data stays with the host program.
//
// Determinism:
//   - Deterministic families add edges in a fixed documented order.
//   - RandomSparse draws Bernoulli trials in stable order (i asc, then j > i
//     asc), so a fixed-seed RNG reproduces the exact edge set.
//
// Errors:
//
//	ErrTooFewVertices     - n below the family's minimum.
//	ErrInvalidProbability - p outside [0, 1].
//	ErrNeedRandSource     - nil RNG where true sampling is required.
package builder
