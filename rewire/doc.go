// Package rewire randomizes an undirected graph in place through double-edge
// swaps, preserving every vertex's degree while destroying higher-order
// structure. The result is the standard null model for significance testing:
// same degree sequence, randomized wiring.
//
// A double-edge swap picks two distinct edges (a1,a2) and (b1,b2), flips a coin
// for the orientation of each, and replaces them with (a1,b2) and (b1,a2). The
// swap is rejected — no state change — when any two of the four endpoints
// coincide (self-loop or degenerate swap) or when either replacement edge
// already exists (parallel-edge prevention). Accepted swaps update a live
// canonical-edge snapshot, so no per-attempt re-enumeration is needed.
//
// Key guarantees:
//   - Exactly swapCount accepted swaps on success; edge count invariant.
//   - Determinism: the RNG is injected (WithRand); a nil RNG falls back to a
//     fixed default seed, never to a time-based source.
//   - Termination: rejection sampling is bounded by a maximum attempt budget
//     (WithMaxAttempts); exhaustion surfaces ErrUnsatisfiableSwaps instead of
//     looping forever on graphs with no admissible swap (e.g. stars).
//
// The caller must give Randomize exclusive access to g for the call's duration.
// On ErrUnsatisfiableSwaps the swaps accepted before exhaustion remain applied;
// Stats reports how many.
package rewire
