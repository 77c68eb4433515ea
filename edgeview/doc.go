// Package edgeview provides the canonical undirected-edge view over a core.Graph:
// enumeration of each edge exactly once as a (U ≤ V) pair, an adjacency query, a
// batch-insertion convenience, and self-loop stripping.
//
// Canonical rule: while scanning vertex u's adjacency, only neighbors v with
// u ≤ v are emitted, so every undirected edge surfaces exactly once (a self-loop
// surfaces once at its own vertex). Enumeration order is vertex-ascending, then
// neighbor-arrival order — deterministic, which keeps test fixtures stable.
//
// All functions are read-only except AddEdges and RemoveLoops.
package edgeview
