// Package subgraph extracts induced subgraphs with index compaction.
//
// Induce keeps an ordered subset of vertices and exactly the edges with both
// endpoints kept, renumbering vertices to [0, k) in the order the caller listed
// them. The old→new association is a transient sentinel array sized n, giving
// O(1) lookups and O(V+E) total induction cost; it owns no lasting state.
//
// The output graph is freshly allocated through the input's Blank capability,
// so it lives on the same backing store as its source and is exclusively owned
// by the caller.
package subgraph
