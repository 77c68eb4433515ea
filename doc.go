// Package nullgraph is a toolkit for structural analysis and degree-preserving
// randomization of undirected graphs with dense, zero-based vertex indexing.
//
// 🚀 What is nullgraph?
//
//	A small, focused library that brings together:
//		• Core contract: a pluggable graph-storage interface + a dense adjacency backend
//		• Edge view: canonical undirected edge enumeration & adjacency queries
//		• Components: iterative connected-component labeling
//		• Subgraphs: induced-subgraph extraction with index compaction
//		• Selectors: filter components by size, extract the largest component
//		• Rewiring: double-edge-swap randomization preserving every vertex degree
//
// ✨ Why choose nullgraph?
//
//   - Deterministic – injected RNG, fixed default seed, reproducible swap sequences
//   - Safe – explicit error taxonomy, bounded rejection sampling, no hidden panics
//   - Pure Go – no cgo, no I/O, no persistence; your host program owns the graph
//
// Everything is organized under six subpackages:
//
//	core/       — Graph capability contract & the Dense adjacency-list backend
//	edgeview/   — canonical (u ≤ v) edge enumeration, HasEdge, batch insertion
//	components/ — connected-component labeling & component selectors
//	subgraph/   — induced subgraphs with compacted vertex indices
//	rewire/     — degree-preserving double-edge-swap randomizer
//	builder/    — deterministic & random fixture constructors (paths, stars, G(n,p))
//
// Quick ASCII example:
//
//	    0───1       3───4
//	     \ /         \ /
//	      2           5
//
//	two disjoint triangles: components.Find labels {0,1,2}→0 and {3,4,5}→1.
//
// The typical workflow: build or borrow a graph, label its components, reduce it to
// the structure you care about, then rewire a copy to obtain a null model with the
// same degree sequence for significance testing.
//
//	go get github.com/katalvlaran/nullgraph
package nullgraph
