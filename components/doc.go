// Package components labels the connected components of an undirected graph and
// derives reduced graphs from the labeling: size-filtered and largest-component
// extraction.
//
// Key behaviors:
//   - Find(g): iterative explicit-stack DFS labeling; component ids are issued
//     in discovery order of the ascending vertex scan, so they are contiguous
//     in [0, k) and deterministic for a given graph.
//   - FilterBySize(g, minSize): keeps every vertex whose component holds at
//     least minSize vertices, in ascending original order.
//   - Largest(g) / LargestIndices(g): selects the component with the maximum
//     vertex count; ties go to the lowest-numbered component (strict > scan
//     over ascending label ids).
//
// All selectors reduce through subgraph.Induce, so outputs are fresh graphs
// with compacted indices; inputs are never mutated.
//
// Complexity:
//
//   - Time:   O(V + E) for Find and each selector.
//   - Memory: O(V) for the visited flags, the stack, and per-label counts.
package components
