package components

import (
	"fmt"

	"github.com/katalvlaran/nullgraph/core"
	"github.com/katalvlaran/nullgraph/subgraph"
)

// FilterBySize returns a new graph keeping only the vertices whose component
// holds at least minSize vertices, in ascending original-index order, with
// indices compacted. minSize ≤ 1 keeps the whole vertex set (identity up to
// reallocation); minSize greater than the vertex count yields an empty graph.
//
// Time:   O(V + E).
// Memory: O(V) plus the output.
func FilterBySize(g core.Graph, minSize int) (core.Graph, error) {
	labels, k, err := Find(g)
	if err != nil {
		return nil, err
	}
	counts := Sizes(labels, k)

	keep := make([]int, 0, len(labels))
	for v, label := range labels {
		if counts[label] >= minSize {
			keep = append(keep, v)
		}
	}

	out, err := subgraph.Induce(g, keep)
	if err != nil {
		return nil, fmt.Errorf("components: FilterBySize: %w", err)
	}

	return out, nil
}

// LargestIndices returns the vertices of the largest connected component in
// ascending index order. Ties on size go to the lowest-numbered component: the
// scan walks label ids ascending and replaces the champion only on a strictly
// greater count. An empty graph yields an empty slice.
//
// Time:   O(V + E).
func LargestIndices(g core.Graph) ([]int, error) {
	labels, k, err := Find(g)
	if err != nil {
		return nil, err
	}
	if k == 0 {
		return []int{}, nil
	}
	counts := Sizes(labels, k)

	largest := 0
	for label := 1; label < k; label++ {
		if counts[label] > counts[largest] {
			largest = label
		}
	}

	indices := make([]int, 0, counts[largest])
	for v, label := range labels {
		if label == largest {
			indices = append(indices, v)
		}
	}

	return indices, nil
}

// Largest returns a new graph holding only the largest connected component,
// with indices compacted. Tie-break as in LargestIndices.
//
// Time:   O(V + E).
func Largest(g core.Graph) (core.Graph, error) {
	indices, err := LargestIndices(g)
	if err != nil {
		return nil, err
	}

	out, err := subgraph.Induce(g, indices)
	if err != nil {
		return nil, fmt.Errorf("components: Largest: %w", err)
	}

	return out, nil
}
