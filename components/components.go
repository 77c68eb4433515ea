package components

import (
	"fmt"

	"github.com/katalvlaran/nullgraph/core"
)

// Find partitions the vertices of g into connected components. It returns a
// label per vertex plus the component count k; two vertices share a label iff a
// path connects them, and labels are contiguous in [0, k), issued in discovery
// order of the ascending vertex scan (vertex 0's component is label 0, the next
// unvisited vertex opens label 1, and so on).
//
// The search is an explicit-stack DFS, so depth is bounded by memory rather
// than the goroutine stack regardless of graph diameter. Neighbors are pushed
// without a seen-check, so the stack may hold duplicates; a popped vertex that
// is already visited is simply skipped.
//
// Time:   O(V + E).
// Memory: O(V) for labels, visited flags, and the stack.
func Find(g core.Graph) ([]int, int, error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}

	n := g.VertexCount()
	labels := make([]int, n)
	for i := range labels {
		labels[i] = unlabeled
	}

	visited := make([]bool, n)
	stack := make([]int, 0, n)
	covered := 0 // vertices labeled so far
	next := 0    // next unused component id
	cursor := 0  // ascending scan position; only moves forward

	for covered < n {
		// 1) Locate the first unvisited vertex: it opens a new component.
		for visited[cursor] {
			cursor++
		}
		stack = append(stack, cursor)
		comp := next
		next++

		// 2) Exhaust the component with a plain LIFO walk.
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if visited[v] {
				continue // duplicate push, already labeled
			}
			visited[v] = true
			labels[v] = comp
			covered++

			nbs, err := g.Adjacent(v)
			if err != nil {
				return nil, 0, fmt.Errorf("components: Adjacent(%d): %w", v, err)
			}
			for _, w := range nbs {
				if !visited[w] {
					stack = append(stack, w)
				}
			}
		}
	}

	return labels, next, nil
}

// Sizes counts the vertices carrying each label of a Find result. The returned
// slice has length k and sums to len(labels).
//
// Time: O(V).
func Sizes(labels []int, k int) []int {
	counts := make([]int, k)
	for _, label := range labels {
		counts[label]++
	}

	return counts
}
