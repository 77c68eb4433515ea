package subgraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/nullgraph/core"
	"github.com/katalvlaran/nullgraph/edgeview"
)

var (
	// ErrGraphNil is returned when a nil core.Graph is passed to Induce.
	ErrGraphNil = errors.New("subgraph: graph is nil")

	// ErrDuplicateIndex indicates the kept-vertex list names some vertex twice.
	ErrDuplicateIndex = errors.New("subgraph: duplicate vertex index")
)

// notKept marks old indices absent from the kept set in the compaction array.
const notKept = -1

// Induce builds the subgraph of g induced by the given distinct old-vertex
// indices. New vertex i corresponds to indices[i], so the caller controls the
// output order (ascending input ⇒ stable output). The graph-level payload, the
// kept vertices' payloads, and the payload of every surviving edge are copied.
//
// Steps:
//  1. Map old→new through a sentinel array sized n.
//  2. Allocate the output via g.Blank(len(indices)).
//  3. Copy graph and vertex payloads.
//  4. Re-add every canonical edge whose endpoints are both kept.
//
// Time:   O(V + E).
// Memory: O(V) for the transient index map, plus the output.
func Induce(g core.Graph, indices []int) (core.Graph, error) {
	// 1) Validate input and build the compaction map.
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.VertexCount()
	toNew := make([]int, n)
	for i := range toNew {
		toNew[i] = notKept
	}

	for i, old := range indices {
		if old < 0 || old >= n {
			return nil, fmt.Errorf("subgraph: index %d outside [0,%d): %w",
				old, n, core.ErrIndexOutOfRange)
		}
		if toNew[old] != notKept {
			return nil, fmt.Errorf("subgraph: index %d listed twice: %w", old, ErrDuplicateIndex)
		}
		toNew[old] = i
	}

	// 2) Allocate the compacted output on the same backing store.
	out := g.Blank(len(indices))

	// 3) Carry the bundle and the kept vertices' payloads.
	out.SetGraphProp(g.GraphProp())
	for i, old := range indices {
		prop, err := g.VertexProp(old)
		if err != nil {
			return nil, fmt.Errorf("subgraph: VertexProp(%d): %w", old, err)
		}
		if err = out.SetVertexProp(i, prop); err != nil {
			return nil, fmt.Errorf("subgraph: SetVertexProp(%d): %w", i, err)
		}
	}

	// 4) Keep exactly the edges with both endpoints in the map.
	pairs, err := edgeview.Edges(g)
	if err != nil {
		return nil, fmt.Errorf("subgraph: %w", err)
	}

	var prop any
	for _, p := range pairs {
		nu, nv := toNew[p.U], toNew[p.V]
		if nu == notKept || nv == notKept {
			continue
		}
		if prop, err = g.EdgeProp(p.U, p.V); err != nil {
			return nil, fmt.Errorf("subgraph: EdgeProp(%d,%d): %w", p.U, p.V, err)
		}
		if err = out.AddEdge(nu, nv, prop); err != nil {
			return nil, fmt.Errorf("subgraph: AddEdge(%d,%d): %w", nu, nv, err)
		}
	}

	return out, nil
}
