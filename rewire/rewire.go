package rewire

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/nullgraph/core"
	"github.com/katalvlaran/nullgraph/edgeview"
)

// Randomize mutates g in place, performing exactly swaps accepted double-edge
// swaps. Every accepted swap preserves the degree of all four involved vertices
// and leaves the edge count unchanged; no self-loops or parallel edges are ever
// introduced. Each replacement edge inherits the payload of the edge it
// replaces.
//
// The input is expected to be loop-free; strip self-loops beforehand with
// edgeview.RemoveLoops, or a drawn loop edge could break the degree invariant.
//
// Steps, per attempt (counted against the budget):
//  1. Draw two edge indices from the live canonical snapshot; redraw on e1==e2.
//  2. Flip one orientation coin per edge, yielding candidates (a1,b2), (b1,a2).
//  3. Reject when endpoints coincide pairwise or a candidate edge exists.
//  4. Accept: swap the edges in g and patch the snapshot entries in place.
//
// On success the returned Stats counts swaps accepted and total attempts. On
// ErrUnsatisfiableSwaps the graph keeps the swaps accepted so far.
//
// Time:   O(E) setup + O(attempts · d) where d bounds the scanned degrees.
// Memory: O(E) for the edge snapshot.
func Randomize(g core.Graph, swaps int, opts ...Option) (Stats, error) {
	var st Stats

	// 1) Validate the request.
	if g == nil {
		return st, ErrGraphNil
	}
	if swaps < 0 {
		return st, fmt.Errorf("rewire: swaps=%d: %w", swaps, ErrNegativeSwapCount)
	}
	if swaps == 0 {
		return st, nil // nothing to do, graph untouched
	}

	// 2) Apply options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultRNGSeed))
	}
	budget := cfg.MaxAttempts
	if budget <= 0 {
		budget = defaultAttemptsPerSwap * swaps
		if budget < minAttemptBudget {
			budget = minAttemptBudget
		}
	}

	// 3) Snapshot the canonical edges once; kept in sync across acceptances.
	snapshot, err := edgeview.Edges(g)
	if err != nil {
		return st, fmt.Errorf("rewire: %w", err)
	}
	if len(snapshot) == 0 {
		return st, ErrNoEdges
	}

	// 4) Rejection-sampling loop, bounded by the attempt budget.
	var (
		a1, a2, b1, b2 int
		taken          bool
	)
	for st.Accepted < swaps {
		if st.Attempts >= budget {
			return st, fmt.Errorf("rewire: accepted %d of %d swaps in %d attempts: %w",
				st.Accepted, swaps, st.Attempts, ErrUnsatisfiableSwaps)
		}
		st.Attempts++

		e1 := rng.Intn(len(snapshot))
		e2 := rng.Intn(len(snapshot))
		if e1 == e2 {
			continue
		}

		// Orientation coins: which endpoint plays the a1/b1 role.
		a1, a2 = snapshot[e1].U, snapshot[e1].V
		if rng.Intn(2) == 1 {
			a1, a2 = a2, a1
		}
		b1, b2 = snapshot[e2].U, snapshot[e2].V
		if rng.Intn(2) == 1 {
			b1, b2 = b2, b1
		}

		// Coinciding endpoints would yield a self-loop or a degenerate swap.
		if a1 == b1 || a1 == b2 || a2 == b1 || a2 == b2 {
			continue
		}

		// Parallel-edge prevention: neither candidate may already exist.
		if taken, err = edgeview.HasEdge(g, a1, b2); err != nil {
			return st, fmt.Errorf("rewire: %w", err)
		} else if taken {
			continue
		}
		if taken, err = edgeview.HasEdge(g, b1, a2); err != nil {
			return st, fmt.Errorf("rewire: %w", err)
		} else if taken {
			continue
		}

		// Accept: rewire in g, patch the snapshot, count the swap.
		if err = swapEdges(g, a1, a2, b1, b2); err != nil {
			return st, err
		}
		snapshot[e1] = canonical(a1, b2)
		snapshot[e2] = canonical(b1, a2)
		st.Accepted++
	}

	return st, nil
}

// swapEdges replaces (a1,a2) and (b1,b2) with (a1,b2) and (b1,a2), carrying
// each removed edge's payload onto its replacement.
func swapEdges(g core.Graph, a1, a2, b1, b2 int) error {
	propA, err := g.EdgeProp(a1, a2)
	if err != nil {
		return fmt.Errorf("rewire: EdgeProp(%d,%d): %w", a1, a2, err)
	}
	propB, err := g.EdgeProp(b1, b2)
	if err != nil {
		return fmt.Errorf("rewire: EdgeProp(%d,%d): %w", b1, b2, err)
	}

	if err = g.RemoveEdge(a1, a2); err != nil {
		return fmt.Errorf("rewire: RemoveEdge(%d,%d): %w", a1, a2, err)
	}
	if err = g.RemoveEdge(b1, b2); err != nil {
		return fmt.Errorf("rewire: RemoveEdge(%d,%d): %w", b1, b2, err)
	}
	if err = g.AddEdge(a1, b2, propA); err != nil {
		return fmt.Errorf("rewire: AddEdge(%d,%d): %w", a1, b2, err)
	}
	if err = g.AddEdge(b1, a2, propB); err != nil {
		return fmt.Errorf("rewire: AddEdge(%d,%d): %w", b1, a2, err)
	}

	return nil
}

// canonical folds (u,v) into the U ≤ V snapshot form.
func canonical(u, v int) edgeview.Pair {
	if u > v {
		u, v = v, u
	}

	return edgeview.Pair{U: u, V: v}
}
