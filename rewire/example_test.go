package rewire_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/nullgraph/builder"
	"github.com/katalvlaran/nullgraph/rewire"
)

// ExampleRandomize rewires a path while preserving every vertex degree — the
// degree sequence reads the same before and after.
func ExampleRandomize() {
	g, _ := builder.Path(5)

	st, err := rewire.Randomize(g, 3, rewire.WithRand(rand.New(rand.NewSource(42))))
	if err != nil {
		fmt.Println("randomize:", err)

		return
	}

	deg := make([]int, g.VertexCount())
	for v := range deg {
		nbs, _ := g.Adjacent(v)
		deg[v] = len(nbs)
	}
	fmt.Println(deg, st.Accepted)
	// Output: [1 2 2 2 1] 3
}

// ExampleRandomize_unsatisfiable shows the bounded rejection loop: a star
// admits no double-edge swap, so the attempt budget trips with a recoverable
// error instead of hanging.
func ExampleRandomize_unsatisfiable() {
	g, _ := builder.Star(5)

	_, err := rewire.Randomize(g, 1, rewire.WithMaxAttempts(200))
	fmt.Println(err != nil)
	// Output: true
}
