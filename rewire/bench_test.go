package rewire_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/nullgraph/builder"
	"github.com/katalvlaran/nullgraph/rewire"
)

// BenchmarkRandomize measures accepted-swap throughput on a sparse random
// graph with 2k vertices; the live edge snapshot avoids O(E) rebuilds.
func BenchmarkRandomize(b *testing.B) {
	const (
		n     = 2000
		swaps = 1000
	)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g, err := builder.RandomSparse(n, 8.0/float64(n), rand.New(rand.NewSource(42)))
		if err != nil {
			b.Fatalf("setup RandomSparse failed: %v", err)
		}
		rng := rand.New(rand.NewSource(int64(i) + 1))
		b.StartTimer()

		if _, err = rewire.Randomize(g, swaps, rewire.WithRand(rng)); err != nil {
			b.Fatalf("Randomize failed: %v", err)
		}
	}
}
