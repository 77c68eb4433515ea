// Package rewire - options, result type, and sentinel errors.
package rewire

import (
	"errors"
	"math/rand"
)

var (
	// ErrGraphNil is returned when a nil core.Graph is passed to Randomize.
	ErrGraphNil = errors.New("rewire: graph is nil")

	// ErrNegativeSwapCount indicates a negative requested swap count.
	ErrNegativeSwapCount = errors.New("rewire: swap count must be non-negative")

	// ErrNoEdges indicates randomization was requested on a graph with zero
	// edges; the sampling range would be empty.
	ErrNoEdges = errors.New("rewire: graph has no edges")

	// ErrUnsatisfiableSwaps indicates the attempt budget ran out before the
	// requested number of swaps was accepted. Already-accepted swaps stay
	// applied; inspect Stats for the tally.
	ErrUnsatisfiableSwaps = errors.New("rewire: swap request unsatisfiable within attempt budget")
)

// defaultRNGSeed is the fixed seed used when no RNG is injected. Arbitrary but
// stable, keeping default runs reproducible across platforms.
const defaultRNGSeed int64 = 1

// defaultAttemptsPerSwap sizes the default attempt budget relative to the
// request. Sparse graphs accept most draws, so the default is generous enough
// that exhaustion signals a structurally constrained graph, not bad luck.
const defaultAttemptsPerSwap = 1000

// minAttemptBudget floors the default budget for tiny requests.
const minAttemptBudget = 1000

// Option configures Randomize. Use with Randomize(g, swaps, opts...).
type Option func(*Options)

// Options holds tunable parameters of the randomizer.
type Options struct {
	// Rand is the randomness source for edge draws and orientation coins.
	// Nil selects a deterministic default stream (fixed seed).
	Rand *rand.Rand

	// MaxAttempts bounds the total number of draw attempts, accepted and
	// rejected alike. Values ≤ 0 select the default budget of
	// max(defaultAttemptsPerSwap × swaps, minAttemptBudget).
	MaxAttempts int
}

// DefaultOptions returns the baseline configuration: no injected RNG
// (deterministic default stream) and the default attempt budget.
func DefaultOptions() Options {
	return Options{
		Rand:        nil,
		MaxAttempts: 0,
	}
}

// WithRand injects the randomness source. Passing nil keeps the default stream.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng != nil {
			o.Rand = rng
		}
	}
}

// WithMaxAttempts overrides the attempt budget. Values ≤ 0 keep the default.
func WithMaxAttempts(limit int) Option {
	return func(o *Options) {
		if limit > 0 {
			o.MaxAttempts = limit
		}
	}
}

// Stats reports the outcome of a Randomize call.
type Stats struct {
	// Accepted counts swaps actually applied to the graph.
	Accepted int

	// Attempts counts every draw, including rejected ones.
	Attempts int
}
