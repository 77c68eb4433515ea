// SPDX-License-Identifier: MIT
package builder

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrTooFewVertices indicates n is below the requested family's minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrInvalidProbability indicates an edge probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability must lie in [0,1]")

	// ErrNeedRandSource indicates a nil RNG where true sampling is required.
	ErrNeedRandSource = errors.New("builder: random source is required")
)

// Domain bounds shared by the constructors (no magic literals at call sites).
const (
	minPathVertices     = 1
	minCycleVertices    = 3
	minStarVertices     = 2
	minCompleteVertices = 1
	probMin             = 0.0
	probMax             = 1.0
	triangleSize        = 3
)
