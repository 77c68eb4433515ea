package edgeview

import "errors"

// ErrGraphNil is returned when a nil core.Graph is passed to any edge-view function.
var ErrGraphNil = errors.New("edgeview: graph is nil")

// Pair is one undirected edge in canonical form, U ≤ V.
type Pair struct {
	U, V int
}
