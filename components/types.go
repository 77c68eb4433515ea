package components

import "errors"

// ErrGraphNil is returned when a nil core.Graph is passed to any function here.
var ErrGraphNil = errors.New("components: graph is nil")

// unlabeled marks vertices not yet assigned to a component during the search.
const unlabeled = -1
