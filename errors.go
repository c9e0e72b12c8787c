package digraph

import "errors"

// Sentinel errors for graph operations. All public operations return these
// sentinels on invalid arguments and tests match them via errors.Is.
// Invariant violations are not represented here: they panic (see checkrep.go).
var (
	// ErrEmptyLabel indicates an empty vertex label was passed where a
	// label is required. Labels are opaque non-empty strings.
	ErrEmptyLabel = errors.New("digraph: empty vertex label")

	// ErrNegativeWeight indicates a negative weight was passed to Set.
	// Weight 0 is a removal signal; weights of stored edges are always > 0.
	ErrNegativeWeight = errors.New("digraph: negative edge weight")

	// ErrBadWeight indicates a non-positive weight was passed to a
	// constructor or mutator that requires a stored-edge weight (> 0),
	// such as NewEdge or Vertex.SetTarget.
	ErrBadWeight = errors.New("digraph: edge weight must be > 0")
)
