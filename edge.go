// File: edge.go
// Role: Edge value type — an immutable directed, positively-weighted arc.
//
// Immutability:
//   - All fields are unexported and set only by NewEdge; an Edge is never
//     mutated in place, only replaced by a freshly constructed value.

package digraph

import "fmt"

// Edge is an immutable directed edge (source -> target) with a strictly
// positive weight. The zero value is not a valid edge; construct via NewEdge.
type Edge struct {
	source string
	target string
	weight int
}

// NewEdge constructs an Edge after validating its invariant:
// both endpoints non-empty, weight strictly positive.
//
// Errors:
//   - ErrEmptyLabel: source or target is empty.
//   - ErrBadWeight: weight <= 0.
//
// Complexity: O(1).
func NewEdge(source, target string, weight int) (Edge, error) {
	if source == "" || target == "" {
		return Edge{}, ErrEmptyLabel
	}
	if weight <= 0 {
		return Edge{}, ErrBadWeight
	}

	return Edge{source: source, target: target, weight: weight}, nil
}

// Source returns the source vertex label.
func (e Edge) Source() string { return e.source }

// Target returns the target vertex label.
func (e Edge) Target() string { return e.target }

// Weight returns the strictly positive edge weight.
func (e Edge) Weight() int { return e.weight }

// String renders the edge as "source -> target (weight)".
func (e Edge) String() string {
	return fmt.Sprintf("%s -> %s (%d)", e.source, e.target, e.weight)
}
