// File: vertex.go
// Role: Vertex type — a named node owning its outgoing-adjacency map.
//
// Ownership:
//   - Each Vertex exclusively owns its targets map. The map is never shared
//     between vertices and never escapes: Targets() returns a copy.
// Determinism:
//   - Mutations are plain map writes; enumeration order is delegated to
//     callers (the graph sorts where determinism is required).

package digraph

// Vertex is a named node with its own mutable outgoing-edge map
// (neighbor label -> strictly positive weight). It is the building block of
// VertexListGraph; the graph mutates adjacency only through these methods.
type Vertex struct {
	label   string
	targets map[string]int
}

// NewVertex constructs a Vertex with the given label and no outgoing edges.
//
// Errors:
//   - ErrEmptyLabel: label is empty.
//
// Complexity: O(1).
func NewVertex(label string) (*Vertex, error) {
	if label == "" {
		return nil, ErrEmptyLabel
	}

	return &Vertex{label: label, targets: make(map[string]int)}, nil
}

// Label returns the vertex label.
func (v *Vertex) Label() string { return v.label }

// SetTarget inserts or overwrites the outgoing edge to target and returns
// the weight that existed before the call (0 if none).
//
// Errors:
//   - ErrEmptyLabel: target is empty.
//   - ErrBadWeight: weight <= 0 (weight 0 removal goes through RemoveTarget).
//
// Complexity: O(1) amortized.
func (v *Vertex) SetTarget(target string, weight int) (int, error) {
	if target == "" {
		return 0, ErrEmptyLabel
	}
	if weight <= 0 {
		return 0, ErrBadWeight
	}

	prev := v.targets[target]
	v.targets[target] = weight

	return prev, nil
}

// RemoveTarget deletes the outgoing edge to target if present and returns
// its prior weight (0 if none). Removing an absent target is a no-op.
//
// Complexity: O(1).
func (v *Vertex) RemoveTarget(target string) int {
	prev := v.targets[target]
	delete(v.targets, target)

	return prev
}

// TargetWeight returns the weight of the outgoing edge to target,
// or 0 if no such edge exists.
//
// Complexity: O(1).
func (v *Vertex) TargetWeight(target string) int {
	return v.targets[target]
}

// Targets returns a copy of the outgoing-adjacency map. Mutating the result
// never affects the vertex.
//
// Complexity: O(d) where d is the out-degree.
func (v *Vertex) Targets() map[string]int {
	out := make(map[string]int, len(v.targets))
	for label, w := range v.targets {
		out[label] = w
	}

	return out
}

// OutDegree returns the number of outgoing edges.
//
// Complexity: O(1).
func (v *Vertex) OutDegree() int { return len(v.targets) }
