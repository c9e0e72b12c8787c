// File: edgelist.go
// Role: EdgeListGraph — the edge-centric Graph representation.
//
// Representation:
//   - A set of vertex labels plus a flat slice of immutable Edge values.
//   - Edges are located by linear scan over the slice; an "update" discards
//     the old value and appends a freshly constructed one.
// Determinism:
//   - Vertices()/Edges() sort their snapshots; internal slice order is an
//     implementation detail that never leaks.

package digraph

import "sort"

// EdgeListGraph implements Graph with a vertex-label set and an edge
// collection. Vertices are bare labels; edges are immutable values.
//
// Abstraction function:
//
//	AF(vertices, edges) = the directed weighted graph whose vertex set is
//	the key set of vertices and whose edge set is { (e.source, e.target,
//	e.weight) : e in edges }.
//
// Representation invariant:
//   - no empty label in vertices;
//   - every edge satisfies the Edge invariant (non-empty endpoints,
//     weight > 0);
//   - no two edges share the same (source, target) pair;
//   - every edge's source and target are members of vertices.
//
// Rep exposure: both collections are unexported and never returned;
// every accessor copies.
type EdgeListGraph struct {
	vertices map[string]struct{}
	edges    []Edge
}

// compile-time contract check
var _ Graph = (*EdgeListGraph)(nil)

// NewEdgeListGraph returns an empty edge-list graph.
//
// Complexity: O(1).
func NewEdgeListGraph() *EdgeListGraph {
	g := &EdgeListGraph{vertices: make(map[string]struct{})}
	g.checkRep()

	return g
}

// checkRep validates the representation invariant and panics on violation.
// Called after every mutation; gated by repCheckEnabled.
//
// Complexity: O(V + E).
func (g *EdgeListGraph) checkRep() {
	if !repCheckEnabled {
		return
	}
	for label := range g.vertices {
		if label == "" {
			repViolation("empty label in vertex set")
		}
	}
	seen := make(map[[2]string]struct{}, len(g.edges))
	for _, e := range g.edges {
		if e.source == "" || e.target == "" {
			repViolation("edge with empty endpoint: %q -> %q", e.source, e.target)
		}
		if e.weight <= 0 {
			repViolation("non-positive weight %d on edge %s -> %s", e.weight, e.source, e.target)
		}
		if _, ok := g.vertices[e.source]; !ok {
			repViolation("dangling edge source %q", e.source)
		}
		if _, ok := g.vertices[e.target]; !ok {
			repViolation("dangling edge target %q", e.target)
		}
		pair := [2]string{e.source, e.target}
		if _, dup := seen[pair]; dup {
			repViolation("duplicate edge %s -> %s", e.source, e.target)
		}
		seen[pair] = struct{}{}
	}
}

// findEdge returns the index of the edge with the given (source, target)
// pair, or -1 if none exists. At most one such edge exists by the invariant.
//
// Complexity: O(E) linear scan.
func (g *EdgeListGraph) findEdge(source, target string) int {
	for i, e := range g.edges {
		if e.source == source && e.target == target {
			return i
		}
	}

	return -1
}

// Add inserts a vertex if missing. Returns true on insertion, false when the
// label is already present (no state change).
//
// Errors:
//   - ErrEmptyLabel: label is empty.
//
// Complexity: O(1) for the insert, O(V + E) for the rep check.
func (g *EdgeListGraph) Add(label string) (bool, error) {
	if label == "" {
		return false, ErrEmptyLabel
	}
	if _, exists := g.vertices[label]; exists {
		return false, nil
	}

	g.vertices[label] = struct{}{}
	g.checkRep()

	return true, nil
}

// Set creates, overwrites, or removes the (source, target) edge.
//
// With weight > 0 it ensures both endpoints exist as vertices, replaces any
// existing edge for the pair with a freshly constructed Edge carrying the new
// weight, and returns the prior weight (0 if the edge did not exist). With
// weight == 0 it removes the edge if present — creating no vertices — and
// returns its prior weight.
//
// Errors:
//   - ErrEmptyLabel: source or target is empty.
//   - ErrNegativeWeight: weight < 0.
//
// Complexity: O(E) for the scan, O(V + E) for the rep check.
func (g *EdgeListGraph) Set(source, target string, weight int) (int, error) {
	if source == "" || target == "" {
		return 0, ErrEmptyLabel
	}
	if weight < 0 {
		return 0, ErrNegativeWeight
	}

	i := g.findEdge(source, target)

	if weight == 0 {
		if i < 0 {
			// Nothing to remove; no vertices are created on the zero path.
			return 0, nil
		}
		prev := g.edges[i].weight
		g.edges = append(g.edges[:i], g.edges[i+1:]...)
		g.checkRep()

		return prev, nil
	}

	// Positive weight: endpoints must exist before the edge does.
	g.vertices[source] = struct{}{}
	g.vertices[target] = struct{}{}

	e, err := NewEdge(source, target, weight)
	if err != nil {
		// Arguments were validated above; a failure here is a defect.
		repViolation("edge construction rejected validated input: %v", err)
	}

	prev := 0
	if i >= 0 {
		prev = g.edges[i].weight
		g.edges = append(g.edges[:i], g.edges[i+1:]...)
	}
	g.edges = append(g.edges, e)
	g.checkRep()

	return prev, nil
}

// Remove deletes a vertex and every edge incident to it (as source or
// target). Returns false with no state change when the label is absent.
//
// Errors:
//   - ErrEmptyLabel: label is empty.
//
// Complexity: O(E) filter, O(V + E) for the rep check.
func (g *EdgeListGraph) Remove(label string) (bool, error) {
	if label == "" {
		return false, ErrEmptyLabel
	}
	if _, exists := g.vertices[label]; !exists {
		return false, nil
	}

	delete(g.vertices, label)

	// Filter out incident edges in place, preserving relative order.
	kept := g.edges[:0]
	for _, e := range g.edges {
		if e.source != label && e.target != label {
			kept = append(kept, e)
		}
	}
	g.edges = kept
	g.checkRep()

	return true, nil
}

// HasVertex reports membership of the label (empty label is never present).
//
// Complexity: O(1).
func (g *EdgeListGraph) HasVertex(label string) bool {
	_, ok := g.vertices[label]

	return ok
}

// Vertices returns all vertex labels sorted lexicographically ascending.
// The slice is a snapshot; mutating it never affects the graph.
//
// Complexity: O(V log V).
func (g *EdgeListGraph) Vertices() []string {
	out := make([]string, 0, len(g.vertices))
	for label := range g.vertices {
		out = append(out, label)
	}
	sort.Strings(out)

	return out
}

// VertexCount returns the number of vertices.
//
// Complexity: O(1).
func (g *EdgeListGraph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of edges.
//
// Complexity: O(1).
func (g *EdgeListGraph) EdgeCount() int { return len(g.edges) }

// Edges returns a snapshot of all edges sorted by (source, target).
// Edge values are immutable, so the copy is rep-exposure-safe by value.
//
// Complexity: O(E log E).
func (g *EdgeListGraph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	sortEdges(out)

	return out
}

// Sources returns source label -> weight for every edge into target.
// An unknown target yields an empty map, not an error.
//
// Errors:
//   - ErrEmptyLabel: target is empty.
//
// Complexity: O(E).
func (g *EdgeListGraph) Sources(target string) (map[string]int, error) {
	if target == "" {
		return nil, ErrEmptyLabel
	}

	out := make(map[string]int)
	for _, e := range g.edges {
		if e.target == target {
			out[e.source] = e.weight
		}
	}

	return out, nil
}

// Targets returns target label -> weight for every edge out of source.
// An unknown source yields an empty map, not an error.
//
// Errors:
//   - ErrEmptyLabel: source is empty.
//
// Complexity: O(E).
func (g *EdgeListGraph) Targets(source string) (map[string]int, error) {
	if source == "" {
		return nil, ErrEmptyLabel
	}

	out := make(map[string]int)
	for _, e := range g.edges {
		if e.source == source {
			out[e.target] = e.weight
		}
	}

	return out, nil
}

// Clone returns a deep copy in the same representation. The clone shares no
// state with the original: the vertex set is re-built and Edge values copy
// by value.
//
// Complexity: O(V + E).
func (g *EdgeListGraph) Clone() Graph {
	clone := &EdgeListGraph{
		vertices: make(map[string]struct{}, len(g.vertices)),
		edges:    make([]Edge, len(g.edges)),
	}
	for label := range g.vertices {
		clone.vertices[label] = struct{}{}
	}
	copy(clone.edges, g.edges)
	clone.checkRep()

	return clone
}

// String renders the graph in the shared format; see formatGraph.
func (g *EdgeListGraph) String() string {
	return formatGraph(g.Vertices(), g.Edges())
}

// sortEdges orders a snapshot by (source, target) ascending. Weights cannot
// tie-break: the pair is unique by the graph invariant.
func sortEdges(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].source != edges[j].source {
			return edges[i].source < edges[j].source
		}

		return edges[i].target < edges[j].target
	})
}
