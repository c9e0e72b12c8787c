// File: vertexlist.go
// Role: VertexListGraph — the vertex-centric Graph representation.
//
// Representation:
//   - A collection of Vertex objects, each owning its outgoing-adjacency
//     map. There is no separate edge collection: outgoing edges are read
//     from the source vertex, incoming edges by scanning every vertex's
//     adjacency for the queried target.
// Ownership:
//   - The graph owns the vertex collection; each Vertex owns its own map
//     and is mutated only through its own methods.

package digraph

import "sort"

// VertexListGraph implements Graph as a collection of Vertex objects.
//
// Abstraction function:
//
//	AF(vertices) = the directed weighted graph whose vertex set is
//	{ v.label : v in vertices } and whose edge set is
//	{ (v.label, t, w) : v in vertices, (t, w) in v.targets }.
//
// Representation invariant:
//   - no nil Vertex and no empty label;
//   - no two vertices share a label;
//   - every adjacency entry has a non-empty key, a weight > 0, and a key
//     that names a vertex of the collection (no dangling targets).
//
// Rep exposure: the slice and the per-vertex maps are unexported;
// every accessor copies.
type VertexListGraph struct {
	vertices []*Vertex
}

// compile-time contract check
var _ Graph = (*VertexListGraph)(nil)

// NewVertexListGraph returns an empty vertex-list graph.
//
// Complexity: O(1).
func NewVertexListGraph() *VertexListGraph {
	g := &VertexListGraph{}
	g.checkRep()

	return g
}

// checkRep validates the representation invariant and panics on violation.
// Called after every mutation; gated by repCheckEnabled.
//
// Complexity: O(V + E).
func (g *VertexListGraph) checkRep() {
	if !repCheckEnabled {
		return
	}
	labels := make(map[string]struct{}, len(g.vertices))
	for _, v := range g.vertices {
		if v == nil {
			repViolation("nil vertex in collection")
		}
		if v.label == "" {
			repViolation("vertex with empty label")
		}
		if _, dup := labels[v.label]; dup {
			repViolation("duplicate vertex label %q", v.label)
		}
		labels[v.label] = struct{}{}
	}
	for _, v := range g.vertices {
		for target, w := range v.targets {
			if target == "" {
				repViolation("empty target label on vertex %q", v.label)
			}
			if w <= 0 {
				repViolation("non-positive weight %d on edge %s -> %s", w, v.label, target)
			}
			if _, ok := labels[target]; !ok {
				repViolation("dangling edge target %q on vertex %q", target, v.label)
			}
		}
	}
}

// findVertex returns the Vertex with the given label, or nil if absent.
//
// Complexity: O(V) linear scan.
func (g *VertexListGraph) findVertex(label string) *Vertex {
	for _, v := range g.vertices {
		if v.label == label {
			return v
		}
	}

	return nil
}

// addVertex appends a fresh Vertex for label; the caller guarantees the
// label is non-empty and not yet present.
func (g *VertexListGraph) addVertex(label string) *Vertex {
	v := &Vertex{label: label, targets: make(map[string]int)}
	g.vertices = append(g.vertices, v)

	return v
}

// Add inserts a vertex if missing. Returns true on insertion, false when the
// label is already present (no state change).
//
// Errors:
//   - ErrEmptyLabel: label is empty.
//
// Complexity: O(V) scan, O(V + E) for the rep check.
func (g *VertexListGraph) Add(label string) (bool, error) {
	if label == "" {
		return false, ErrEmptyLabel
	}
	if g.findVertex(label) != nil {
		return false, nil
	}

	g.addVertex(label)
	g.checkRep()

	return true, nil
}

// Set creates, overwrites, or removes the (source, target) edge.
//
// With weight > 0 it locates the source Vertex (creating one if absent) and
// the target Vertex (creating one if absent, purely so no edge dangles),
// then delegates to the source vertex's own SetTarget, returning the prior
// weight. With weight == 0 it removes the target entry from the source
// vertex's map if the source exists; an absent source means nothing to
// remove and a 0 return. No vertices are created on the zero path.
//
// Errors:
//   - ErrEmptyLabel: source or target is empty.
//   - ErrNegativeWeight: weight < 0.
//
// Complexity: O(V) scans, O(V + E) for the rep check.
func (g *VertexListGraph) Set(source, target string, weight int) (int, error) {
	if source == "" || target == "" {
		return 0, ErrEmptyLabel
	}
	if weight < 0 {
		return 0, ErrNegativeWeight
	}

	src := g.findVertex(source)

	if weight == 0 {
		if src == nil {
			return 0, nil
		}
		prev := src.RemoveTarget(target)
		g.checkRep()

		return prev, nil
	}

	if src == nil {
		src = g.addVertex(source)
	}
	if source != target && g.findVertex(target) == nil {
		// The target vertex must exist even if it never gains outgoing edges.
		g.addVertex(target)
	}

	prev, err := src.SetTarget(target, weight)
	if err != nil {
		// Arguments were validated above; a failure here is a defect.
		repViolation("vertex rejected validated edge %s -> %s (%d): %v", source, target, weight, err)
	}
	g.checkRep()

	return prev, nil
}

// Remove deletes a vertex and cascades: the matching Vertex leaves the
// collection, then every remaining vertex drops any adjacency entry keyed by
// the removed label (incoming-edge cleanup). Returns false with no state
// change when the label is absent.
//
// Errors:
//   - ErrEmptyLabel: label is empty.
//
// Complexity: O(V) plus O(V + E) for the rep check.
func (g *VertexListGraph) Remove(label string) (bool, error) {
	if label == "" {
		return false, ErrEmptyLabel
	}

	idx := -1
	for i, v := range g.vertices {
		if v.label == label {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}

	g.vertices = append(g.vertices[:idx], g.vertices[idx+1:]...)
	for _, v := range g.vertices {
		v.RemoveTarget(label)
	}
	g.checkRep()

	return true, nil
}

// HasVertex reports membership of the label (empty label is never present).
//
// Complexity: O(V).
func (g *VertexListGraph) HasVertex(label string) bool {
	return g.findVertex(label) != nil
}

// Vertices returns all vertex labels sorted lexicographically ascending.
// The slice is a snapshot; mutating it never affects the graph.
//
// Complexity: O(V log V).
func (g *VertexListGraph) Vertices() []string {
	out := make([]string, 0, len(g.vertices))
	for _, v := range g.vertices {
		out = append(out, v.label)
	}
	sort.Strings(out)

	return out
}

// VertexCount returns the number of vertices.
//
// Complexity: O(1).
func (g *VertexListGraph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of edges, summed over per-vertex out-degrees.
//
// Complexity: O(V).
func (g *VertexListGraph) EdgeCount() int {
	n := 0
	for _, v := range g.vertices {
		n += len(v.targets)
	}

	return n
}

// Edges synthesizes a snapshot of all edges from the adjacency maps,
// sorted by (source, target).
//
// Complexity: O(E log E).
func (g *VertexListGraph) Edges() []Edge {
	out := make([]Edge, 0, g.EdgeCount())
	for _, v := range g.vertices {
		for target, w := range v.targets {
			out = append(out, Edge{source: v.label, target: target, weight: w})
		}
	}
	sortEdges(out)

	return out
}

// Sources returns source label -> weight for every edge into target. There
// is no reverse index: every vertex's adjacency map is scanned for an entry
// keyed by target. An unknown target yields an empty map, not an error.
//
// Errors:
//   - ErrEmptyLabel: target is empty.
//
// Complexity: O(V).
func (g *VertexListGraph) Sources(target string) (map[string]int, error) {
	if target == "" {
		return nil, ErrEmptyLabel
	}

	out := make(map[string]int)
	for _, v := range g.vertices {
		if w := v.TargetWeight(target); w > 0 {
			out[v.label] = w
		}
	}

	return out, nil
}

// Targets returns target label -> weight for every edge out of source, as a
// copy of the source vertex's adjacency map. An unknown source yields an
// empty map, not an error.
//
// Errors:
//   - ErrEmptyLabel: source is empty.
//
// Complexity: O(V) scan plus O(d) copy.
func (g *VertexListGraph) Targets(source string) (map[string]int, error) {
	if source == "" {
		return nil, ErrEmptyLabel
	}

	src := g.findVertex(source)
	if src == nil {
		return map[string]int{}, nil
	}

	return src.Targets(), nil
}

// Clone returns a deep copy in the same representation: fresh Vertex objects
// with copied adjacency maps, sharing nothing with the original.
//
// Complexity: O(V + E).
func (g *VertexListGraph) Clone() Graph {
	clone := &VertexListGraph{vertices: make([]*Vertex, 0, len(g.vertices))}
	for _, v := range g.vertices {
		nv := &Vertex{label: v.label, targets: make(map[string]int, len(v.targets))}
		for target, w := range v.targets {
			nv.targets[target] = w
		}
		clone.vertices = append(clone.vertices, nv)
	}
	clone.checkRep()

	return clone
}

// String renders the graph in the shared format; see formatGraph.
func (g *VertexListGraph) String() string {
	return formatGraph(g.Vertices(), g.Edges())
}
