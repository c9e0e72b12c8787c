// File: types.go
// Role: The Graph contract shared by both representations, and the default
//       constructor.
//
// Determinism:
//   - Vertices() and Edges() return sorted snapshots; map-valued queries are
//     deterministic in content, not iteration order (Go map rule).
// Snapshot policy:
//   - Every query result is an independent copy. Callers never observe
//     future mutation of the live graph through a returned value, and
//     mutating a returned collection never affects the graph.

package digraph

import "fmt"

// Graph is a mutable directed graph with labeled vertices and strictly
// positively weighted edges. Two representations implement it: EdgeListGraph
// and VertexListGraph. Implementations must be behaviorally indistinguishable
// through this interface; graphtest.Run verifies the contract and
// graphtest.RunDifferential diffs two implementations step by step.
//
// Implementations are not safe for concurrent mutation; callers needing
// concurrent access must serialize externally.
type Graph interface {
	// Add inserts a vertex with the given label. It returns true if the
	// vertex was inserted, false (and no state change) if already present.
	// Errors: ErrEmptyLabel.
	Add(label string) (bool, error)

	// Set creates, overwrites, or removes the (source, target) edge and
	// returns the weight that existed before the call (0 if none).
	//
	// weight > 0 inserts or overwrites the edge, auto-creating missing
	// endpoint vertices. weight == 0 removes the edge if present; it never
	// creates vertices and never removes them. Self-loops are ordinary
	// edges. Errors: ErrEmptyLabel, ErrNegativeWeight.
	Set(source, target string, weight int) (int, error)

	// Remove deletes the vertex with the given label. It returns false
	// (and no state change) if absent; true if deleted, in which case
	// every edge with this label as source or target is deleted too.
	// Errors: ErrEmptyLabel.
	Remove(label string) (bool, error)

	// HasVertex reports whether the label names a vertex of the graph.
	// An empty label is never present.
	HasVertex(label string) bool

	// Vertices returns a snapshot of all vertex labels, sorted
	// lexicographically ascending.
	Vertices() []string

	// VertexCount returns the number of vertices.
	VertexCount() int

	// EdgeCount returns the number of edges.
	EdgeCount() int

	// Edges returns a snapshot of all edges as immutable values, sorted by
	// (source, target) ascending.
	Edges() []Edge

	// Sources returns a map from source label to weight covering every edge
	// whose target equals the argument; an empty map if none (an unknown
	// target is not an error). Errors: ErrEmptyLabel.
	Sources(target string) (map[string]int, error)

	// Targets returns a map from target label to weight covering every edge
	// whose source equals the argument; an empty map if none (an unknown
	// source is not an error). Errors: ErrEmptyLabel.
	Targets(source string) (map[string]int, error)

	// Clone returns a deep copy of the graph using the same representation.
	// The clone shares no mutable state with the original.
	Clone() Graph

	// String renders the graph in the shared human-readable format; see
	// package documentation. Identical abstract states render identically
	// across representations.
	fmt.Stringer
}

// New returns an empty Graph using the default (edge-list) representation.
//
// Complexity: O(1).
func New() Graph { return NewEdgeListGraph() }
