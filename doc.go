// Package digraph implements a mutable directed, weighted graph abstract
// data type with two interchangeable representations behind one interface.
//
// The abstract graph is a set of vertex labels plus a set of directed,
// strictly-positively-weighted edges such that every edge endpoint is a
// member of the vertex set. At most one edge exists per ordered
// (source, target) pair; setting a new weight replaces, never duplicates.
//
// Two concrete representations satisfy the Graph contract independently:
//
//	EdgeListGraph   — a vertex-label set plus a flat collection of immutable
//	                  Edge values (edge-centric).
//	VertexListGraph — a collection of Vertex objects, each owning its own
//	                  outgoing-adjacency map (vertex-centric).
//
// The two share no code and are behaviorally indistinguishable through the
// contract; the graphtest subpackage drives any implementation through the
// interface alone and can diff two representations step by step.
//
// Semantics in brief:
//
//   - Add(label) inserts a vertex; adding an existing label is a no-op
//     signalled by the returned bool.
//   - Set(source, target, w) with w > 0 inserts or overwrites the edge,
//     auto-creating missing endpoints, and returns the prior weight (0 if
//     the edge did not exist). With w == 0 it removes the edge if present
//     (tombstone-by-zero) and never creates vertices. Self-loops are
//     ordinary edges.
//   - Remove(label) deletes a vertex and cascades to every incident edge.
//   - Vertices, Sources, Targets and Edges return defensive snapshots;
//     no result ever aliases live internal state.
//
// Empty labels and negative weights are rejected up front with the package
// sentinel errors, leaving the graph untouched. Internal consistency is a
// different matter entirely: each representation re-validates its
// representation invariant after every mutation and panics on violation,
// because a broken invariant is a defect in this package, not a condition
// callers should handle.
//
// The package performs no I/O and contains no locks. Callers that mutate a
// graph from multiple goroutines must serialize access externally, e.g.
// with one mutex per graph instance.
package digraph
