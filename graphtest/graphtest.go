// File: graphtest.go
// Role: Conformance suite over the digraph.Graph contract.
//
// Policy:
//   - Every assertion goes through the public interface; no concrete type,
//     no internal state.
//   - Each subtest builds its own graph from the factory, so subtests are
//     independent and safe to parallelize.

package graphtest

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/digraph"
)

// Factory produces a fresh, empty Graph of the implementation under test.
type Factory func() digraph.Graph

// Run executes the full conformance suite against the implementation
// produced by newGraph, under a subtest named name.
func Run(t *testing.T, name string, newGraph Factory) {
	t.Helper()

	t.Run(name, func(t *testing.T) {
		t.Run("EmptyGraph", func(t *testing.T) {
			t.Parallel()
			g := newGraph()

			require.Empty(t, g.Vertices(), "a new graph has no vertices")
			require.Zero(t, g.VertexCount())
			require.Zero(t, g.EdgeCount())
			require.Empty(t, g.Edges())

			srcs, err := g.Sources("X")
			require.NoError(t, err, "unknown target is not an error")
			require.Empty(t, srcs)

			tgts, err := g.Targets("X")
			require.NoError(t, err, "unknown source is not an error")
			require.Empty(t, tgts)
		})

		t.Run("AddVertex", func(t *testing.T) {
			t.Parallel()
			g := newGraph()

			added, err := g.Add("A")
			require.NoError(t, err)
			require.True(t, added, "first Add of a label inserts")
			require.True(t, g.HasVertex("A"))
			require.Equal(t, []string{"A"}, g.Vertices())

			added, err = g.Add("A")
			require.NoError(t, err)
			require.False(t, added, "duplicate Add is a no-op")
			require.Equal(t, 1, g.VertexCount())

			_, err = g.Add("")
			require.ErrorIs(t, err, digraph.ErrEmptyLabel)
			require.Equal(t, 1, g.VertexCount(), "rejected call leaves state untouched")
		})

		t.Run("VerticesSorted", func(t *testing.T) {
			t.Parallel()
			g := newGraph()
			for _, label := range []string{"C", "A", "B"} {
				_, err := g.Add(label)
				require.NoError(t, err)
			}

			require.Equal(t, []string{"A", "B", "C"}, g.Vertices())
		})

		t.Run("SetInsertUpdateRemove", func(t *testing.T) {
			t.Parallel()
			g := newGraph()

			// Insert with auto-created endpoints.
			prev, err := g.Set("A", "B", 3)
			require.NoError(t, err)
			require.Zero(t, prev, "no prior edge")
			require.True(t, g.HasVertex("A"), "source auto-created")
			require.True(t, g.HasVertex("B"), "target auto-created")

			tgts, err := g.Targets("A")
			require.NoError(t, err)
			require.Equal(t, map[string]int{"B": 3}, tgts)

			srcs, err := g.Sources("B")
			require.NoError(t, err)
			require.Equal(t, map[string]int{"A": 3}, srcs)

			// Overwrite: same pair, new weight, prior weight returned.
			prev, err = g.Set("A", "B", 7)
			require.NoError(t, err)
			require.Equal(t, 3, prev)
			require.Equal(t, 1, g.EdgeCount(), "overwrite never duplicates")

			tgts, err = g.Targets("A")
			require.NoError(t, err)
			require.Equal(t, map[string]int{"B": 7}, tgts)

			// Tombstone-by-zero: removes the edge, reports its last weight.
			prev, err = g.Set("A", "B", 0)
			require.NoError(t, err)
			require.Equal(t, 7, prev)
			require.Zero(t, g.EdgeCount())

			tgts, err = g.Targets("A")
			require.NoError(t, err)
			require.Empty(t, tgts)

			// Vertices survive edge removal.
			require.True(t, g.HasVertex("A"))
			require.True(t, g.HasVertex("B"))
		})

		t.Run("SetZeroNeverCreates", func(t *testing.T) {
			t.Parallel()
			g := newGraph()

			prev, err := g.Set("A", "B", 0)
			require.NoError(t, err)
			require.Zero(t, prev)
			require.False(t, g.HasVertex("A"), "zero weight creates no vertices")
			require.False(t, g.HasVertex("B"))

			// Zero on a pair whose source exists but edge does not.
			_, err = g.Add("A")
			require.NoError(t, err)
			prev, err = g.Set("A", "B", 0)
			require.NoError(t, err)
			require.Zero(t, prev)
			require.False(t, g.HasVertex("B"))
		})

		t.Run("SetValidation", func(t *testing.T) {
			t.Parallel()
			g := newGraph()

			_, err := g.Set("", "B", 1)
			require.ErrorIs(t, err, digraph.ErrEmptyLabel)
			_, err = g.Set("A", "", 1)
			require.ErrorIs(t, err, digraph.ErrEmptyLabel)
			_, err = g.Set("A", "B", -1)
			require.ErrorIs(t, err, digraph.ErrNegativeWeight)

			require.Zero(t, g.VertexCount(), "rejected calls leave state untouched")
			require.Zero(t, g.EdgeCount())
		})

		t.Run("SelfLoop", func(t *testing.T) {
			t.Parallel()
			g := newGraph()

			prev, err := g.Set("A", "A", 4)
			require.NoError(t, err)
			require.Zero(t, prev)
			require.Equal(t, []string{"A"}, g.Vertices())

			tgts, err := g.Targets("A")
			require.NoError(t, err)
			require.Equal(t, map[string]int{"A": 4}, tgts)

			srcs, err := g.Sources("A")
			require.NoError(t, err)
			require.Equal(t, map[string]int{"A": 4}, srcs)

			prev, err = g.Set("A", "A", 0)
			require.NoError(t, err)
			require.Equal(t, 4, prev)
			require.True(t, g.HasVertex("A"), "loop removal keeps the vertex")
		})

		t.Run("RemoveVertexCascades", func(t *testing.T) {
			t.Parallel()
			g := newGraph()

			mustSet(t, g, "A", "B", 1)
			mustSet(t, g, "B", "A", 2)
			mustSet(t, g, "B", "C", 3)
			mustSet(t, g, "C", "B", 4)
			mustSet(t, g, "A", "C", 5)

			removed, err := g.Remove("B")
			require.NoError(t, err)
			require.True(t, removed)
			require.Equal(t, []string{"A", "C"}, g.Vertices())

			// No surviving edge touches B in either direction.
			for _, label := range []string{"A", "C"} {
				tgts, terr := g.Targets(label)
				require.NoError(t, terr)
				require.NotContains(t, tgts, "B")
				srcs, serr := g.Sources(label)
				require.NoError(t, serr)
				require.NotContains(t, srcs, "B")
			}
			require.Equal(t, 1, g.EdgeCount(), "only A -> C survives")

			removed, err = g.Remove("B")
			require.NoError(t, err)
			require.False(t, removed, "removing an absent label is a no-op")

			_, err = g.Remove("")
			require.ErrorIs(t, err, digraph.ErrEmptyLabel)
		})

		t.Run("MultipleSourcesAndTargets", func(t *testing.T) {
			t.Parallel()
			g := newGraph()

			mustSet(t, g, "A", "X", 1)
			mustSet(t, g, "B", "X", 2)
			mustSet(t, g, "C", "X", 3)
			mustSet(t, g, "X", "A", 4)
			mustSet(t, g, "X", "B", 5)

			srcs, err := g.Sources("X")
			require.NoError(t, err)
			require.Equal(t, map[string]int{"A": 1, "B": 2, "C": 3}, srcs)

			tgts, err := g.Targets("X")
			require.NoError(t, err)
			require.Equal(t, map[string]int{"A": 4, "B": 5}, tgts)
		})

		t.Run("SnapshotIndependence", func(t *testing.T) {
			t.Parallel()
			g := newGraph()

			mustSet(t, g, "A", "B", 3)

			// Mutating a returned collection never affects the graph.
			tgts, err := g.Targets("A")
			require.NoError(t, err)
			tgts["B"] = 99
			tgts["Z"] = 1
			fresh, err := g.Targets("A")
			require.NoError(t, err)
			require.Equal(t, map[string]int{"B": 3}, fresh)

			labels := g.Vertices()
			labels[0] = "mutated"
			require.Equal(t, []string{"A", "B"}, g.Vertices())

			// Mutating the graph never shows through an earlier snapshot.
			before, err := g.Sources("B")
			require.NoError(t, err)
			mustSet(t, g, "A", "B", 8)
			require.Equal(t, map[string]int{"A": 3}, before)
		})

		t.Run("EdgesSnapshot", func(t *testing.T) {
			t.Parallel()
			g := newGraph()

			mustSet(t, g, "B", "C", 2)
			mustSet(t, g, "A", "B", 1)
			mustSet(t, g, "A", "A", 9)

			edges := g.Edges()
			require.Len(t, edges, 3)
			// Sorted by (source, target).
			require.Equal(t, "A -> A (9)", edges[0].String())
			require.Equal(t, "A -> B (1)", edges[1].String())
			require.Equal(t, "B -> C (2)", edges[2].String())
		})

		t.Run("Clone", func(t *testing.T) {
			t.Parallel()
			g := newGraph()

			mustSet(t, g, "A", "B", 3)
			mustSet(t, g, "B", "C", 4)

			clone := g.Clone()
			require.Equal(t, g.Vertices(), clone.Vertices())
			require.Equal(t, g.Edges(), clone.Edges())
			require.Equal(t, g.String(), clone.String())

			// Divergence after cloning proves no shared state.
			mustSet(t, g, "A", "B", 7)
			removed, err := clone.Remove("C")
			require.NoError(t, err)
			require.True(t, removed)

			tgts, err := clone.Targets("A")
			require.NoError(t, err)
			require.Equal(t, map[string]int{"B": 3}, tgts, "clone kept the pre-divergence weight")

			tgts, err = g.Targets("B")
			require.NoError(t, err)
			require.Equal(t, map[string]int{"C": 4}, tgts, "original kept the edge the clone removed")
		})

		t.Run("Rendering", func(t *testing.T) {
			t.Parallel()
			g := newGraph()

			require.Equal(t, "Vertices: []\nEdges:\n", g.String())

			mustSet(t, g, "C", "A", 1)
			mustSet(t, g, "A", "B", 3)

			want := "Vertices: [A B C]\n" +
				"Edges:\n" +
				"  A -> B (3)\n" +
				"  C -> A (1)\n"
			require.Equal(t, want, g.String())
		})

		t.Run("Scenario", func(t *testing.T) {
			t.Parallel()
			g := newGraph()

			prev, err := g.Set("A", "B", 3)
			require.NoError(t, err)
			require.Zero(t, prev)

			tgts, err := g.Targets("A")
			require.NoError(t, err)
			require.Equal(t, map[string]int{"B": 3}, tgts)

			prev, err = g.Set("A", "B", 7)
			require.NoError(t, err)
			require.Equal(t, 3, prev)

			tgts, err = g.Targets("A")
			require.NoError(t, err)
			require.Equal(t, map[string]int{"B": 7}, tgts)

			prev, err = g.Set("A", "B", 0)
			require.NoError(t, err)
			require.Equal(t, 7, prev)

			tgts, err = g.Targets("A")
			require.NoError(t, err)
			require.Empty(t, tgts)

			removed, err := g.Remove("A")
			require.NoError(t, err)
			require.True(t, removed)
			require.Equal(t, []string{"B"}, g.Vertices(), "auto-created B outlives A")
		})
	})
}

// mustSet is a fixture helper: Set that fails the test on error.
func mustSet(t *testing.T, g digraph.Graph, source, target string, weight int) {
	t.Helper()
	_, err := g.Set(source, target, weight)
	require.NoError(t, err, fmt.Sprintf("Set(%s, %s, %d)", source, target, weight))
}
