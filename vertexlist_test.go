package digraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/digraph"
)

// Contract coverage for VertexListGraph lives in graph_test.go via graphtest;
// these tests pin vertex-list-specific behavior.

// TestVertexListGraph_CloneKeepsRepresentation verifies Clone stays in the
// vertex-list representation.
func TestVertexListGraph_CloneKeepsRepresentation(t *testing.T) {
	t.Parallel()

	g := digraph.NewVertexListGraph()
	_, err := g.Set("A", "B", 3)
	require.NoError(t, err)

	clone := g.Clone()
	require.IsType(t, &digraph.VertexListGraph{}, clone)
	require.Equal(t, g.String(), clone.String())
}

// TestVertexListGraph_ZeroWeightAbsentSource pins the representation's quiet
// path: Set(s, t, 0) with no source vertex changes nothing and returns 0.
func TestVertexListGraph_ZeroWeightAbsentSource(t *testing.T) {
	t.Parallel()

	g := digraph.NewVertexListGraph()
	prev, err := g.Set("nowhere", "B", 0)
	require.NoError(t, err)
	require.Zero(t, prev)
	require.Zero(t, g.VertexCount())
}

// TestVertexListGraph_TargetVertexCreatedBare verifies the auto-created
// target exists as a vertex even though it has no outgoing edges of its own.
func TestVertexListGraph_TargetVertexCreatedBare(t *testing.T) {
	t.Parallel()

	g := digraph.NewVertexListGraph()
	_, err := g.Set("A", "B", 2)
	require.NoError(t, err)

	require.True(t, g.HasVertex("B"))
	tgts, err := g.Targets("B")
	require.NoError(t, err)
	require.Empty(t, tgts)
}

// TestVertexListGraph_SourcesScansAllVertices verifies the incoming-edge
// query, which has no index in this representation.
func TestVertexListGraph_SourcesScansAllVertices(t *testing.T) {
	t.Parallel()

	g := digraph.NewVertexListGraph()
	for _, s := range []string{"A", "B", "C"} {
		_, err := g.Set(s, "hub", 1)
		require.NoError(t, err)
	}
	_, err := g.Set("hub", "A", 9)
	require.NoError(t, err)

	srcs, err := g.Sources("hub")
	require.NoError(t, err)
	require.Equal(t, map[string]int{"A": 1, "B": 1, "C": 1}, srcs)
}

// TestVertexListGraph_RemoveCleansIncomingAdjacency verifies removal walks
// every surviving vertex's adjacency map.
func TestVertexListGraph_RemoveCleansIncomingAdjacency(t *testing.T) {
	t.Parallel()

	g := digraph.NewVertexListGraph()
	_, err := g.Set("A", "X", 1)
	require.NoError(t, err)
	_, err = g.Set("B", "X", 2)
	require.NoError(t, err)
	_, err = g.Set("B", "A", 3)
	require.NoError(t, err)

	removed, err := g.Remove("X")
	require.NoError(t, err)
	require.True(t, removed)

	for _, label := range []string{"A", "B"} {
		tgts, terr := g.Targets(label)
		require.NoError(t, terr)
		require.NotContains(t, tgts, "X")
	}
	require.Equal(t, 1, g.EdgeCount(), "only B -> A survives")
}
