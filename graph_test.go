// Package digraph_test verifies both Graph representations through the
// representation-agnostic conformance suite, then diffs them against each
// other. Representation-specific behavior lives in edgelist_test.go and
// vertexlist_test.go.

package digraph_test

import (
	"testing"

	"github.com/katalvlaran/digraph"
	"github.com/katalvlaran/digraph/graphtest"
)

func newEdgeList() digraph.Graph { return digraph.NewEdgeListGraph() }

func newVertexList() digraph.Graph { return digraph.NewVertexListGraph() }

// TestGraphConformance runs the shared contract suite against each
// representation independently.
func TestGraphConformance(t *testing.T) {
	graphtest.Run(t, "EdgeListGraph", newEdgeList)
	graphtest.Run(t, "VertexListGraph", newVertexList)
}

// TestGraphDifferential drives both representations through identical
// operation sequences; any observable divergence fails.
func TestGraphDifferential(t *testing.T) {
	graphtest.RunDifferential(t, newEdgeList, newVertexList)
}

// TestDefaultConstructor pins New() to a working representation without
// asserting which one it is.
func TestDefaultConstructor(t *testing.T) {
	graphtest.Run(t, "Default", digraph.New)
}
