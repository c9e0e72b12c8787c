// Package digraph_test provides benchmarks comparing the two Graph
// representations on their hot paths. The edge-list representation pays a
// linear edge scan per Set; the vertex-list representation pays a linear
// vertex scan per Set and per Sources query.
package digraph_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/digraph"
)

// benchGraphSize is the fixed fan-out used by query benchmarks.
const benchGraphSize = 100

// fillStar connects "Root" to n distinct targets and back.
func fillStar(g digraph.Graph, n int) {
	for i := 0; i < n; i++ {
		label := fmt.Sprintf("N%d", i)
		_, _ = g.Set("Root", label, i+1)
		_, _ = g.Set(label, "Root", i+1)
	}
}

func benchmarkSet(b *testing.B, newGraph func() digraph.Graph) {
	g := newGraph()
	fillStar(g, benchGraphSize)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Overwrite inside a populated graph: exercises the lookup scan.
		_, _ = g.Set("Root", fmt.Sprintf("N%d", i%benchGraphSize), i+1)
	}
}

func BenchmarkSet_EdgeList(b *testing.B) {
	benchmarkSet(b, func() digraph.Graph { return digraph.NewEdgeListGraph() })
}

func BenchmarkSet_VertexList(b *testing.B) {
	benchmarkSet(b, func() digraph.Graph { return digraph.NewVertexListGraph() })
}

func benchmarkSources(b *testing.B, newGraph func() digraph.Graph) {
	g := newGraph()
	fillStar(g, benchGraphSize)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Sources("Root")
	}
}

func BenchmarkSources_EdgeList(b *testing.B) {
	benchmarkSources(b, func() digraph.Graph { return digraph.NewEdgeListGraph() })
}

func BenchmarkSources_VertexList(b *testing.B) {
	benchmarkSources(b, func() digraph.Graph { return digraph.NewVertexListGraph() })
}

func benchmarkVertices(b *testing.B, newGraph func() digraph.Graph) {
	g := newGraph()
	fillStar(g, benchGraphSize)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Vertices()
	}
}

func BenchmarkVertices_EdgeList(b *testing.B) {
	benchmarkVertices(b, func() digraph.Graph { return digraph.NewEdgeListGraph() })
}

func BenchmarkVertices_VertexList(b *testing.B) {
	benchmarkVertices(b, func() digraph.Graph { return digraph.NewVertexListGraph() })
}
