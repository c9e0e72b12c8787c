// File: format.go
// Role: Shared human-readable rendering of a graph state.
//
// Determinism:
//   - Built exclusively from sorted snapshots, so two representations in the
//     same abstract state render byte-identical output.

package digraph

import (
	"fmt"
	"strings"
)

// formatGraph renders the canonical listing:
//
//	Vertices: [A B C]
//	Edges:
//	  A -> B (3)
//	  C -> A (1)
//
// vertices must be sorted lexicographically and edges by (source, target);
// both representations feed it their sorted snapshots.
//
// Complexity: O(V + E) given pre-sorted inputs.
func formatGraph(vertices []string, edges []Edge) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Vertices: %v\n", vertices))
	sb.WriteString("Edges:\n")
	for _, e := range edges {
		sb.WriteString("  ")
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}

	return sb.String()
}
