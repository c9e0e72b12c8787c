package digraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/digraph"
)

// TestNewEdge_Validation pins the Edge constructor invariant: non-empty
// endpoints, strictly positive weight.
func TestNewEdge_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		source  string
		target  string
		weight  int
		wantErr error
	}{
		{name: "Valid", source: "A", target: "B", weight: 3},
		{name: "SelfLoop", source: "A", target: "A", weight: 1},
		{name: "EmptySource", source: "", target: "B", weight: 3, wantErr: digraph.ErrEmptyLabel},
		{name: "EmptyTarget", source: "A", target: "", weight: 3, wantErr: digraph.ErrEmptyLabel},
		{name: "ZeroWeight", source: "A", target: "B", weight: 0, wantErr: digraph.ErrBadWeight},
		{name: "NegativeWeight", source: "A", target: "B", weight: -2, wantErr: digraph.ErrBadWeight},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			e, err := digraph.NewEdge(tc.source, tc.target, tc.weight)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.source, e.Source())
			require.Equal(t, tc.target, e.Target())
			require.Equal(t, tc.weight, e.Weight())
		})
	}
}

// TestEdge_String pins the rendering the graph listing is built from.
func TestEdge_String(t *testing.T) {
	t.Parallel()

	e, err := digraph.NewEdge("A", "B", 3)
	require.NoError(t, err)
	require.Equal(t, "A -> B (3)", e.String())

	loop, err := digraph.NewEdge("X", "X", 12)
	require.NoError(t, err)
	require.Equal(t, "X -> X (12)", loop.String())
}
