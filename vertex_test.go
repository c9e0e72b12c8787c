package digraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/digraph"
)

// TestNewVertex pins constructor validation and the empty initial state.
func TestNewVertex(t *testing.T) {
	t.Parallel()

	_, err := digraph.NewVertex("")
	require.ErrorIs(t, err, digraph.ErrEmptyLabel)

	v, err := digraph.NewVertex("A")
	require.NoError(t, err)
	require.Equal(t, "A", v.Label())
	require.Zero(t, v.OutDegree())
	require.Empty(t, v.Targets())
}

// TestVertex_SetTarget covers insert, overwrite-with-prior, and validation.
func TestVertex_SetTarget(t *testing.T) {
	t.Parallel()

	v, err := digraph.NewVertex("A")
	require.NoError(t, err)

	prev, err := v.SetTarget("B", 3)
	require.NoError(t, err)
	require.Zero(t, prev)
	require.Equal(t, 3, v.TargetWeight("B"))

	prev, err = v.SetTarget("B", 7)
	require.NoError(t, err)
	require.Equal(t, 3, prev)
	require.Equal(t, 1, v.OutDegree(), "overwrite never duplicates")

	_, err = v.SetTarget("", 1)
	require.ErrorIs(t, err, digraph.ErrEmptyLabel)
	_, err = v.SetTarget("B", 0)
	require.ErrorIs(t, err, digraph.ErrBadWeight)
	_, err = v.SetTarget("B", -1)
	require.ErrorIs(t, err, digraph.ErrBadWeight)
	require.Equal(t, 7, v.TargetWeight("B"), "rejected calls leave the map untouched")
}

// TestVertex_RemoveTarget covers removal with prior weight and the
// absent-target no-op.
func TestVertex_RemoveTarget(t *testing.T) {
	t.Parallel()

	v, err := digraph.NewVertex("A")
	require.NoError(t, err)

	_, err = v.SetTarget("B", 5)
	require.NoError(t, err)

	require.Equal(t, 5, v.RemoveTarget("B"))
	require.Zero(t, v.TargetWeight("B"))
	require.Zero(t, v.RemoveTarget("B"), "second removal reports no prior weight")
	require.Zero(t, v.RemoveTarget("Z"))
}

// TestVertex_TargetsIsACopy guards against rep exposure through the
// adjacency accessor.
func TestVertex_TargetsIsACopy(t *testing.T) {
	t.Parallel()

	v, err := digraph.NewVertex("A")
	require.NoError(t, err)
	_, err = v.SetTarget("B", 2)
	require.NoError(t, err)

	snap := v.Targets()
	snap["B"] = 99
	snap["C"] = 1

	require.Equal(t, 2, v.TargetWeight("B"))
	require.Zero(t, v.TargetWeight("C"))
	require.Equal(t, map[string]int{"B": 2}, v.Targets())
}
