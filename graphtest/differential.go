// File: differential.go
// Role: Differential harness — two implementations, one operation stream,
//       observably identical state after every step.

package graphtest

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/digraph"
)

// op kinds for scripted and generated sequences.
const (
	opAdd    = "add"
	opSet    = "set"
	opRemove = "remove"
)

// step is one mutation applied to both implementations under comparison.
type step struct {
	op     string
	source string // vertex label for add/remove
	target string
	weight int
}

// differentialSeed fixes the generated-sequence RNG so failures reproduce.
const differentialSeed = 1

// differentialSteps is the length of the generated random walk.
const differentialSteps = 300

// labelUniverse bounds the labels used by generated sequences; small on
// purpose so collisions (overwrites, re-adds, cascaded removals) are common.
var labelUniverse = []string{"A", "B", "C", "D", "E"}

// RunDifferential drives the implementations produced by newA and newB
// through identical operation sequences and requires every observation —
// operation results, vertex set, edge snapshot, incidence maps, rendering —
// to match after each step.
func RunDifferential(t *testing.T, newA, newB Factory) {
	t.Helper()

	scripted := map[string][]step{
		"BuildOverwriteTombstone": {
			{op: opSet, source: "A", target: "B", weight: 3},
			{op: opSet, source: "A", target: "B", weight: 7},
			{op: opSet, source: "B", target: "A", weight: 2},
			{op: opSet, source: "A", target: "B", weight: 0},
			{op: opSet, source: "A", target: "A", weight: 5},
			{op: opRemove, source: "A"},
		},
		"CascadingRemovals": {
			{op: opAdd, source: "A"},
			{op: opAdd, source: "B"},
			{op: opSet, source: "A", target: "C", weight: 1},
			{op: opSet, source: "C", target: "B", weight: 2},
			{op: opSet, source: "B", target: "A", weight: 3},
			{op: opRemove, source: "C"},
			{op: opRemove, source: "C"},
			{op: opSet, source: "C", target: "A", weight: 0},
			{op: opRemove, source: "A"},
		},
		"IdempotentNoise": {
			{op: opAdd, source: "A"},
			{op: opAdd, source: "A"},
			{op: opSet, source: "A", target: "B", weight: 0},
			{op: opSet, source: "X", target: "Y", weight: 0},
			{op: opRemove, source: "Z"},
			{op: opSet, source: "A", target: "A", weight: 1},
			{op: opSet, source: "A", target: "A", weight: 0},
		},
	}

	for name, steps := range scripted {
		steps := steps
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			runSteps(t, newA(), newB(), steps)
		})
	}

	t.Run("GeneratedWalk", func(t *testing.T) {
		t.Parallel()
		runSteps(t, newA(), newB(), generateSteps(differentialSeed, differentialSteps))
	})
}

// runSteps applies each step to both graphs and diffs results and state.
func runSteps(t *testing.T, a, b digraph.Graph, steps []step) {
	t.Helper()

	for i, s := range steps {
		tag := fmt.Sprintf("step %d: %+v", i, s)

		switch s.op {
		case opAdd:
			ra, errA := a.Add(s.source)
			rb, errB := b.Add(s.source)
			require.Equal(t, errA, errB, tag)
			require.Equal(t, ra, rb, tag)
		case opSet:
			ra, errA := a.Set(s.source, s.target, s.weight)
			rb, errB := b.Set(s.source, s.target, s.weight)
			require.Equal(t, errA, errB, tag)
			require.Equal(t, ra, rb, tag)
		case opRemove:
			ra, errA := a.Remove(s.source)
			rb, errB := b.Remove(s.source)
			require.Equal(t, errA, errB, tag)
			require.Equal(t, ra, rb, tag)
		default:
			t.Fatalf("unknown op in %s", tag)
		}

		requireSameState(t, a, b, tag)
	}
}

// requireSameState diffs every observable surface of the two graphs.
func requireSameState(t *testing.T, a, b digraph.Graph, tag string) {
	t.Helper()

	require.Equal(t, a.Vertices(), b.Vertices(), tag)
	require.Equal(t, a.VertexCount(), b.VertexCount(), tag)
	require.Equal(t, a.EdgeCount(), b.EdgeCount(), tag)
	require.Equal(t, a.Edges(), b.Edges(), tag)
	require.Equal(t, a.String(), b.String(), tag)

	for _, label := range labelUniverse {
		sa, errA := a.Sources(label)
		sb, errB := b.Sources(label)
		require.NoError(t, errA, tag)
		require.NoError(t, errB, tag)
		require.Equal(t, sa, sb, "%s: Sources(%s)", tag, label)

		ta, errA := a.Targets(label)
		tb, errB := b.Targets(label)
		require.NoError(t, errA, tag)
		require.NoError(t, errB, tag)
		require.Equal(t, ta, tb, "%s: Targets(%s)", tag, label)
	}
}

// generateSteps builds a deterministic pseudo-random mutation walk over the
// label universe. Weights stay small and include 0 so tombstones are hit.
func generateSteps(seed int64, n int) []step {
	rng := rand.New(rand.NewSource(seed))
	steps := make([]step, 0, n)
	pick := func() string { return labelUniverse[rng.Intn(len(labelUniverse))] }

	for i := 0; i < n; i++ {
		switch rng.Intn(10) {
		case 0, 1:
			steps = append(steps, step{op: opAdd, source: pick()})
		case 2:
			steps = append(steps, step{op: opRemove, source: pick()})
		default:
			// Bias toward Set: it exercises auto-create, overwrite and removal.
			steps = append(steps, step{op: opSet, source: pick(), target: pick(), weight: rng.Intn(5)})
		}
	}

	return steps
}
