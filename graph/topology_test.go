// SPDX-License-Identifier: MIT

package graph_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphmetrics/builder"
	"github.com/katalvlaran/graphmetrics/graph"
	"github.com/katalvlaran/graphmetrics/matrix"
)

// twoComponents: path 0-1 (w=2) plus triangle 2-3-4 plus isolated 5.
func twoComponents() [][]int64 {
	return [][]int64{
		{0, 2, 0, 0, 0, 0},
		{2, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 1, 0},
		{0, 0, 1, 0, 1, 0},
		{0, 0, 1, 1, 0, 0},
		{0, 0, 0, 0, 0, 0},
	}
}

func TestDegree(t *testing.T) {
	t.Parallel()

	g := mustGraph(t, twoComponents())
	assert.Equal(t, []int{1, 1, 2, 2, 2, 0}, g.Degrees())

	_, err := g.Degree(6)
	assert.ErrorIs(t, err, graph.ErrInvalidNode)
	_, err = g.Degree(-1)
	assert.ErrorIs(t, err, graph.ErrInvalidNode)
}

func TestReachableNodes(t *testing.T) {
	t.Parallel()

	g := mustGraph(t, twoComponents())

	got, err := g.ReachableNodes(3)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, got)

	got, err = g.ReachableNodes(5)
	require.NoError(t, err)
	assert.Equal(t, []int{5}, got, "a node always reaches itself")

	_, err = g.ReachableNodes(6)
	assert.ErrorIs(t, err, graph.ErrInvalidNode)
}

func TestConnectedComponents(t *testing.T) {
	t.Parallel()

	g := mustGraph(t, twoComponents())
	assert.Equal(t, [][]int{{0, 1}, {2, 3, 4}, {5}}, g.Components())
	assert.Equal(t, 3, g.ComponentCount())

	// Early termination stops the lazy sequence.
	var first [][]int
	for comp := range g.ConnectedComponents() {
		first = append(first, comp)
		break
	}
	assert.Equal(t, [][]int{{0, 1}}, first)

	// Each iteration recomputes from scratch.
	assert.Equal(t, g.Components(), g.Components())
}

// Components emitted in order of their smallest node, even when interleaved.
func TestConnectedComponents_Interleaved(t *testing.T) {
	t.Parallel()

	g := mustGraph(t, [][]int64{
		{0, 0, 1, 0},
		{0, 0, 0, 1},
		{1, 0, 0, 0},
		{0, 1, 0, 0},
	})
	assert.Equal(t, [][]int{{0, 2}, {1, 3}}, g.Components())
}

// Every node appears in exactly one component.
func TestConnectedComponents_Partition(t *testing.T) {
	t.Parallel()

	for seed := int64(0); seed < 20; seed++ {
		g, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(seed)},
			builder.RandomSparse(int(seed)+5, 0.1),
		)
		require.NoError(t, err)

		var seen []int
		for comp := range g.ConnectedComponents() {
			require.NotEmpty(t, comp)
			require.True(t, slices.IsSorted(comp))
			seen = append(seen, comp...)
		}
		slices.Sort(seen)
		want := make([]int, g.NodeCount())
		for i := range want {
			want[i] = i
		}
		assert.Equal(t, want, seen, "seed %d", seed)
	}
}

func TestEdgeless(t *testing.T) {
	t.Parallel()

	const n = 5
	g, err := builder.BuildGraph(nil, builder.Empty(n))
	require.NoError(t, err)

	assert.Equal(t, n, g.ComponentCount())
	for comp := range g.ConnectedComponents() {
		assert.Len(t, comp, 1)
	}
	assert.False(t, g.IsConnected())
	assert.True(t, g.Diameter().IsInf())
	assert.True(t, g.Radius().IsInf())
	assert.Empty(t, g.Center())
}

func TestIsConnected(t *testing.T) {
	t.Parallel()

	assert.True(t, mustGraph(t, path3()).IsConnected())
	assert.True(t, mustGraph(t, [][]int64{{0}}).IsConnected())
	assert.False(t, mustGraph(t, twoComponents()).IsConnected())
}

// Disconnected graphs report Inf for every node, not per-component values.
func TestEccentricity_WholeGraphPolicy(t *testing.T) {
	t.Parallel()

	g := mustGraph(t, twoComponents())
	for i := 0; i < g.NodeCount(); i++ {
		ecc, err := g.Eccentricity(i)
		require.NoError(t, err)
		assert.True(t, ecc.IsInf(), "node %d", i)
	}
	for _, ecc := range g.Eccentricities() {
		assert.True(t, ecc.IsInf())
	}
	assert.True(t, g.Diameter().IsInf())
	assert.True(t, g.Radius().IsInf())
	assert.Empty(t, g.Center())

	_, err := g.Eccentricity(9)
	assert.ErrorIs(t, err, graph.ErrInvalidNode)
}

func TestEccentricity_Weighted(t *testing.T) {
	t.Parallel()

	// Star with center 0 and weighted spokes 1, 2, 3.
	g := mustGraph(t, [][]int64{
		{0, 1, 2, 3},
		{1, 0, 0, 0},
		{2, 0, 0, 0},
		{3, 0, 0, 0},
	})
	want := []matrix.Length{matrix.Finite(3), matrix.Finite(4), matrix.Finite(5), matrix.Finite(5)}
	assert.Equal(t, want, g.Eccentricities())
	for i, w := range want {
		ecc, err := g.Eccentricity(i)
		require.NoError(t, err)
		assert.Equal(t, w, ecc)
	}
	assert.Equal(t, matrix.Finite(5), g.Diameter())
	assert.Equal(t, matrix.Finite(3), g.Radius())
	assert.Equal(t, []int{0}, g.Center())
}

func TestCenter_Cycle(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, builder.Cycle(6))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, g.Center())
	assert.Equal(t, matrix.Finite(3), g.Diameter())
	assert.Equal(t, matrix.Finite(3), g.Radius())
}

func TestSingleNode(t *testing.T) {
	t.Parallel()

	g := mustGraph(t, [][]int64{{0}})
	assert.Equal(t, matrix.Finite(0), g.Diameter())
	assert.Equal(t, matrix.Finite(0), g.Radius())
	assert.Equal(t, []int{0}, g.Center())
	assert.Equal(t, [][]int{{0}}, g.Components())
}

// The distance matrix is symmetric with a zero diagonal and satisfies the
// triangle inequality over finite entries.
func TestDistanceMatrix_Invariants(t *testing.T) {
	t.Parallel()

	for seed := int64(0); seed < 10; seed++ {
		g, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(1, 20)},
			builder.RandomSparse(15, 0.2),
		)
		require.NoError(t, err)

		d := g.DistanceMatrix()
		n := g.NodeCount()
		for i := 0; i < n; i++ {
			assert.Equal(t, matrix.Finite(0), d[i][i])
			for j := 0; j < n; j++ {
				assert.Equal(t, d[i][j], d[j][i], "seed %d (%d,%d)", seed, i, j)
				for k := 0; k < n; k++ {
					via := d[i][k].Add(d[k][j])
					assert.False(t, via.Less(d[i][j]), "triangle i=%d k=%d j=%d", i, k, j)
				}
			}
		}
	}
}
