// SPDX-License-Identifier: MIT

package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphmetrics/graph"
	"github.com/katalvlaran/graphmetrics/matrix"
)

func TestRemoveNode(t *testing.T) {
	t.Parallel()

	g := mustGraph(t, path3())
	before, dist := g.Adjacency(), g.DistanceMatrix()

	child, err := g.RemoveNode(1)
	require.NoError(t, err)
	assert.Equal(t, 2, child.NodeCount())
	assert.Equal(t, [][]int64{{0, 0}, {0, 0}}, child.Adjacency())
	assert.Equal(t, lengths([][]int64{{0, inf}, {inf, 0}}), child.DistanceMatrix())
	assert.Equal(t, 2, child.ComponentCount())

	// Receiver untouched.
	assert.Equal(t, before, g.Adjacency())
	assert.Equal(t, dist, g.DistanceMatrix())

	// Renumbering keeps relative order: removing 0 makes old 1-2 the new 0-1.
	child, err = g.RemoveNode(0)
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{0, 1}, {1, 0}}, child.Adjacency())

	for _, bad := range []int{-1, 3} {
		_, err = g.RemoveNode(bad)
		assert.ErrorIs(t, err, graph.ErrInvalidNode)
	}
}

func TestRemoveNode_LastNode(t *testing.T) {
	t.Parallel()

	g := mustGraph(t, [][]int64{{0}})
	child, err := g.RemoveNode(0)
	require.NoError(t, err)
	assert.Equal(t, 0, child.NodeCount())
	assert.Equal(t, 0, child.ComponentCount())
}

func TestRemoveEdge(t *testing.T) {
	t.Parallel()

	g := mustGraph(t, path3())
	before, dist := g.Adjacency(), g.DistanceMatrix()

	child, err := g.RemoveEdge(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, child.NodeCount())
	assert.Equal(t, [][]int64{{0, 1, 0}, {1, 0, 0}, {0, 0, 0}}, child.Adjacency())
	d, _ := child.Distance(0, 2)
	assert.True(t, d.IsInf())

	assert.Equal(t, before, g.Adjacency())
	assert.Equal(t, dist, g.DistanceMatrix())

	// Absent edge: equal copy.
	same, err := g.RemoveEdge(0, 2)
	require.NoError(t, err)
	assert.True(t, same.Equal(g))
	assert.NotSame(t, g, same)

	for _, pair := range [][2]int{{-1, 0}, {0, 3}} {
		_, err = g.RemoveEdge(pair[0], pair[1])
		assert.ErrorIs(t, err, graph.ErrInvalidNode)
	}
}

// Calling a removal twice yields equal, independently-owned results.
func TestRemovals_Repeatable(t *testing.T) {
	t.Parallel()

	g := mustGraph(t, twoComponents())

	a, err := g.RemoveNode(3)
	require.NoError(t, err)
	b, err := g.RemoveNode(3)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
	assert.NotSame(t, a, b)
	assert.Equal(t, a.DistanceMatrix(), b.DistanceMatrix())

	x, err := g.RemoveEdge(2, 3)
	require.NoError(t, err)
	y, err := g.RemoveEdge(2, 3)
	require.NoError(t, err)
	assert.True(t, x.Equal(y))
	assert.NotSame(t, x, y)

	assert.Equal(t, twoComponents(), g.Adjacency())
}

// Removing a shortcut edge makes the child recompute longer distances.
func TestRemoveEdge_RecomputesDistances(t *testing.T) {
	t.Parallel()

	g := mustGraph(t, [][]int64{
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	})
	child, err := g.RemoveEdge(0, 2)
	require.NoError(t, err)

	d, _ := child.Distance(0, 2)
	assert.Equal(t, matrix.Finite(2), d)
	d, _ = g.Distance(0, 2)
	assert.Equal(t, matrix.Finite(1), d)
}
