// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphmetrics/matrix"
)

// ---------- FloydWarshall ----------

func TestFloydWarshall_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.FloydWarshall(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	ns, _ := matrix.NewDense(3, 4)
	_, err = matrix.FloydWarshall(ns)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestFloydWarshall_Path3(t *testing.T) {
	t.Parallel()

	adj := MustSquare(t, [][]int64{{0, 1, 0}, {1, 0, 1}, {0, 1, 0}})
	d, err := matrix.FloydWarshall(adj)
	require.NoError(t, err)

	assert.Equal(t, 3, d.Size())
	assert.Equal(t, lengths([][]int64{{0, 1, 2}, {1, 0, 1}, {2, 1, 0}}), d.RowsCopy())
}

// The weighted detour 0-2-1 (1+1) beats the direct edge 0-1 (5).
func TestFloydWarshall_PrefersCheaperDetour(t *testing.T) {
	t.Parallel()

	adj := MustSquare(t, [][]int64{
		{0, 5, 1},
		{5, 0, 1},
		{1, 1, 0},
	})
	d, err := matrix.FloydWarshall(adj)
	require.NoError(t, err)

	got, err := d.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, matrix.Finite(2), got)
}

func TestFloydWarshall_Disconnected(t *testing.T) {
	t.Parallel()

	adj := MustSquare(t, [][]int64{
		{0, 3, 0, 0},
		{3, 0, 0, 0},
		{0, 0, 0, 2},
		{0, 0, 2, 0},
	})
	d, err := matrix.FloydWarshall(adj)
	require.NoError(t, err)

	assert.Equal(t, lengths([][]int64{
		{0, 3, -1, -1},
		{3, 0, -1, -1},
		{-1, -1, 0, 2},
		{-1, -1, 2, 0},
	}), d.RowsCopy())

	_, err = d.At(4, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// Self-loop weights never replace the zero diagonal.
func TestFloydWarshall_SelfLoopIgnored(t *testing.T) {
	t.Parallel()

	adj := MustSquare(t, [][]int64{{7, 1}, {1, 0}})
	d, err := matrix.FloydWarshall(adj)
	require.NoError(t, err)

	got, _ := d.At(0, 0)
	assert.Equal(t, matrix.Finite(0), got)
}

// Sums beyond int64 must not wrap into negative "shortcuts".
func TestFloydWarshall_OverflowSaturates(t *testing.T) {
	t.Parallel()

	big := int64(math.MaxInt64 - 1)
	adj := MustSquare(t, [][]int64{
		{0, big, 0},
		{big, 0, big},
		{0, big, 0},
	})
	d, err := matrix.FloydWarshall(adj)
	require.NoError(t, err)

	got, _ := d.At(0, 2)
	assert.True(t, got.IsInf())
}

func TestFloydWarshall_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	adj := MustSquare(t, [][]int64{{0, 1, 0}, {1, 0, 1}, {0, 1, 0}})
	before := adj.Clone()
	_, err := matrix.FloydWarshall(adj)
	require.NoError(t, err)
	assert.True(t, before.Equal(adj))
}
