// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphmetrics/matrix"
)

// MustSquare builds an n×n *Dense from rows or fails the test.
func MustSquare(t *testing.T, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewSquareFromRows(rows)
	require.NoError(t, err)

	return m
}

// lengths converts a table of ints (-1 = Inf) into Length rows.
func lengths(rows [][]int64) [][]matrix.Length {
	out := make([][]matrix.Length, len(rows))
	for i, row := range rows {
		out[i] = make([]matrix.Length, len(row))
		for j, v := range row {
			if v < 0 {
				out[i][j] = matrix.Inf
				continue
			}
			out[i][j] = matrix.Finite(v)
		}
	}

	return out
}
