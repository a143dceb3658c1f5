// SPDX-License-Identifier: MIT
// Package: builder
//
// helpers.go - the block a constructor fills before it joins the union.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphmetrics/matrix"
)

// block is a square adjacency region owned by a single constructor.
// Node indices are local to the block (0..n-1).
type block struct {
	m *matrix.Dense
}

// newBlock allocates an n×n zero block.
func newBlock(method string, n int) (*block, error) {
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return &block{m: m}, nil
}

// size returns the block's node count.
func (b *block) size() int { return b.m.Rows() }

// connect draws a weight from cfg and sets both symmetric cells of {u, v}.
func (b *block) connect(method string, cfg builderConfig, u, v int) error {
	w, err := cfg.nextWeight()
	if err != nil {
		return fmt.Errorf("%s: edge %d-%d: %w", method, u, v, err)
	}
	if err = b.m.Set(u, v, w); err != nil {
		return fmt.Errorf("%s: edge %d-%d: %w", method, u, v, err)
	}
	if err = b.m.Set(v, u, w); err != nil {
		return fmt.Errorf("%s: edge %d-%d: %w", method, u, v, err)
	}

	return nil
}
