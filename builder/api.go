// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildAdjacency(bopts, cons...). Resolves cfg, runs cons in
//     order, places their blocks along the diagonal, then applies WithLink edges.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical matrices.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphmetrics/graph"
	"github.com/katalvlaran/graphmetrics/matrix"
)

// Constructor builds one block of the final matrix using the resolved config.
// Constructors MUST validate parameters early, return sentinel errors and keep
// emission order stable.
type Constructor func(cfg builderConfig) (*block, error)

// BuildAdjacency runs every constructor and returns the disjoint union of their
// blocks as row-oriented adjacency data. Block k's local node i becomes global
// node offset(k)+i, where offset(k) is the total size of blocks 0..k-1.
//
// Errors:
//   - ErrConstructFailed for nil constructors or WithLink endpoints outside the union.
//   - Constructor errors wrapped as "BuildAdjacency: %w".
//
// Complexity: O(N²) for N total nodes plus each constructor's own cost.
func BuildAdjacency(bopts []BuilderOption, cons ...Constructor) ([][]int64, error) {
	cfg := newBuilderConfig(bopts...)

	blocks := make([]*block, 0, len(cons))
	total := 0
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildAdjacency: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		b, err := fn(cfg)
		if err != nil {
			return nil, fmt.Errorf("BuildAdjacency: %w", err)
		}
		blocks = append(blocks, b)
		total += b.size()
	}

	union, err := matrix.NewDense(total, total)
	if err != nil {
		return nil, fmt.Errorf("BuildAdjacency: %w", err)
	}
	offset := 0
	for _, b := range blocks {
		n := b.size()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				v, _ := b.m.At(i, j)
				_ = union.Set(offset+i, offset+j, v)
			}
		}
		offset += n
	}

	for _, l := range cfg.links {
		if l.u >= total || l.v >= total {
			return nil, fmt.Errorf("BuildAdjacency: link %d-%d outside %d nodes: %w",
				l.u, l.v, total, ErrConstructFailed)
		}
		w, werr := cfg.nextWeight()
		if werr != nil {
			return nil, fmt.Errorf("BuildAdjacency: link %d-%d: %w", l.u, l.v, werr)
		}
		_ = union.Set(l.u, l.v, w)
		_ = union.Set(l.v, l.u, w)
	}

	return union.RowsCopy(), nil
}

// BuildGraph is BuildAdjacency followed by graph.New.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*graph.Graph, error) {
	adj, err := BuildAdjacency(bopts, cons...)
	if err != nil {
		return nil, err
	}
	g, err := graph.New(adj)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}
