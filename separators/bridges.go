// SPDX-License-Identifier: MIT
// Package: separators
//
// bridges.go - bridges (edge separators) by edge removal + component recount.
//
// Scan order: node1 ascending, node2 = 0..node1 (lower triangle, each undirected
// edge visited once). A bridge is reported as (node2, node1).

package separators

import (
	"context"
	"fmt"
	"iter"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/graphmetrics/graph"
)

// isBridge reports whether removing {a, b} raises the component count above
// baseline.
func isBridge(g *graph.Graph, baseline, a, b int) (bool, error) {
	child, err := g.RemoveEdge(a, b)
	if err != nil {
		return false, err
	}

	return child.ComponentCount() > baseline, nil
}

// Bridges yields every edge whose removal increases the number of connected
// components, in lower-triangle scan order. A nil graph yields nothing.
func Bridges(g *graph.Graph) iter.Seq[graph.Edge] {
	return func(yield func(graph.Edge) bool) {
		if g == nil {
			return
		}
		baseline := g.ComponentCount()
		for node1 := 0; node1 < g.NodeCount(); node1++ {
			row, err := bridgesInRow(context.Background(), g, baseline, node1)
			if err != nil {
				return
			}
			for _, e := range row {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// bridgesInRow scans node2 = 0..node1 and returns the bridges found, in order.
func bridgesInRow(ctx context.Context, g *graph.Graph, baseline, node1 int) ([]graph.Edge, error) {
	var row []graph.Edge
	for node2 := 0; node2 <= node1; node2++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		w, err := g.Weight(node2, node1)
		if err != nil {
			return nil, err
		}
		if w <= 0 {
			continue
		}
		found, err := isBridge(g, baseline, node1, node2)
		if err != nil {
			return nil, err
		}
		if found {
			row = append(row, graph.Edge{U: node2, V: node1, Weight: w})
		}
	}

	return row, nil
}

// BridgesParallel returns the same edges as Bridges, in the same order,
// scanning one lower-triangle row per errgroup unit.
//
// Errors: ErrGraphNil, ErrOptionViolation, ctx.Err(), or the first unit failure.
func BridgesParallel(ctx context.Context, g *graph.Graph, opts ...Option) ([]graph.Edge, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	baseline := g.ComponentCount()
	n := g.NodeCount()
	rows := make([][]graph.Edge, n)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Workers)
	for node1 := 0; node1 < n; node1++ {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(bridgeRowUnit(egCtx, g, baseline, node1, rows))
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	var out []graph.Edge
	for _, row := range rows {
		for _, e := range row {
			out = append(out, e)
			o.OnFoundEdge(e)
		}
	}

	return out, nil
}

// bridgeRowUnit binds node1 for one unit of work. The unit writes only
// rows[node1].
func bridgeRowUnit(ctx context.Context, g *graph.Graph, baseline, node1 int, rows [][]graph.Edge) func() error {
	return func() error {
		row, err := bridgesInRow(ctx, g, baseline, node1)
		if err != nil {
			return fmt.Errorf("%s: row %d: %w", opBridgesPar, node1, err)
		}
		rows[node1] = row

		return nil
	}
}
