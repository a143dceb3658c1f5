// SPDX-License-Identifier: MIT
// Package: separators
//
// articulation.go - articulation points by node removal + component recount.

package separators

import (
	"context"
	"fmt"
	"iter"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/graphmetrics/graph"
)

// Operation tags for error wrapping.
const (
	opArticulationPar = "ArticulationPointsParallel"
	opBridgesPar      = "BridgesParallel"
)

// isArticulation reports whether removing node raises the component count
// above baseline.
func isArticulation(g *graph.Graph, baseline, node int) (bool, error) {
	child, err := g.RemoveNode(node)
	if err != nil {
		return false, err
	}

	return child.ComponentCount() > baseline, nil
}

// ArticulationPoints yields, in ascending order, every node whose removal
// increases the number of connected components. The baseline count is computed
// once per iteration of the sequence. A nil graph yields nothing.
func ArticulationPoints(g *graph.Graph) iter.Seq[int] {
	return func(yield func(int) bool) {
		if g == nil {
			return
		}
		baseline := g.ComponentCount()
		for node := 0; node < g.NodeCount(); node++ {
			// node is always in range, so RemoveNode cannot fail here.
			found, err := isArticulation(g, baseline, node)
			if err != nil {
				return
			}
			if found && !yield(node) {
				return
			}
		}
	}
}

// ArticulationPointsParallel returns the same nodes as ArticulationPoints,
// ascending, computing one node per errgroup unit.
//
// Errors: ErrGraphNil, ErrOptionViolation, ctx.Err(), or the first unit failure.
func ArticulationPointsParallel(ctx context.Context, g *graph.Graph, opts ...Option) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	baseline := g.ComponentCount()
	n := g.NodeCount()
	slots := make([]int, n)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Workers)
	for node := 0; node < n; node++ {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(articulationUnit(egCtx, g, baseline, node, slots))
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	var out []int
	for _, v := range slots {
		if v == notFound {
			continue
		}
		out = append(out, v)
		o.OnFoundNode(v)
	}

	return out, nil
}

// articulationUnit binds node for one unit of work. The unit writes only
// slots[node].
func articulationUnit(ctx context.Context, g *graph.Graph, baseline, node int, slots []int) func() error {
	return func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		found, err := isArticulation(g, baseline, node)
		if err != nil {
			return fmt.Errorf("%s: node %d: %w", opArticulationPar, node, err)
		}
		slots[node] = notFound
		if found {
			slots[node] = node
		}

		return nil
	}
}
