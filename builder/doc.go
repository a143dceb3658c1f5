// Package builder produces deterministic adjacency-matrix fixtures for graph
// metrics: tests, examples, benchmarks and the CLI --generate mode.
//
// The package offers the following key components:
//
//   - Orchestrators:
//     – BuildAdjacency: runs constructors and lays their blocks out as a
//     disjoint union (block-diagonal matrix), then applies WithLink edges.
//     – BuildGraph:     BuildAdjacency followed by graph.New.
//   - Topology constructors (one block each, nodes numbered from the block start):
//     – Empty(n), Path(n), Cycle(n), Star(n), Wheel(n), Complete(n),
//     RandomSparse(n, p).
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – WithSeed, WithRand, WithWeightFn, WithConstantWeight,
//     WithUniformWeight, WithLink.
//   - Parsing helper:
//     – ParseSpec("path:10") → Constructor, used by the CLI.
//
// Guarantees:
//
//   - Determinism: same constructors, options and seed ⇒ identical matrices.
//   - Every emitted matrix is symmetric, non-negative and has a zero diagonal.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     constructors themselves return sentinel errors and never panic.
package builder
