// Package matrix offers the dense storage and distance engine behind graph metrics.
//
// The matrix package provides:
//
//   - Dense, a row-major int64 adjacency store with bounds-checked At/Set and a
//     copy-based Without(k) that deletes one vertex's row and column.
//   - Length, an optional shortest-path length whose zero value is Inf.
//   - FloydWarshall, the all-pairs shortest-path closure producing an immutable
//     Distances table (k → i → j, strictly sequential over k).
//   - Validators (ValidateSquare, ValidateSymmetric, ValidateNonNegative,
//     ValidateAdjacency) returning the package sentinels.
//
// Matrices are best for dense or small graphs where O(V²) memory and
// O(V³) closure time are acceptable.
//
// Errors
//
//   - ErrBadShape, ErrOutOfRange, ErrNonSquare, ErrAsymmetry,
//     ErrNegativeWeight, ErrNilMatrix; always match with errors.Is.
package matrix
