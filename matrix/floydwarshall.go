// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Canonical dense APSP (Floyd–Warshall) with deterministic loop order.
//   - Produces an immutable Distances table from an adjacency Dense.
//
// Contract:
//   - Square adjacency; 0 off-diagonal means "no edge", >0 is the edge weight.
//   - Loop order is k → i → j and the k loop is strictly sequential: every k-pass
//     reads the complete matrix left by pass k-1.

package matrix

// Operation name constant for unified error wrapping.
const opFloydWarshall = "FloydWarshall"

// Distances is an immutable n×n table of shortest-path lengths.
// Unreachable pairs hold Inf.
type Distances struct {
	n    int
	data []Length // row-major, len == n*n
}

// Size returns n.
func (d *Distances) Size() int { return d.n }

// At returns the distance from i to j.
// Errors: ErrOutOfRange for invalid indices.
func (d *Distances) At(i, j int) (Length, error) {
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return Inf, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return d.data[i*d.n+j], nil
}

// Row returns a copy of row i. The caller must pass a valid index.
func (d *Distances) Row(i int) []Length {
	row := make([]Length, d.n)
	copy(row, d.data[i*d.n:(i+1)*d.n])

	return row
}

// RowsCopy materializes the table as freshly allocated row slices.
func (d *Distances) RowsCopy() [][]Length {
	out := make([][]Length, d.n)
	for i := 0; i < d.n; i++ {
		out[i] = d.Row(i)
	}

	return out
}

// initDistances converts adjacency (0 / w) into a fresh distance buffer:
//
//	diag = 0; off-diagonal 0 -> Inf; positive -> Finite(w).
//
// Complexity: O(n²).
func initDistances(adj *Dense) []Length {
	n := adj.r
	data := make([]Length, n*n) // zero value is Inf

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				// Distance from a node to itself is zero.
				data[i*n+j] = Finite(0)
				continue
			}
			if w := adj.data[i*n+j]; w > 0 {
				data[i*n+j] = Finite(w)
			}
		}
	}

	return data
}

// floydWarshallInPlace runs the APSP closure on a row-major Length buffer.
//
// Loop order is fixed (k → i → j) for deterministic accumulation.
// Time: O(n³); Extra space: O(1).
func floydWarshallInPlace(data []Length, n int) {
	var (
		k, i, j      int    // loop indices
		baseK, baseI int    // row base offsets for K and I in the flat buffer
		ik, kj, cand Length // d[i,k], d[k,j], candidate via k
	)

	for k = 0; k < n; k++ { // outer: pick intermediate vertex k
		baseK = k * n

		for i = 0; i < n; i++ { // middle: source vertex i
			ik = data[i*n+k]
			if ik.IsInf() { // i cannot reach k, no path via k can improve i→j
				continue
			}
			baseI = i * n

			for j = 0; j < n; j++ { // inner: destination vertex j
				kj = data[baseK+j]
				if kj.IsInf() {
					continue
				}
				cand = ik.Add(kj)
				if cand.Less(data[baseI+j]) { // strict improvement only
					data[baseI+j] = cand
				}
			}
		}
	}
}

// FloydWarshall computes all-pairs shortest paths over the adjacency matrix adj.
// adj is not modified.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: Time O(n³), Space O(n²).
func FloydWarshall(adj *Dense) (*Distances, error) {
	if err := ValidateSquare(adj); err != nil {
		return nil, matrixErrorf(opFloydWarshall, err)
	}

	n := adj.r
	data := initDistances(adj)
	floydWarshallInPlace(data, n)

	return &Distances{n: n, data: data}, nil
}
