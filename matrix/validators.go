// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for adjacency validation checks.
//  - Return sentinel errors wrapped with the validator tag so call sites can match
//    them with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSymmetric checks m[i][j] == m[j][i] for every pair of a square m.
// The comparison is against the transposed cell, never the cell itself.
// Errors: ErrNonSquare (via ValidateSquare), ErrAsymmetry naming the first pair.
// Complexity: O(n²).
func ValidateSymmetric(m *Dense) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	n := m.r
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if m.data[i*n+j] != m.data[j*n+i] {
				return fmt.Errorf("ValidateSymmetric: (%d,%d)=%d but (%d,%d)=%d: %w",
					i, j, m.data[i*n+j], j, i, m.data[j*n+i], ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateNonNegative checks that no entry is negative.
// Errors: ErrNilMatrix, ErrNegativeWeight naming the first offending cell.
// Complexity: O(r*c).
func ValidateNonNegative(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateNonNegative", err)
	}
	for off, v := range m.data {
		if v < 0 {
			return fmt.Errorf("ValidateNonNegative: (%d,%d)=%d: %w",
				off/m.c, off%m.c, v, ErrNegativeWeight)
		}
	}

	return nil
}

// ValidateAdjacency is the composite guard for undirected weighted adjacency:
// Square → NonNegative → Symmetric.
func ValidateAdjacency(m *Dense) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateAdjacency", err)
	}
	if err := ValidateNonNegative(m); err != nil {
		return validatorErrorf("ValidateAdjacency", err)
	}
	if err := ValidateSymmetric(m); err != nil {
		return validatorErrorf("ValidateAdjacency", err)
	}

	return nil
}
