// SPDX-License-Identifier: MIT
// Package: builder
//
// validators.go - parameter contracts shared by constructors.

package builder

import "fmt"

// validateMin ensures got ≥ min, else ErrTooFewVertices with method context.
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [0,1], else ErrInvalidProbability.
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}
