// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits edges in stable order i-(i+1)%n for i=0..n-1.
//
// Complexity: O(n²) block allocation + O(n) edges.

package builder

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(cfg builderConfig) (*block, error) {
		if err := validateMin(methodCycle, n, MinCycleNodes); err != nil {
			return nil, err
		}
		b, err := newBlock(methodCycle, n)
		if err != nil {
			return nil, err
		}
		// for i==n-1, connect to 0 to close the ring.
		for i := 0; i < n; i++ {
			if err = b.connect(methodCycle, cfg, i, (i+1)%n); err != nil {
				return nil, err
			}
		}

		return b, nil
	}
}
