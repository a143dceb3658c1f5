// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_wheel.go - implementation of Wheel(n) = hub 0 + rim cycle 1..n-1.
//
// Contract:
//   • n ≥ 4 (rim needs at least 3 vertices).
//   • Emits rim edges first (i-(i+1) over 1..n-1, closing n-1→1), then spokes 0-i.

package builder

// Wheel returns a Constructor for the wheel W_n with hub node 0.
func Wheel(n int) Constructor {
	return func(cfg builderConfig) (*block, error) {
		if err := validateMin(methodWheel, n, MinWheelNodes); err != nil {
			return nil, err
		}
		b, err := newBlock(methodWheel, n)
		if err != nil {
			return nil, err
		}
		rim := n - 1
		for i := 0; i < rim; i++ {
			if err = b.connect(methodWheel, cfg, 1+i, 1+(i+1)%rim); err != nil {
				return nil, err
			}
		}
		for i := 1; i < n; i++ {
			if err = b.connect(methodWheel, cfg, 0, i); err != nil {
				return nil, err
			}
		}

		return b, nil
	}
}
