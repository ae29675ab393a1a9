// SPDX-License-Identifier: MIT
// Package: stablematch/builder
//
// impl_rotated.go - implementation of the Rotated() constructor.
//
// Canonical model:
//   - Row p of both tables is the identity rotated left by p:
//     [p, p+1, ..., n-1, 0, ..., p-1].
//   - Every seller's first choice is a distinct buyer (seller p → buyer p),
//     so the seller-proposing run accepts every first proposal: exactly n
//     proposals, no displacements. The polar opposite of Contested.
//
// Contract:
//   - Deterministic; no RNG consulted.
//   - Fill order: seller row p and buyer row p, p ascending.
//   - Never fails, never panics; the error return satisfies Constructor.
//
// Complexity:
//   - Time: O(n²). Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/stablematch/prefs"
)

// Rotated returns a Constructor that fills row p of both tables with the
// identity permutation rotated left by p. Collision-free first proposals make
// it the fastest-solving family: a clean lower-bound fixture for benchmarks.
func Rotated() Constructor {
	return func(in *prefs.Instance, cfg builderConfig) error {
		n := in.Size()
		var p, k int
		for p = 0; p < n; p++ {
			for k = 0; k < n; k++ {
				// Entry k of row p names participant (p+k) mod n.
				in.Sellers[p][k] = (p + k) % n
				in.Buyers[p][k] = (p + k) % n
			}
		}

		return nil
	}
}
