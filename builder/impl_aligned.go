// SPDX-License-Identifier: MIT
// Package: stablematch/builder
//
// impl_aligned.go - implementation of the Aligned() constructor.
//
// Canonical model:
//   - Every participant on both sides ranks the opposite side in ascending id
//     order: a single shared identity "master list".
//   - Unique stable matching: the diagonal (seller p with buyer p). In the
//     seller-proposing run, buyer 0 keeps seller 0, buyer 1 keeps seller 1,
//     and so on; each displaced seller falls through to the next buyer.
//
// Contract:
//   - Deterministic; no RNG consulted (cfg accepted for signature uniformity).
//   - Fill order: seller row p and buyer row p, p ascending.
//   - Never fails, never panics; the error return satisfies Constructor.
//
// Complexity:
//   - Time: O(n²). Space: O(1) extra (rows are written in place).

package builder

import (
	"github.com/katalvlaran/stablematch/prefs"
)

// Aligned returns a Constructor that fills every row of both tables with the
// identity permutation 0..n-1. Useful as a deterministic baseline: the solved
// matching is the diagonal and every acceptance rank is knowable by hand.
func Aligned() Constructor {
	return func(in *prefs.Instance, cfg builderConfig) error {
		// Write the identity directly into each pre-allocated row.
		n := in.Size()
		var p int
		for p = 0; p < n; p++ {
			resetIdentity(in.Sellers[p])
			resetIdentity(in.Buyers[p])
		}

		return nil
	}
}
