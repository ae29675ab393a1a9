// SPDX-License-Identifier: MIT
// Package: stablematch/builder
//
// impl_uniform.go - implementation of the Uniform() constructor.
//
// Canonical model:
//   - Every row of both tables is an independent uniformly random permutation
//     of [0,n): no correlation between rows, nor between the two sides.
//
// Contract:
//   - cfg.rng must be non-nil (else ErrNeedRandSource); uniform sampling is
//     meaningless without an explicit randomness policy.
//   - Fill order is stable and documented: seller row p, then buyer row p,
//     for p ascending — so a fixed seed pins the entire instance.
//   - One scratch buffer is reused across all 2n rows; it is reset to the
//     identity sequence before every shuffle. Uniformity therefore holds by
//     construction for each row independently.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n²) (2n shuffles of length n plus 2n row copies).
//   - Space: O(n) scratch (single shared buffer).
//
// Determinism:
//   - Fixed seed and options ⇒ identical tables (fixed draw order).

package builder

import (
	"fmt"

	"github.com/katalvlaran/stablematch/prefs"
)

// File-local constants (no magic literals; stable method tag).
const methodUniform = "Uniform"

// Uniform returns a Constructor that fills every row of both tables with an
// independent uniformly random permutation of [0,n).
func Uniform() Constructor {
	// The returned closure captures nothing; BuildInstance supplies (in, cfg).
	return func(in *prefs.Instance, cfg builderConfig) error {
		// 1) Validate the RNG contract early (fail fast, zero side-effects).
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodUniform, ErrNeedRandSource)
		}

		// 2) Allocate the single scratch buffer shared by all 2n shuffles.
		n := in.Size()
		scratch := make([]int, n)

		// 3) Fill rows in stable order: seller p, buyer p, p ascending.
		var p int
		for p = 0; p < n; p++ {
			// Reset to the identity, shuffle, copy out: seller row p.
			resetIdentity(scratch)
			shuffleIntsInPlace(scratch, cfg.rng)
			copy(in.Sellers[p], scratch)

			// Same sequence for buyer row p (fresh reset keeps rows i.i.d.).
			resetIdentity(scratch)
			shuffleIntsInPlace(scratch, cfg.rng)
			copy(in.Buyers[p], scratch)
		}

		// 4) Success: both tables are valid permutation tables.
		return nil
	}
}
