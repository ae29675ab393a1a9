// SPDX-License-Identifier: MIT
// Package: stablematch/builder
//
// impl_contested.go - implementation of the Contested() constructor.
//
// Canonical model:
//   - All sellers share ONE random master list over buyers; all buyers share
//     ONE random master list over sellers. Every seller's first choice is the
//     same buyer, so each proposal round displaces an incumbent and the
//     engine walks the longest rejection chains an instance of size n admits.
//   - With master lists on both sides the stable matching is unique: buyers
//     are claimed in master order by the sellers the buyers rank highest.
//
// Contract:
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - The two master lists are drawn from independent substreams derived from
//     cfg.rng (SplitMix64 mixing), so the sides stay decorrelated even though
//     a single seed drives the whole build.
//   - Fill order: seller master first, buyer master second, then row copies
//     p ascending.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n²) (two shuffles plus 2n row copies). Space: O(n) scratch.
//
// Determinism:
//   - Fixed seed ⇒ identical master lists ⇒ identical instance.

package builder

import (
	"fmt"

	"github.com/katalvlaran/stablematch/prefs"
)

// File-local constants (stable method tag and substream identifiers).
const (
	methodContested = "Contested"
	// Substream ids decorrelate the per-side master draws.
	contestedSellerStream uint64 = 0
	contestedBuyerStream  uint64 = 1
)

// Contested returns a Constructor that gives each side a single shared random
// master list. Maximal first-choice contention makes it the natural stress
// instance for displacement-heavy engine runs and for proposal-count bounds.
func Contested() Constructor {
	return func(in *prefs.Instance, cfg builderConfig) error {
		// 1) Validate the RNG contract early.
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodContested, ErrNeedRandSource)
		}

		// 2) Draw one master list per side from independent substreams.
		n := in.Size()
		sellerMaster := make([]int, n)
		resetIdentity(sellerMaster)
		shuffleIntsInPlace(sellerMaster, deriveRNG(cfg.rng, contestedSellerStream))

		buyerMaster := make([]int, n)
		resetIdentity(buyerMaster)
		shuffleIntsInPlace(buyerMaster, deriveRNG(cfg.rng, contestedBuyerStream))

		// 3) Copy the masters into every row of the respective table.
		var p int
		for p = 0; p < n; p++ {
			copy(in.Sellers[p], sellerMaster)
			copy(in.Buyers[p], buyerMaster)
		}

		// 4) Success: both tables valid, maximally contended.
		return nil
	}
}
