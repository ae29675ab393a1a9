package galeshapley

import (
	"fmt"

	"github.com/katalvlaran/stablematch/prefs"
)

// Verify checks a result against its instance from scratch, trusting
// nothing the engine cached. It confirms, in order:
//
//  1. the instance itself is valid (same checks as Solve);
//  2. totality — all three slices have length n, SellerMatch maps into
//     [0,n) and BuyerMatch is its exact inverse, which forces a bijection;
//  3. rank agreement — BuyerRank[b] equals the position of BuyerMatch[b]
//     in buyer b's preference list;
//  4. stability — no seller s and buyer b prefer each other strictly over
//     their assigned partners.
//
// The scan is O(n²): for each seller it walks only the prefix of its list
// above its own match, and each candidate buyer is judged by one rank-table
// lookup. Verify is independent of Solve on purpose: tests that trust a
// checker built from the same code as the engine prove nothing.
func Verify(in *prefs.Instance, res *Result) error {
	// 1) Same input gate as Solve, then the result pointer.
	if err := validateInstance(in); err != nil {
		return err
	}
	if res == nil {
		return ErrNilResult
	}

	n := in.Size()
	if len(res.SellerMatch) != n || len(res.BuyerMatch) != n || len(res.BuyerRank) != n {
		return fmt.Errorf("galeshapley: result arrays sized %d/%d/%d, instance has n=%d: %w",
			len(res.SellerMatch), len(res.BuyerMatch), len(res.BuyerRank), n, ErrImperfectMatching)
	}

	// 2) Totality. SellerMatch into [0,n) plus BuyerMatch∘SellerMatch = id
	//    makes SellerMatch injective, hence bijective on a finite set; the
	//    inverse direction then holds for every buyer automatically.
	var s, b int
	for s = 0; s < n; s++ {
		b = res.SellerMatch[s]
		if b < 0 || b >= n {
			return fmt.Errorf("galeshapley: seller %d matched to %d, want a buyer in [0,%d): %w",
				s, b, n, ErrImperfectMatching)
		}
		if res.BuyerMatch[b] != s {
			return fmt.Errorf("galeshapley: seller %d holds buyer %d, yet buyer %d holds seller %d: %w",
				s, b, b, res.BuyerMatch[b], ErrImperfectMatching)
		}
	}

	// 3) Rank agreement: the cached acceptance rank must be exactly the
	//    position of the matched seller in the buyer's list.
	buyerRank := in.Buyers.Inverse()
	for b = 0; b < n; b++ {
		if got, want := res.BuyerRank[b], buyerRank[b][res.BuyerMatch[b]]; got != want {
			return fmt.Errorf("galeshapley: buyer %d caches rank %d for seller %d, its list says %d: %w",
				b, got, res.BuyerMatch[b], want, ErrImperfectMatching)
		}
	}

	// 4) Stability. For seller s, only buyers strictly above its own match
	//    in its list can block; such a buyer b blocks iff it ranks s
	//    strictly above its current seller.
	sellerRank := in.Sellers.Inverse()
	var k int
	for s = 0; s < n; s++ {
		for k = 0; k < sellerRank[s][res.SellerMatch[s]]; k++ {
			b = in.Sellers[s][k]
			if buyerRank[b][s] < res.BuyerRank[b] {
				return fmt.Errorf("galeshapley: seller %d and buyer %d prefer each other over their partners: %w",
					s, b, ErrBlockingPair)
			}
		}
	}

	return nil
}
