// Package galeshapley provides a precise, allocation-lean implementation of
// seller-proposing deferred acceptance (Gale–Shapley) for one-to-one stable
// matching between n sellers and n buyers.
//
// Overview:
//
//   - Each side ranks every participant of the other side in a strict total
//     order. Sellers propose down their lists; a buyer holds the best offer
//     received so far and trades up whenever a strictly better seller arrives.
//   - The run ends when every seller is matched. The result is guaranteed to
//     be stable: no seller and buyer strictly prefer each other over their
//     assigned partners.
//   - Among all stable matchings of an instance, the returned one is
//     seller-optimal (every seller gets the best partner it has in any stable
//     matching) and buyer-pessimal.
//
// When to use:
//
//   - Two-sided assignment where both sides have full strict preferences:
//     order routing, resource-to-consumer pairing, mentor/mentee or
//     interviewer/candidate style allocations.
//   - As the deterministic core of simulations driven by builder-generated
//     random preference instances.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API
//     signature.
//   - WithProposalBudget: hard cap on total proposals, surfaced as a plain
//     error instead of an infinite loop when input is corrupted.
//   - WithVerbose: per-proposal stdout trace for walking through small
//     instances by hand.
//   - Verify: an independent O(n²) checker that confirms a result is a
//     perfect matching, that the cached buyer ranks agree with the lists,
//     and that no blocking pair exists.
//
// Performance and complexity:
//
//   - Time:  O(n²)
//   - The buyer rank table (rank[b][s] = position of seller s in buyer b's
//     list) is built once in O(n²), making each acceptance decision O(1).
//   - Each seller's cursor only moves forward, so at most n² proposals occur;
//     on valid input the true bound is n·(n−1)+1.
//   - Space: O(n²) for the rank table, O(n) for all per-participant state.
//
// Error handling (sentinel errors):
//
//   - ErrNilInstance:
//     Returned if the *prefs.Instance passed to Solve or Verify is nil.
//   - Wrapped prefs errors (prefs.ErrRaggedTable, prefs.ErrNotPermutation,
//     prefs.ErrSideMismatch):
//     Returned when the instance fails shape or permutation validation;
//     match them with errors.Is.
//   - ErrProposalBudget:
//     Returned if the configured proposal cap is exhausted mid-run.
//   - ErrInvariantViolation:
//     Returned if the engine detects an impossible internal state; validated
//     input cannot trigger it.
//   - ErrNilResult, ErrImperfectMatching, ErrBlockingPair:
//     Returned by Verify for nil, non-bijective, or unstable results.
//   - ErrBadProposalBudget:
//     Returned (via panic) if you set ProposalBudget to zero or a negative value.
//
// API reference:
//
//	func Solve(in *prefs.Instance, opts ...Option) (*Result, error)
//
//	  - in:   pointer to a prefs.Instance with equal-sized, permutation-valid sides.
//	  - opts: zero or more functional options:
//	      • WithProposalBudget(int): cap total proposals (default n²).
//	      • WithVerbose():           trace each proposal to stdout.
//	  - The Result carries SellerMatch, BuyerMatch, BuyerRank and the total
//	    Proposals count; the two match slices are mutual inverses.
//
//	func Verify(in *prefs.Instance, res *Result) error
//
//	  - Re-validates the instance, then checks totality, rank-cache agreement
//	    and stability of res against it. Returns nil only for a stable
//	    perfect matching.
//
// Determinism:
//
//   - Solve contains no randomness and no map iteration. The same instance
//     always produces the identical Result, proposal for proposal.
//
// Thread safety:
//
//   - Solve reads the instance and touches no shared state, so concurrent
//     calls on distinct instances are safe. Do not mutate an instance while
//     a call is in flight.
//
// See also:
//
//   - prefs.Instance / prefs.Table: the preference model and its validation.
//   - builder.BuildInstance: random, aligned, contested and rotated instance
//     generators for feeding this package.
//
// Thanks for choosing stablematch! We aim to provide rock-solid matching
// algorithms that blend mathematical rigor, performance, and clarity. If you
// spot any issue or have suggestions, please open an issue or PR on GitHub.
package galeshapley
