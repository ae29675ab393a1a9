// Package galeshapley defines core types and configuration options
// for the seller-proposing deferred-acceptance stable matching algorithm.
//
// The algorithm pairs n sellers with n buyers, given strict full-length
// preference lists on both sides, so that no seller and buyer would both
// abandon their assigned partners for each other. Sellers propose down
// their lists in preference order; buyers tentatively hold the best offer
// seen so far and trade up whenever a better seller proposes.
//
// Complexity:
//
//	– Time:  O(n²)
//	   • Each seller advances through its list at most once (≤ n proposals per seller).
//	   • Each proposal is resolved in O(1) via the precomputed buyer rank table.
//	   • Rank-table construction is a single O(n²) pass over the buyer lists.
//	– Space: O(n²)
//	   • O(n²) for the buyer rank table.
//	   • O(n) for cursors, match arrays, the rank cache and the seller queue.
//
// Options:
//
//	– ProposalBudget: cap on the total number of proposals; 0 means the
//	  structural bound n², which a valid instance can never reach.
//	– Verbose:        if true, print a per-proposal trace to stdout.
//
// Errors (sentinel):
//
//	– ErrNilInstance       if the provided instance pointer is nil.
//	– ErrNilResult         if a nil result is handed to Verify.
//	– ErrProposalBudget    if the proposal budget is exhausted before all sellers are matched.
//	– ErrInvariantViolation if an unmatched seller has already exhausted its list.
//	– ErrImperfectMatching if a verified matching is not a mutual bijection.
//	– ErrBlockingPair      if a verified matching admits a blocking pair.
//	– ErrBadProposalBudget if ProposalBudget ≤ 0 is passed to WithProposalBudget.
//
// Example usage:
//
//	// Match two sellers with two buyers:
//	res, err := Solve(&prefs.Instance{
//	    Sellers: prefs.Table{{1, 0}, {0, 1}},
//	    Buyers:  prefs.Table{{0, 1}, {0, 1}},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("seller 0 with buyer %d\n", res.SellerMatch[0])
package galeshapley

import "errors"

// Sentinel errors returned by the stable matching implementation.
var (
	// ErrNilInstance indicates that a nil *prefs.Instance was passed in.
	ErrNilInstance = errors.New("galeshapley: instance is nil")

	// ErrNilResult indicates that a nil *Result was handed to Verify.
	ErrNilResult = errors.New("galeshapley: result is nil")

	// ErrProposalBudget indicates that the configured proposal budget was
	// exhausted while some seller was still unmatched. With the default
	// budget this cannot happen on a valid instance: deferred acceptance
	// issues at most n·(n−1)+1 proposals, strictly below the n² default.
	ErrProposalBudget = errors.New("galeshapley: proposal budget exhausted")

	// ErrInvariantViolation indicates that the engine caught itself in an
	// impossible state, such as an unmatched seller whose cursor already
	// walked off the end of its preference list. Validated input cannot
	// trigger it; it exists to fail loudly instead of indexing out of range.
	ErrInvariantViolation = errors.New("galeshapley: internal invariant violated")

	// ErrImperfectMatching indicates that a verified result is not a perfect
	// matching: some id is out of range, the two sides disagree on who holds
	// whom, or a cached acceptance rank contradicts the preference lists.
	ErrImperfectMatching = errors.New("galeshapley: matching is not a perfect pairing")

	// ErrBlockingPair indicates that a verified matching admits a seller and
	// a buyer who strictly prefer each other over their assigned partners.
	ErrBlockingPair = errors.New("galeshapley: matching admits a blocking pair")

	// ErrBadProposalBudget indicates that WithProposalBudget was called with
	// a non-positive cap, which would forbid even the first proposal.
	ErrBadProposalBudget = errors.New("galeshapley: ProposalBudget must be positive")
)

// Unmatched is the sentinel id stored in match and rank arrays for a
// participant that currently has no partner. Solve never returns it on a
// valid instance; it appears only in intermediate state and in hand-built
// results fed to Verify.
const Unmatched = -1

// Result holds the final pairing produced by Solve.
//
// SellerMatch – SellerMatch[s] is the buyer matched to seller s.
// BuyerMatch  – BuyerMatch[b] is the seller matched to buyer b.
// BuyerRank   – BuyerRank[b] is the rank (0 = favorite) that buyer b
//
//	assigns to its matched seller; the buyer-pessimal signature
//	of the seller-proposing variant shows up here.
//
// Proposals   – total number of proposals issued during the run.
//
// The two match slices are mutual inverses: BuyerMatch[SellerMatch[s]] == s
// for every seller s. All three slices have length n.
type Result struct {
	SellerMatch []int // seller id -> buyer id
	BuyerMatch  []int // buyer id -> seller id
	BuyerRank   []int // buyer id -> rank of its matched seller
	Proposals   int   // total proposals issued
}

// Options configures the behavior of Solve.
//
// ProposalBudget – cap on the total number of proposals across all sellers.
//
//	Must be > 0 when set explicitly. Default 0 resolves to n²
//	at solve time, an upper bound no valid instance reaches.
//
// Verbose        – if true, Solve prints one line per proposal to stdout,
//
//	useful when tracing small instances by hand.
type Options struct {
	ProposalBudget int  // Total proposal cap; 0 = structural bound n²
	Verbose        bool // Whether to trace each proposal to stdout
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithProposalBudget caps the total number of proposals Solve may issue
// before giving up with ErrProposalBudget. Deferred acceptance on a valid
// instance needs at most n·(n−1)+1 proposals, so a cap at or above that
// never fires; tighter caps are a way to bound runaway inputs in tests.
// Must pass a positive value; zero or negative cause ErrBadProposalBudget.
func WithProposalBudget(m int) Option {
	return func(o *Options) {
		if m <= 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadProposalBudget.Error())
		}
		o.ProposalBudget = m
	}
}

// WithVerbose enables a per-proposal trace on stdout: one line for each
// proposal issued and one for each time a buyer trades up. Off by default.
func WithVerbose() Option {
	return func(o *Options) {
		o.Verbose = true
	}
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults. Use this as a starting point for further functional-options
// overrides.
//
// Defaults:
//   - ProposalBudget: 0 (resolved to n² at solve time; never binding on valid input).
//   - Verbose:        false (no trace output).
func DefaultOptions() Options {
	return Options{
		ProposalBudget: 0,
		Verbose:        false,
	}
}
