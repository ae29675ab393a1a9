package galeshapley

import (
	"fmt"

	"github.com/katalvlaran/stablematch/prefs"
)

// Solve runs seller-proposing deferred acceptance on the given instance and
// returns the seller-optimal stable matching.
//
// Steps:
//  1. Apply functional options on top of DefaultOptions.
//  2. Validate the instance: nil check, equal sides, every row a permutation.
//  3. Build the runner state: buyer rank table, cursors, match arrays and the
//     FIFO queue of unmatched sellers (ids 0..n−1 in ascending order).
//  4. Drain the queue, one proposal per dequeue, until every seller holds a
//     match or a guard (budget, invariant) trips.
//  5. Package the final arrays into a Result.
//
// The run is fully deterministic: identical instances yield identical
// results, proposal for proposal. On a valid instance the error return is
// always nil unless a WithProposalBudget cap below n·(n−1)+1 is supplied.
func Solve(in *prefs.Instance, opts ...Option) (*Result, error) {
	// 1) Merge caller options into the defaults.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Reject nil or malformed input before allocating any state.
	if err := validateInstance(in); err != nil {
		return nil, err
	}

	// 3) Precompute ranks and seed the queue.
	r := newRunner(in, cfg)

	// 4) Main loop: one dequeued seller, one proposal, per iteration.
	if err := r.run(); err != nil {
		return nil, err
	}

	// 5) Hand the arrays over; the runner is discarded afterwards.
	return r.result(), nil
}

// runner carries the mutable state of one deferred-acceptance execution.
// It is created per Solve call and never shared.
type runner struct {
	sellers prefs.Table // seller preference lists, read-only
	rank    prefs.Table // rank[b][s] = position of seller s in buyer b's list
	opts    Options     // resolved configuration
	n       int         // number of participants per side

	cursor      []int // cursor[s] = next index in sellers[s] to propose to
	sellerMatch []int // seller -> buyer, or Unmatched
	buyerMatch  []int // buyer -> seller, or Unmatched
	buyerRank   []int // buyer -> rank of its current seller, or Unmatched
	queue       []int // FIFO of sellers waiting to propose

	proposals int // proposals issued so far
	budget    int // resolved proposal cap (opts.ProposalBudget or n²)
}

// newRunner allocates all per-run state for a validated instance.
// The buyer rank table is the one O(n²) precomputation; it turns every
// "does b prefer s over its current partner?" question into two array reads.
func newRunner(in *prefs.Instance, cfg Options) *runner {
	n := in.Size()

	// 0 means "no explicit cap": fall back to the structural bound n².
	budget := cfg.ProposalBudget
	if budget == 0 {
		budget = n * n
	}

	r := &runner{
		sellers:     in.Sellers,
		rank:        in.Buyers.Inverse(),
		opts:        cfg,
		n:           n,
		cursor:      make([]int, n),
		sellerMatch: make([]int, n),
		buyerMatch:  make([]int, n),
		buyerRank:   make([]int, n),
		queue:       make([]int, n),
		budget:      budget,
	}

	var i int
	for i = 0; i < n; i++ {
		r.sellerMatch[i] = Unmatched
		r.buyerMatch[i] = Unmatched
		r.buyerRank[i] = Unmatched
		r.queue[i] = i // ascending ids fix the (otherwise arbitrary) proposal order
	}

	return r
}

// run drains the queue of unmatched sellers. Every dequeue issues exactly
// one proposal, so termination follows from the cursor bound: no seller can
// propose more than n times, hence at most n² iterations in total.
func (r *runner) run() error {
	for len(r.queue) > 0 {
		if err := r.step(); err != nil {
			return err
		}
	}

	return nil
}

// step dequeues one seller and lets it propose to the next buyer on its
// list. Exactly one of three outcomes follows: the buyer was free and
// accepts, the buyer trades up and its previous seller re-enters the queue,
// or the buyer rejects and the proposing seller re-enters the queue.
func (r *runner) step() error {
	// 1) Pop the longest-waiting unmatched seller.
	s := r.queue[0]
	r.queue = r.queue[1:]

	// 2) Budget guard: refuse to issue a proposal past the cap.
	if r.proposals == r.budget {
		return fmt.Errorf("galeshapley: seller %d still unmatched after %d proposals: %w",
			s, r.proposals, ErrProposalBudget)
	}

	// 3) Invariant guard: a queued seller must have buyers left to try.
	//    An exhausted list here would mean every buyer rejected s while
	//    holding someone better, impossible when both sides rank everyone.
	if r.cursor[s] == r.n {
		return fmt.Errorf("galeshapley: seller %d exhausted its list while unmatched: %w",
			s, ErrInvariantViolation)
	}

	// 4) Propose to the favorite not yet tried. The cursor advances no
	//    matter the outcome: a seller never proposes to the same buyer twice.
	b := r.sellers[s][r.cursor[s]]
	r.cursor[s]++
	r.proposals++

	rk := r.rank[b][s]
	if r.opts.Verbose {
		fmt.Printf("propose: seller %d -> buyer %d (rank %d for the buyer)\n", s, b, rk)
	}

	// 5) Resolve the proposal against the buyer's current engagement.
	held := r.buyerMatch[b]
	switch {
	case held == Unmatched:
		// Free buyer: accept unconditionally.
		r.engage(s, b, rk)
	case rk < r.buyerRank[b]:
		// Strictly better seller: b trades up, the incumbent resumes
		// proposing from where its cursor left off.
		r.sellerMatch[held] = Unmatched
		r.engage(s, b, rk)
		r.queue = append(r.queue, held)
		if r.opts.Verbose {
			fmt.Printf("switch:  buyer %d drops seller %d for seller %d\n", b, held, s)
		}
	default:
		// Rejection: s goes back to the queue and will try its next choice.
		r.queue = append(r.queue, s)
	}

	return nil
}

// engage records the tentative pairing of seller s and buyer b, caching the
// rank b assigns to s so later challengers are compared in O(1).
func (r *runner) engage(s, b, rk int) {
	r.sellerMatch[s] = b
	r.buyerMatch[b] = s
	r.buyerRank[b] = rk
}

// result packages the final arrays. Called only after run() succeeded, so
// every entry is a concrete id and the two match slices are mutual inverses.
func (r *runner) result() *Result {
	return &Result{
		SellerMatch: r.sellerMatch,
		BuyerMatch:  r.buyerMatch,
		BuyerRank:   r.buyerRank,
		Proposals:   r.proposals,
	}
}
