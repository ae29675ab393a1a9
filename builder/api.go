// SPDX-License-Identifier: MIT
// Package: stablematch/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildInstance(n, bopts, cons...). Allocates the
//     instance, resolves cfg, runs cons in order.
//   - All public factories are declared in impl_*.go files (one per family).
//   - Functional options (Option) resolve into an immutable builderConfig
//     (no global state).
//   - Determinism: same n/options/seed and constructor order ⇒ identical
//     instances.
//   - Safety: never panic at runtime; return sentinel errors from
//     constructors; option constructors alone may panic on meaningless input.

package builder

import (
	"fmt"

	"github.com/katalvlaran/stablematch/prefs"
)

// Constructor fills a pre-allocated instance deterministically using the
// resolved builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Write complete rows: after a successful run, both tables of the
//     instance pass prefs validation.
//   - Preserve determinism for the same config and call order.
//
// Rationale: isolates each instance family behind a uniform function type.
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(in *prefs.Instance, cfg builderConfig) error

// BuildInstance allocates an n-sized instance (both tables with n rows of
// length n), resolves the builder configuration from bopts, and applies all
// constructors in order. Any constructor error is wrapped with the context
// "BuildInstance: %w" and returned immediately; no partial cleanup is
// attempted.
//
// An instance built with no constructors is an all-zeros canvas and does
// NOT validate; apply at least one constructor to obtain usable tables.
//
// Rationale:
//   - Single public entry-point ensures consistent option resolution &
//     error wrapping.
//   - Enforces deterministic composition order of constructors.
//
// Complexity:
//   - Allocation: O(n²) time and space (2n rows of n ints).
//   - Resolving options: O(len(bopts)) time, O(1) space.
//   - Applying K constructors: Σ cost of each constructor; wrapper overhead O(K).
//
// Errors:
//   - n < 0 → ErrBadSize.
//   - nil constructor → ErrConstructFailed.
//   - Constructor errors are wrapped via %w; callers should branch with
//     errors.Is against builder sentinels (ErrNeedRandSource, ...).
func BuildInstance(n int, bopts []Option, cons ...Constructor) (*prefs.Instance, error) {
	// Reject negative sizes before any allocation.
	if n < minInstanceSize {
		return nil, fmt.Errorf("BuildInstance: n=%d < min=%d: %w", n, minInstanceSize, ErrBadSize)
	}

	// Resolve deterministic builder configuration from functional options (O(len(bopts))).
	cfg := newBuilderConfig(bopts...)

	// Allocate the empty canvas once; constructors only write row contents.
	in := newEmptyInstance(n)

	// Apply each constructor sequentially to preserve deterministic order & effects.
	for i, fn := range cons {
		// Defensive: reject a nil constructor to avoid a panic later (programmer error).
		if fn == nil {
			return nil, fmt.Errorf("BuildInstance: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		// Execute the constructor. Implementations must not panic; they must return errors.
		if err := fn(in, cfg); err != nil {
			// Wrap once at the API boundary; inner layers already carry method context.
			return nil, fmt.Errorf("BuildInstance: %w", err)
		}
	}

	// Success: return the fully constructed instance (deterministic for equal inputs).
	return in, nil
}

// newEmptyInstance allocates both tables with n rows of length n, zeroed.
// Complexity: O(n²) time and space.
func newEmptyInstance(n int) *prefs.Instance {
	in := &prefs.Instance{
		Sellers: make(prefs.Table, n),
		Buyers:  make(prefs.Table, n),
	}
	var p int
	for p = 0; p < n; p++ {
		in.Sellers[p] = make([]int, n)
		in.Buyers[p] = make([]int, n)
	}

	return in
}

// =============================================================================
// Instance factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Constructor closure. The closure MUST:
//   - Fill every row of both tables (rows are pre-allocated by BuildInstance).
//   - Emit rows in a stable, documented order (seller row p, then buyer row p).
//   - Return only sentinel errors; NEVER panic at runtime.

// Uniform fills every row with an independent uniformly random permutation.
// Requires cfg.rng != nil. Complexity: O(n²); O(n) scratch.
//func Uniform() Constructor

// Aligned fills every row with the identity permutation 0..n-1.
// Deterministic; no RNG. Complexity: O(n²); O(1) scratch.
//func Aligned() Constructor

// Contested fills each side with one shared random master list drawn from a
// per-side substream. Requires cfg.rng != nil. Complexity: O(n²); O(n) scratch.
//func Contested() Constructor

// Rotated fills row p with the identity rotated left by p.
// Deterministic; no RNG. Complexity: O(n²); O(1) scratch.
//func Rotated() Constructor
