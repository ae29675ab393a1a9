// SPDX-License-Identifier: MIT
// Package: stablematch/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng = nil (no randomness configured; stochastic constructors reject
//     this with ErrNeedRandSource rather than inventing a hidden seed).

package builder

import (
	"math/rand" // RNG for stochastic constructors
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness configured”.
	rng *rand.Rand
}

// Shared constants (no magic numbers in constructor bodies).
const (
	// minInstanceSize is the smallest admissible side size; n=0 is the
	// valid degenerate instance with two empty tables.
	minInstanceSize = 0
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last-wins semantics).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...Option) builderConfig {
	// Start with strict, deterministic defaults.
	cfg := builderConfig{
		rng: nil, // no RNG unless explicitly set
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	// Return by value to encourage immutability for callers.
	return cfg
}
