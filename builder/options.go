// SPDX-License-Identifier: MIT
// Package: stablematch/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"math/rand" // RNG source for stochastic constructors
)

// Option customizes the behavior of a constructor by mutating a
// builderConfig instance before instance construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
// math/rand.Rand is not goroutine-safe: do not share one RNG across
// concurrent builds (mint substreams with deriveRNG instead).
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		// Attach the RNG; callers decide the seed policy.
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Seed 0 maps to the fixed default seed, so the zero value still yields a
// reproducible stream. Use this in tests and examples to lock outcomes.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		// Seeded source → reproducible shuffles/draws.
		c.rng = rngFromSeed(seed)
	}
}
