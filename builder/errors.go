// SPDX-License-Identifier: MIT
// Package: stablematch/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations SHOULD attach context using `%w`.
//   • Constructors MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithRand...).

package builder

import (
	"errors"
)

// ErrBadSize indicates that the requested side size n is negative.
// Classification: Validation error (parameters).
// Typical origins: BuildInstance(n, ...) with n < 0.
// Usage: if errors.Is(err, ErrBadSize) { /* report invalid size */ }.
var ErrBadSize = errors.New("builder: invalid instance size")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
// Typical origins: Uniform/Contested without RNG.
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that BuildInstance could not run a constructor
// at all (nil Constructor in the argument list).
// Usage: if errors.Is(err, ErrConstructFailed) { /* fix the call site */ }.
var ErrConstructFailed = errors.New("builder: construction failed")

// --- Implementation Notes ----------------------------------------------------
//
// 1) Wrapping style (required):
//      return fmt.Errorf("%s: rng is required: %w", methodUniform, ErrNeedRandSource)
//    This preserves the sentinel for errors.Is while adding a deterministic
//    context prefix "Uniform: rng is required".
//
// 2) Priority (tie-break guidance when multiple validations fail):
//    • ErrBadSize          — size/domain checks first (n).
//    • ErrConstructFailed  — then constructor-list integrity.
//    • ErrNeedRandSource   — then RNG presence inside stochastic constructors.
//
// 3) Testing guidance:
//    Use table tests asserting errors.Is(err, ErrX). Avoid matching error
//    strings. Provide edge cases: n=-1, nil constructor, Uniform without RNG.
//
// 4) Compatibility:
//    These names and messages are stable and form part of the public contract.
