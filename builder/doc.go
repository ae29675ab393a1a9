// Package builder provides reusable “functional-options”-style building blocks
// for stable matching instances. It lives alongside the prefs package to
// centralize RNG policy, instance allocation, and the named preference-table
// families, keeping generation logic DRY, testable, and deterministic.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – Option:          a function that mutates builderConfig before use.
//     – builderConfig:   holds the RNG; resolved once per BuildInstance call.
//   - Instance constructors (Constructor implementations):
//     – Uniform:         every row an independent uniformly random permutation.
//     – Aligned:         every row the identity “master list” (deterministic).
//     – Contested:       one shared random master list per side (maximal
//     first-choice contention; long displacement chains).
//     – Rotated:         row p is the identity rotated left by p (collision-free
//     first proposals; solves in n proposals).
//   - RNG utilities:
//     – rngFromSeed:     seed policy (0 → fixed default seed).
//     – deriveSeed/deriveRNG: SplitMix64 mixing for independent substreams.
//     – shuffleIntsInPlace:   in-place Fisher–Yates shuffle.
//     – resetIdentity:        reset a buffer to 0..n-1 before each shuffle.
//
// Guarantees:
//
//   - Determinism: same n, options, and constructor order ⇒ identical instance.
//   - Row uniformity: Uniform resets the scratch buffer to the identity before
//     every shuffle, so each row's distribution is uniform by construction
//     rather than by an argument about shuffling an existing permutation.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel runtime errors (ErrBadSize, ErrNeedRandSource,
//     ErrConstructFailed) wrapped with method context for errors.Is filtering.
//   - Documented algorithmic complexity per constructor (O(n²) fills).
//
// See individual function documentation for detailed contracts, panic
// conditions, parameter descriptions, and performance notes.
package builder
