// Package stablematch is your in-memory toolkit for generating, solving,
// and auditing two-sided stable matching problems — from preference-table
// primitives to the full deferred-acceptance engine.
//
// 🚀 What is stablematch?
//
//	A small, deterministic, dependency-light library that brings together:
//		• Core primitives: preference tables, permutation validation, rank inverses
//		• Instance builders: Uniform, Aligned, Contested, Rotated families
//		• The engine: seller-proposing deferred acceptance (Gale–Shapley)
//		• Auditing: totality & stability verification of any finished matching
//		• A CLI: generate, solve and print an instance in one command
//
// ✨ Why choose stablematch?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, in-code contracts, no hidden state
//   - Deterministic – fixed seed ⇒ identical instance and identical matching
//   - Pure Go – no cgo, no persistence, no network
//
// Under the hood, everything is organized under three library subpackages
// plus one command:
//
//	prefs/       — preference Table & Instance types, validation, rank inverses
//	builder/     — deterministic instance constructors + seeded RNG utilities
//	galeshapley/ — the proposal/rejection engine, options, Result, Verify
//	cmd/sm/      — the command-line front end
//
// Quick ASCII example (n = 2):
//
//	    seller 0: [1 0]        buyer 0: [0 1]
//	    seller 1: [0 1]        buyer 1: [0 1]
//
//	deferred acceptance pairs seller 0 with buyer 1 and seller 1 with
//	buyer 0 — stable, and the best outcome the sellers can achieve.
//
// Dive into DESIGN.md for the full contract per package and the reasoning
// behind the queue-based scheduler and the rank-inverse precompute.
//
//	go get github.com/katalvlaran/stablematch
package stablematch
