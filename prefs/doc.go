// Package prefs models the data side of two-sided stable matching:
// strict preference tables, their validation, and rank inverses.
//
// What:
//
//   - Table wraps one side's preference lists ([][]int, one row per participant).
//   - Instance couples the seller and buyer tables of one problem.
//   - Validate detects rows that are not permutations of [0,n).
//   - Inverse materializes id→rank lookup for O(1) rank queries.
//
// Why:
//
//   - Market design: seller/buyer, student/school, resident/hospital pairing.
//   - Malformed rows are a contract violation here, caught explicitly —
//     never undefined behavior inside the matching engine downstream.
//
// Complexity:
//
//   - Validate: O(n²), Memory: O(n) scratch.
//   - Inverse:  O(n²), Memory: O(n²).
//   - Clone:    O(n²), Memory: O(n²).
//
// Errors:
//
//   - ErrRaggedTable: a row's length differs from the table size.
//   - ErrNotPermutation: a row repeats, omits, or exceeds [0,n).
//   - ErrSideMismatch: seller and buyer tables differ in size.
package prefs
