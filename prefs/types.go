// Package prefs defines core types and sentinel errors
// for the prefs subpackage of github.com/katalvlaran/stablematch.
package prefs

import (
	"errors"
)

// Sentinel errors for preference-table validation.
var (
	// ErrRaggedTable indicates a table whose rows do not all have length n.
	ErrRaggedTable = errors.New("prefs: all rows must have length n")
	// ErrNotPermutation indicates a row that is not a permutation of [0,n).
	ErrNotPermutation = errors.New("prefs: preference row must be a permutation of [0,n)")
	// ErrSideMismatch indicates seller and buyer tables of differing sizes.
	ErrSideMismatch = errors.New("prefs: seller and buyer tables must have equal size")
)

// Table holds one side's preference lists. Row p is participant p's strict
// ranking of the entire opposite side: Table[p][0] is p's most preferred
// partner, Table[p][n-1] the least. A valid table is square and every row
// is a permutation of [0,n) — no repeats, no omissions, no ties.
type Table [][]int

// Instance couples the two sides of one stable matching problem.
// A valid instance has both tables valid and of equal size (see Validate).
type Instance struct {
	// Sellers[s] is seller s's ranking of all buyers.
	Sellers Table
	// Buyers[b] is buyer b's ranking of all sellers.
	Buyers Table
}

// Size returns the number of participants on this side (the row count).
// Complexity: O(1).
func (t Table) Size() int { return len(t) }

// Size returns the number of participants per side. The value is meaningful
// only for an equal-sided instance; Validate enforces that.
// Complexity: O(1).
func (in *Instance) Size() int { return len(in.Sellers) }

// Clone returns a deep copy of the table (every row cloned), so the caller
// can mutate the copy without aliasing the original rows.
// Complexity: O(n²) time and space.
func (t Table) Clone() Table {
	if t == nil {
		return nil
	}
	cp := make(Table, len(t))
	for p, row := range t {
		cp[p] = append([]int(nil), row...)
	}

	return cp
}
