package prefs

import "fmt"

// Validate checks that the table is square (every row of length Size())
// and that each row is a permutation of [0,n): no out-of-range entries,
// no duplicates — and therefore no omissions, since n distinct in-range
// entries fill all n slots.
//
// A nil or empty table is valid (n=0: nobody to rank).
//
// Complexity: O(n²) time, O(n) scratch space.
func (t Table) Validate() error {
	n := t.Size()
	// seen[id] marks ids already encountered within the current row.
	seen := make([]bool, n)
	var p, k, id int
	for p = 0; p < n; p++ {
		// 1) Shape: every row must rank the entire opposite side.
		if len(t[p]) != n {
			return fmt.Errorf("row %d has length %d, want %d: %w", p, len(t[p]), n, ErrRaggedTable)
		}

		// 2) Reset the marks for this row (reused scratch, O(n)).
		for k = 0; k < n; k++ {
			seen[k] = false
		}

		// 3) Permutation scan: range and duplicate checks in one pass.
		for k = 0; k < n; k++ {
			id = t[p][k]
			if id < 0 || id >= n {
				return fmt.Errorf("row %d: entry %d out of range [0,%d): %w", p, id, n, ErrNotPermutation)
			}
			if seen[id] {
				return fmt.Errorf("row %d: duplicate entry %d: %w", p, id, ErrNotPermutation)
			}
			seen[id] = true
		}
	}

	return nil
}

// Validate checks both sides and their mutual size agreement.
// Order: seller table first, then buyer table, then the equal-size
// requirement; the first failure is returned with row context attached.
// Complexity: O(n²) time, O(n) scratch space.
func (in *Instance) Validate() error {
	if err := in.Sellers.Validate(); err != nil {
		return fmt.Errorf("sellers: %w", err)
	}
	if err := in.Buyers.Validate(); err != nil {
		return fmt.Errorf("buyers: %w", err)
	}
	if in.Sellers.Size() != in.Buyers.Size() {
		return fmt.Errorf("sellers n=%d, buyers n=%d: %w", in.Sellers.Size(), in.Buyers.Size(), ErrSideMismatch)
	}

	return nil
}
