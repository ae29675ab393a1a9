package prefs

// Inverse returns the rank table of t: Inverse()[p][id] is the position of
// id within row p, turning "how does p rank id" from an O(n) scan into a
// single O(1) lookup. Consumers that answer many rank queries (one per
// proposal in deferred acceptance) precompute this once up front.
//
// Precondition: t is a valid table (see Validate). Rows of an invalid
// table index out of range or leave stale zeros behind.
//
// Complexity: O(n²) time and space.
func (t Table) Inverse() Table {
	n := t.Size()
	inv := make(Table, n)
	var p, k int
	for p = 0; p < n; p++ {
		inv[p] = make([]int, n)
		for k = 0; k < n; k++ {
			// Row p places id t[p][k] at rank k.
			inv[p][t[p][k]] = k
		}
	}

	return inv
}
