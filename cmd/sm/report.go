package main

import (
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/stablematch/galeshapley"
	"github.com/katalvlaran/stablematch/prefs"
)

// The report layout is kept byte-compatible with the original C tool:
// space-separated ids with a trailing space per row, the pairing on one
// line with a four-space gap between entries, and whole seconds.

// writePreferences dumps both preference tables, sellers first.
func writePreferences(w io.Writer, in *prefs.Instance) {
	fmt.Fprintln(w, "Pref lists - sellers")
	writeTable(w, "seller", in.Sellers)
	fmt.Fprintln(w, "Pref lists - buyers")
	writeTable(w, "buyer", in.Buyers)
}

// writeTable renders one side, one participant per line.
func writeTable(w io.Writer, side string, t prefs.Table) {
	var p, k int
	for p = 0; p < len(t); p++ {
		fmt.Fprintf(w, "%s %d: ", side, p)
		for k = 0; k < len(t[p]); k++ {
			fmt.Fprintf(w, "%d ", t[p][k])
		}
		fmt.Fprintln(w)
	}
}

// writeMatches renders the final pairing on a single line, seller order.
// Seller order doubles as buyer order up to inversion, the arrays being
// mutual inverses.
func writeMatches(w io.Writer, res *galeshapley.Result) {
	fmt.Fprintln(w, "Matches, ordered by both proposers and receivers.")
	var s int
	for s = 0; s < len(res.SellerMatch); s++ {
		fmt.Fprintf(w, "seller %d with buyer %d;    ", s, res.SellerMatch[s])
	}
	fmt.Fprintln(w)
}

// writeElapsed reports whole elapsed seconds, truncated.
func writeElapsed(w io.Writer, d time.Duration) {
	fmt.Fprintf(w, "Time taken: %d seconds \n", int64(d.Seconds()))
}
