package main

import (
	"fmt"
	"io"
	"strings"
)

// columnWidth is the cell width for each printed count.
const columnWidth = 9

// formatRow renders one output row: every available count left-aligned in
// a columnWidth cell, then the trailing name. Unavailable cells are
// omitted rather than printed. The name is empty for standard input and
// "total" for the aggregate row.
func formatRow(counts CountResult, name string) string {
	var b strings.Builder
	for _, v := range counts {
		if v >= 0 {
			fmt.Fprintf(&b, "%-*d", columnWidth, v)
		}
	}
	b.WriteString(name)
	return b.String()
}

// printResults writes one row per file in input order, plus a total row
// when one was computed.
func printResults(w io.Writer, results []fileResult, total CountResult) {
	for _, r := range results {
		fmt.Fprintln(w, formatRow(r.counts, r.path))
	}
	if total != nil {
		fmt.Fprintln(w, formatRow(total, "total"))
	}
}
