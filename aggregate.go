package main

import "errors"

// orderResults reassembles the collected results into the order the paths
// were given on the command line, whatever order the tasks finished in.
// A missing first row means the collector lost a task and any total built
// on top would be corrupt, so that is fatal. Later gaps are skipped.
func orderResults(byPath map[string]CountResult, order []string) []fileResult {
	if len(order) > 0 {
		if _, ok := byPath[order[0]]; !ok {
			logFatal("aggregate", order[0], errors.New("no result collected for first input file"))
		}
	}

	results := make([]fileResult, 0, len(order))
	for _, path := range order {
		counts, ok := byPath[path]
		if !ok {
			continue
		}
		results = append(results, fileResult{path: path, counts: counts})
	}
	return results
}

// totalResult sums the rows column-wise. Unavailable cells contribute
// nothing to their column but do not block the others.
func totalResult(results []fileResult, columns int) CountResult {
	total := make(CountResult, columns)
	for _, r := range results {
		for i, v := range r.counts {
			if i < columns && v != countUnavailable {
				total[i] += v
			}
		}
	}
	return total
}
