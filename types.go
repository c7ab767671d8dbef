package main

// Metric identifies one of the four counting modes.
type Metric int

const (
	Lines Metric = iota
	Words
	Chars
	Bytes
)

// String returns the lowercase metric name used in flags and diagnostics.
func (m Metric) String() string {
	switch m {
	case Lines:
		return "lines"
	case Words:
		return "words"
	case Chars:
		return "chars"
	case Bytes:
		return "bytes"
	default:
		return "unknown"
	}
}

// countUnavailable marks a metric that could not be computed for a file.
// Unavailable cells are dropped from printed rows and excluded from totals.
const countUnavailable int64 = -1

// CountResult holds one count per requested metric, in column order.
type CountResult []int64

// fileResult pairs one input file with its counts.
type fileResult struct {
	path   string
	counts CountResult
}

// normalizeMetrics maps the four flags to the requested metric set in
// canonical column order (lines, words, chars, bytes). No flags at all
// means the classic default of lines, words, bytes.
func normalizeMetrics(lines, words, chars, bytes bool) []Metric {
	metrics := make([]Metric, 0, 4)
	if lines {
		metrics = append(metrics, Lines)
	}
	if words {
		metrics = append(metrics, Words)
	}
	if chars {
		metrics = append(metrics, Chars)
	}
	if bytes {
		metrics = append(metrics, Bytes)
	}
	if len(metrics) == 0 {
		metrics = []Metric{Lines, Words, Bytes}
	}
	return metrics
}

func hasMetric(metrics []Metric, m Metric) bool {
	for _, x := range metrics {
		if x == m {
			return true
		}
	}
	return false
}

// unavailableResult is a row where every requested metric failed.
func unavailableResult(n int) CountResult {
	counts := make(CountResult, n)
	for i := range counts {
		counts[i] = countUnavailable
	}
	return counts
}
