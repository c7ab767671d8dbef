package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestCountLines(t *testing.T) {
	tests := []struct {
		data string
		want int64
	}{
		{"", 0},
		{"abc", 0},
		{"a b\n", 1},
		{"a b\nc\n", 2},
		{"\n\n\n", 3},
	}
	for _, tt := range tests {
		path := writeFile(t, "in.txt", []byte(tt.data))
		n, err := countLines(path)
		require.NoError(t, err)
		assert.Equal(t, tt.want, n, "input %q", tt.data)
	}
}

func TestCountLinesFallsBackOnMonsterLine(t *testing.T) {
	// A line longer than maxLineBytes defeats the text path and must be
	// retried as a raw newline scan.
	data := strings.Repeat("x", maxLineBytes+1) + "\n" + "y\n"
	path := writeFile(t, "long.txt", []byte(data))

	n, err := countLines(path)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestCountWords(t *testing.T) {
	tests := []struct {
		data string
		want int64
	}{
		{"", 0},
		{"go go go\n", 3},
		{"  leading and trailing  ", 3},
		{"tab\tsplit\nnewline split", 4},
		{"日本 語\n", 2},
	}
	for _, tt := range tests {
		path := writeFile(t, "in.txt", []byte(tt.data))
		n, err := countWords(path, false)
		require.NoError(t, err)
		assert.Equal(t, tt.want, n, "input %q", tt.data)
	}
}

func TestCountWordsMatchesFieldsOracle(t *testing.T) {
	data := "the quick  brown\tfox\n\njumps  over \t the lazy dog\n"
	path := writeFile(t, "ascii.txt", []byte(data))

	n, err := countWords(path, false)
	require.NoError(t, err)
	assert.Equal(t, int64(len(strings.Fields(data))), n)
}

func TestCountWordsBinary(t *testing.T) {
	// Only printable ASCII starts a word on the binary path; other bytes
	// neither start nor end one.
	data := []byte{0x00, 'h', 'i', ' ', 'w', 0x01, 'x', '\n', 'z'}
	path := writeFile(t, "bin", data)

	n, err := countWords(path, true)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestCountChars(t *testing.T) {
	path := writeFile(t, "utf8.txt", []byte("héllo\n"))

	n, err := countChars(path, false)
	require.NoError(t, err)
	assert.Equal(t, int64(6), n, "codepoints, not bytes")

	b, err := countBytes(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), b)
}

func TestCountCharsBinary(t *testing.T) {
	// Counted: 'a', the high-bit byte, and tab. Not counted: NUL and BEL.
	data := []byte{0x00, 'a', 0x07, 0x80, 0x09}
	path := writeFile(t, "bin", data)

	n, err := countChars(path, true)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestCountBytesMatchesStat(t *testing.T) {
	for _, size := range []int{0, 1, 4096, countBufSize + 17} {
		path := writeFile(t, "data", make([]byte, size))
		fi, err := os.Stat(path)
		require.NoError(t, err)

		n, err := countBytes(path)
		require.NoError(t, err)
		assert.Equal(t, fi.Size(), n)
	}
}

func TestCountersEmptyFile(t *testing.T) {
	path := writeFile(t, "empty", nil)
	for _, m := range []Metric{Lines, Words, Chars, Bytes} {
		n, err := countMetric(path, m, false)
		require.NoError(t, err, m.String())
		assert.Equal(t, int64(0), n, m.String())
	}
}

func TestCountMetricMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gone")
	for _, m := range []Metric{Lines, Words, Chars, Bytes} {
		_, err := countMetric(path, m, false)
		assert.Error(t, err, m.String())
	}
}

func TestCountersIdempotent(t *testing.T) {
	path := writeFile(t, "in.txt", []byte("some words\nacross two lines\n"))
	for _, m := range []Metric{Lines, Words, Chars, Bytes} {
		first, err := countMetric(path, m, false)
		require.NoError(t, err)
		second, err := countMetric(path, m, false)
		require.NoError(t, err)
		assert.Equal(t, first, second, m.String())
	}
}
