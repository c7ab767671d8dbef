package main

import (
	"io"
	"os"
	"unicode"
	"unicode/utf8"
)

// stdinReady reports whether standard input has piped or redirected data.
// It is a best-effort probe: it never reads, so it never blocks on an
// interactive terminal.
func stdinReady(in *os.File) bool {
	fi, err := in.Stat()
	if err != nil {
		logError("stdinReady", in.Name(), err)
		return false
	}
	return fi.Mode()&os.ModeCharDevice == 0
}

// countStream computes every requested metric in one pass over in. The
// input is buffered in full first, which gives the byte total for free and
// lets the rune scan start from the beginning. The returned slice holds
// the nonzero counts in fixed order lines, words, chars, bytes; a metric
// that was not requested stays zero and is dropped, as is a requested
// metric that counted nothing.
func countStream(in io.Reader, wantLines, wantWords, wantChars, wantBytes bool) ([]int64, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, err
	}

	var lines, words, chars, byteTotal int64
	if wantBytes {
		byteTotal = int64(len(data))
	}

	inWord := false
	for len(data) > 0 {
		c, size := utf8.DecodeRune(data)
		data = data[size:]
		if wantLines && c == '\n' {
			lines++
		}
		if wantWords {
			if unicode.IsSpace(c) {
				inWord = false
			} else if !inWord {
				inWord = true
				words++
			}
		}
		if wantChars {
			chars++
		}
	}

	counts := make([]int64, 0, 4)
	for _, n := range []int64{lines, words, chars, byteTotal} {
		if n != 0 {
			counts = append(counts, n)
		}
	}
	return counts, nil
}
