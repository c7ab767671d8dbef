package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode"
)

// countBufSize is the chunk size for raw byte scans.
const countBufSize = 1 << 20

// maxLineBytes caps how long a single line may be on the text path before
// line splitting is declared structurally impossible and the counter falls
// back to a raw byte scan.
const maxLineBytes = 1 << 20

// errFallback tags a structural decode failure: the text-mode path cannot
// make sense of the file and the raw-byte path should be tried instead.
// True I/O errors are never wrapped with it.
var errFallback = errors.New("text decoding failed")

// forEachChunk streams the file through fn in countBufSize reads.
func forEachChunk(path string, fn func([]byte)) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	buf := make([]byte, countBufSize)
	for {
		n, err := f.Read(buf)
		if n > 0 {
			fn(buf[:n])
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// countLines counts newline separators, decoding the file line by line.
// When line splitting fails structurally it retries with a raw scan for
// the newline byte, ignoring encoding.
func countLines(path string) (int64, error) {
	n, err := countTextLines(path)
	if errors.Is(err, errFallback) {
		return countNewlineBytes(path)
	}
	return n, err
}

func countTextLines(path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	r := bufio.NewReaderSize(f, maxLineBytes)
	var n int64
	for {
		_, err := r.ReadSlice('\n')
		switch {
		case err == nil:
			n++
		case err == io.EOF:
			return n, nil
		case err == bufio.ErrBufferFull:
			return 0, fmt.Errorf("splitting %s into lines: %w", path, errFallback)
		default:
			return 0, err
		}
	}
}

func countNewlineBytes(path string) (int64, error) {
	var n int64
	err := forEachChunk(path, func(chunk []byte) {
		n += int64(bytes.Count(chunk, []byte{'\n'}))
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// countWords counts maximal runs of non-whitespace codepoints. Binary
// files use a byte-level approximation instead: only printable ASCII can
// start or continue a word, and ASCII whitespace bytes end one, so counts
// on arbitrary binary content are best-effort.
func countWords(path string, binary bool) (int64, error) {
	if binary {
		return countWordBytes(path)
	}
	n, err := countTextWords(path)
	if errors.Is(err, errFallback) {
		return countWordBytes(path)
	}
	return n, err
}

func countTextWords(path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	r := bufio.NewReaderSize(f, 64*1024)
	var n int64
	inWord := false
	for {
		c, _, err := r.ReadRune()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return 0, err
		}
		if unicode.IsSpace(c) {
			inWord = false
		} else if !inWord {
			inWord = true
			n++
		}
	}
}

func countWordBytes(path string) (int64, error) {
	var n int64
	inWord := false
	err := forEachChunk(path, func(chunk []byte) {
		for _, b := range chunk {
			switch {
			case b >= 0x21 && b <= 0x7E:
				if !inWord {
					inWord = true
					n++
				}
			case b == 0x09 || b == 0x0A || b == 0x0B || b == 0x0C || b == 0x0D || b == 0x20:
				inWord = false
			}
		}
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// countChars counts decoded codepoints, not bytes. For binary files it
// approximates by counting bytes that are either in the printable range
// (tab through tilde) or have the high bit set; multibyte sequences in
// unmarked binary content therefore count once per byte.
func countChars(path string, binary bool) (int64, error) {
	if binary {
		return countCharBytes(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	r := bufio.NewReaderSize(f, 64*1024)
	var n int64
	for {
		_, _, err := r.ReadRune()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return 0, err
		}
		n++
	}
}

func countCharBytes(path string) (int64, error) {
	var n int64
	err := forEachChunk(path, func(chunk []byte) {
		for _, b := range chunk {
			if (b >= 0x09 && b <= 0x7E) || b >= 0x80 {
				n++
			}
		}
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// countBytes is the raw byte length of the file, summed over chunked
// reads. No decoding.
func countBytes(path string) (int64, error) {
	var n int64
	err := forEachChunk(path, func(chunk []byte) {
		n += int64(len(chunk))
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// countMetric routes one metric to its counter.
func countMetric(path string, m Metric, binary bool) (int64, error) {
	switch m {
	case Lines:
		return countLines(path)
	case Words:
		return countWords(path, binary)
	case Chars:
		return countChars(path, binary)
	default:
		return countBytes(path)
	}
}
