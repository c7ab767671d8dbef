package main

import (
	"io"
	"os"
)

// binaryProbeSize is how much of the file prefix is inspected.
const binaryProbeSize = 5 * 1024

// isBinaryFile reports whether the prefix of the file contains a byte that
// cannot appear in plain text: a C0 control other than tab, LF, or CR, or
// DEL. The probe uses its own file handle so downstream readers see the
// whole file. An empty file or a probe error counts as text; the error is
// reported but never escalated.
func isBinaryFile(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		logError("isBinaryFile", path, err)
		return false
	}
	defer f.Close()

	buf := make([]byte, binaryProbeSize)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		logError("isBinaryFile", path, err)
		return false
	}
	for _, b := range buf[:n] {
		if (b < 0x20 && b != 0x09 && b != 0x0A && b != 0x0D) || b == 0x7F {
			return true
		}
	}
	return false
}
