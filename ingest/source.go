// SPDX-License-Identifier: MIT

package ingest

import (
	"bufio"
	"io"
	"strings"
)

// maxLineBytes bounds a single dictionary line.
const maxLineBytes = 1 << 20

// Source yields raw dictionary lines.
type Source interface {
	// Next returns the next line; ok is false once the source is exhausted or failed.
	Next() (line string, ok bool)
	// Err returns the first read error, if any, after Next reported false.
	Err() error
}

// ReaderSource reads lines from an io.Reader.
type ReaderSource struct {
	sc *bufio.Scanner
}

// NewReaderSource wraps r. Lines end at '\n'; a trailing '\r' is dropped.
func NewReaderSource(r io.Reader) *ReaderSource {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	return &ReaderSource{sc: sc}
}

// Next implements Source.
func (s *ReaderSource) Next() (string, bool) {
	if !s.sc.Scan() {
		return "", false
	}

	return s.sc.Text(), true
}

// Err implements Source.
func (s *ReaderSource) Err() error { return s.sc.Err() }

// Sanitize trims surrounding whitespace and lowercases line. It reports false
// when the result is empty or contains anything but 'a'..'z'.
func Sanitize(line string) (string, bool) {
	w := strings.ToLower(strings.TrimSpace(line))
	if w == "" {
		return "", false
	}
	var i int
	for i = 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return "", false
		}
	}

	return w, true
}
