// Package ucd streams case-fold records from CaseFolding.txt, the
// case-folding data file of the Unicode Character Database.
//
// Only common (C) and full (F) entries are surfaced; simple (S) and
// Turkic (T) entries are skipped on purpose, so that common and full
// folding together describe one total mapping. Malformed data lines are
// errors: a generator must stop rather than compile a partial table.
package ucd

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// headerPattern matches the required first line of the file, for example
// "# CaseFolding-16.0.0.txt".
var headerPattern = regexp.MustCompile(`^# (\w+)-(.+)\.(\w+)`)

// Reader streams (source, targets) fold records from a CaseFolding.txt
// source. It implements the RecordReader contract of package unifold:
// Next returns io.EOF when the stream is exhausted.
type Reader struct {
	scanner *bufio.Scanner
	version string
	line    int
}

func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// Version returns the table version extracted from the header line. It is
// set once the first line has been consumed by Next.
func (r *Reader) Version() string { return r.version }

// Next returns the next kept record. The returned target slice is owned
// by the caller.
func (r *Reader) Next() (rune, []rune, error) {
	for r.scanner.Scan() {
		r.line++
		text := r.scanner.Text()
		if r.line == 1 {
			m := headerPattern.FindStringSubmatch(text)
			if m == nil {
				return 0, nil, fmt.Errorf("missing version header, first line is %q", text)
			}
			r.version = m[2]
			continue
		}
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		source, targets, keep, err := parseLine(text)
		if err != nil {
			return 0, nil, fmt.Errorf("line %d: %w", r.line, err)
		}
		if !keep {
			continue
		}
		return source, targets, nil
	}
	if err := r.scanner.Err(); err != nil {
		return 0, nil, err
	}
	if r.line == 0 {
		return 0, nil, fmt.Errorf("empty input, missing version header")
	}
	return 0, nil, io.EOF
}

// parseLine decodes one data line of the shape
//
//	SOURCE; STATUS; TARGET( TARGET)*; # comment
//
// keep is false for statuses other than C and F.
func parseLine(text string) (source rune, targets []rune, keep bool, err error) {
	fields := strings.Split(text, "; ")
	if len(fields) < 3 {
		return 0, nil, false, fmt.Errorf("expected at least 3 fields, got %d", len(fields))
	}
	if status := fields[1]; status != "C" && status != "F" {
		return 0, nil, false, nil
	}
	source, err = parseHex(fields[0])
	if err != nil {
		return 0, nil, false, err
	}
	parts := strings.Split(fields[2], " ")
	if len(parts) < 1 || len(parts) > 3 {
		return 0, nil, false, fmt.Errorf("fold of %#04x has %d targets", source, len(parts))
	}
	targets = make([]rune, len(parts))
	for i, p := range parts {
		targets[i], err = parseHex(p)
		if err != nil {
			return 0, nil, false, err
		}
	}
	return source, targets, true, nil
}

func parseHex(s string) (rune, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("bad hexadecimal code point %q", s)
	}
	if v > 0x10FFFF {
		return 0, fmt.Errorf("code point %#x out of range", v)
	}
	return rune(v), nil
}
