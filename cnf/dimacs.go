// SPDX-License-Identifier: MIT
// Package: runcsp/cnf
//
// File: dimacs.go
// Role: DIMACS CNF text adapter.
// Format:
//   - Lines whose first token starts with 'c' (comment) or 'p' (header) are skipped;
//     the header's counts are not trusted, the formula is taken as written.
//   - A line starting with '%' ends the clause section (SATLIB convention).
//   - Every other non-blank line is a list of signed integers terminated by 0;
//     the terminating 0 is dropped. Each such line is one clause.

package cnf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// maxLineBytes bounds a single DIMACS line.
const maxLineBytes = 1 << 20

// Read parses DIMACS CNF text from r.
// Errors: ErrMalformedLine or ErrLiteralOutOfRange (with the 1-based line
// number), or the reader's error.
// Complexity: O(size of input).
func Read(r io.Reader) (Formula, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		f      Formula
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0][0] {
		case 'c', 'p':
			continue
		case '%':
			return f, nil
		}

		last := fields[len(fields)-1]
		if last != "0" {
			return nil, fmt.Errorf("Read: line %d: missing terminating 0: %w", lineNo, ErrMalformedLine)
		}
		clause := make([]int, 0, len(fields)-1)
		for _, tok := range fields[:len(fields)-1] {
			l, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("Read: line %d: token %q: %w", lineNo, tok, ErrMalformedLine)
			}
			if l > MaxLiteral || l < -MaxLiteral {
				return nil, fmt.Errorf("Read: line %d: literal %d: %w", lineNo, l, ErrLiteralOutOfRange)
			}
			clause = append(clause, l)
		}
		f = append(f, clause)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}

	return f, nil
}

// ReadFile parses the DIMACS CNF file at path.
func ReadFile(path string) (Formula, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile: %w", err)
	}
	defer file.Close()

	f, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("ReadFile(%s): %w", path, err)
	}

	return f, nil
}

// Write emits f in DIMACS form: a "p cnf <vars> <clauses>" header, then one
// "l1 l2 ... 0" line per clause.
// Errors: ErrEmptyFormula, ErrZeroLiteral, ErrLiteralOutOfRange, or the
// writer's error.
func Write(w io.Writer, f Formula) error {
	if err := f.Validate(); err != nil {
		return fmt.Errorf("Write: %w", err)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "p cnf %d %d\n", f.NumVariables(), len(f))
	buf := make([]byte, 0, 64)
	for _, c := range f {
		buf = buf[:0]
		for _, l := range c {
			buf = strconv.AppendInt(buf, int64(l), 10)
			buf = append(buf, ' ')
		}
		buf = append(buf, '0', '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("Write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("Write: %w", err)
	}

	return nil
}

// WriteFile writes f to path in DIMACS form, replacing any existing file.
func WriteFile(path string, f Formula) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	if err = Write(file, f); err != nil {
		file.Close()
		return fmt.Errorf("WriteFile(%s): %w", path, err)
	}

	return file.Close()
}
