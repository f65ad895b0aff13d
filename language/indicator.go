// SPDX-License-Identifier: MIT
// Package: runcsp/language
//
// indicator.go — dense characteristic table of one binary relation.
//
// Storage is a flat row-major []bool of length d*d, so the lookup used in the
// conflict-counting hot loop is a single multiply-add.

package language

import "fmt"

// Indicator is the d×d characteristic matrix of a relation:
// At(a, b) is true iff (a, b) is one of the relation's declared pairs.
type Indicator struct {
	n    int    // domain size; the table is n×n
	data []bool // row-major, len == n*n
}

// newIndicator builds the table for pairs over a domain of size n.
// Stage 1 (Validate): every pair must lie in [0, n)².
// Stage 2 (Execute): set data[a*n+b] for each listed pair.
// Complexity: O(n² + len(pairs)) time, O(n²) memory.
func newIndicator(n int, name string, pairs []Pair) (*Indicator, error) {
	data := make([]bool, n*n)
	for i, p := range pairs {
		a, b := p[0], p[1]
		if a < 0 || a >= n || b < 0 || b >= n {
			return nil, fmt.Errorf("relation %q pair #%d (%d,%d) outside [0,%d): %w",
				name, i, a, b, n, ErrMalformedLanguage)
		}
		data[a*n+b] = true
	}

	return &Indicator{n: n, data: data}, nil
}

// Size returns the domain size d of the d×d table.
func (m *Indicator) Size() int {
	return m.n
}

// At reports whether (a, b) is admitted by the relation.
// Returns ErrOutOfRange if either value lies outside [0, d).
// Complexity: O(1).
func (m *Indicator) At(a, b int) (bool, error) {
	if a < 0 || a >= m.n || b < 0 || b >= m.n {
		return false, fmt.Errorf("Indicator.At(%d,%d): domain %d: %w", a, b, m.n, ErrOutOfRange)
	}

	return m.data[a*m.n+b], nil
}

// Admits is the unchecked form of At for hot loops.
// Callers must guarantee 0 <= a, b < Size(); otherwise the result is undefined
// and the call may panic.
func (m *Indicator) Admits(a, b int) bool {
	return m.data[a*m.n+b]
}

// Count returns the number of admitted pairs (distinct true entries).
func (m *Indicator) Count() int {
	c := 0
	for _, v := range m.data {
		if v {
			c++
		}
	}

	return c
}

// String renders the table one row per line, 1 for admitted pairs.
func (m *Indicator) String() string {
	buf := make([]byte, 0, m.n*(2*m.n+2))
	for a := 0; a < m.n; a++ {
		buf = append(buf, '[')
		for b := 0; b < m.n; b++ {
			if b > 0 {
				buf = append(buf, ' ')
			}
			if m.data[a*m.n+b] {
				buf = append(buf, '1')
			} else {
				buf = append(buf, '0')
			}
		}
		buf = append(buf, ']', '\n')
	}

	return string(buf)
}
