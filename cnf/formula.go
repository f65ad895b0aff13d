// SPDX-License-Identifier: MIT

// Package cnf holds CNF formulas as lists of signed DIMACS literals and reads and
// writes them in DIMACS text form.
//
// A literal +k means "variable k is true", -k means "variable k is false";
// variables are 1-indexed and 0 never appears inside a clause.
package cnf

import (
	"fmt"

	"github.com/go-air/gini/z"
)

// Formula is a conjunction of clauses; each clause is a disjunction of literals.
// Example: (x1 ∨ x2) ∧ (¬x2 ∨ x3) is Formula{{1, 2}, {-2, 3}}.
type Formula [][]int

// MaxLiteral is the largest absolute literal a formula may hold: gini packs a
// variable and its sign into a 32-bit z.Lit.
const MaxLiteral = 1<<31 - 1

// Validate checks that the formula has at least one clause, no zero literal and
// no literal beyond ±MaxLiteral.
// Errors: ErrEmptyFormula, ErrZeroLiteral, ErrLiteralOutOfRange.
func (f Formula) Validate() error {
	if len(f) == 0 {
		return ErrEmptyFormula
	}
	for i, c := range f {
		for j, l := range c {
			if l == 0 {
				return fmt.Errorf("clause #%d literal #%d: %w", i, j, ErrZeroLiteral)
			}
			if l > MaxLiteral || l < -MaxLiteral {
				return fmt.Errorf("clause #%d literal #%d (%d): %w", i, j, l, ErrLiteralOutOfRange)
			}
		}
	}

	return nil
}

// ValidateTwoCNF additionally requires every clause to hold exactly two literals.
// Errors: ErrEmptyFormula, ErrZeroLiteral, ErrLiteralOutOfRange, ErrNotTwoCNF.
func (f Formula) ValidateTwoCNF() error {
	if err := f.Validate(); err != nil {
		return err
	}
	for i, c := range f {
		if len(c) != 2 {
			return fmt.Errorf("clause #%d has %d literals: %w", i, len(c), ErrNotTwoCNF)
		}
	}

	return nil
}

// MaxVar returns the largest variable mentioned by the formula
// (z.Var(0), the null variable, for a formula without literals).
// Only meaningful for a formula that passes Validate.
func (f Formula) MaxVar() z.Var {
	var hi z.Var
	for _, c := range f {
		for _, l := range c {
			if l == 0 {
				continue
			}
			if v := z.Dimacs2Lit(l).Var(); v > hi {
				hi = v
			}
		}
	}

	return hi
}

// NumVariables returns the largest absolute literal value, the variable count
// DIMACS headers report.
func (f Formula) NumVariables() int {
	return int(f.MaxVar())
}

// Lits converts a clause to gini literals; every literal must be within
// ±MaxLiteral.
func Lits(clause []int) []z.Lit {
	out := make([]z.Lit, len(clause))
	for i, l := range clause {
		out[i] = z.Dimacs2Lit(l)
	}

	return out
}
