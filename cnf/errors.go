// SPDX-License-Identifier: MIT
// Package: runcsp/cnf
//
// errors.go — sentinel errors for formulas and the DIMACS adapter.

package cnf

import "errors"

var (
	// ErrEmptyFormula indicates a formula without clauses, from which no
	// variable count can be derived.
	ErrEmptyFormula = errors.New("cnf: empty formula")

	// ErrZeroLiteral indicates a literal equal to 0 inside a clause.
	ErrZeroLiteral = errors.New("cnf: zero literal")

	// ErrLiteralOutOfRange indicates a literal whose variable does not fit a
	// gini z.Var, i.e. |l| > MaxLiteral.
	ErrLiteralOutOfRange = errors.New("cnf: literal out of range")

	// ErrNotTwoCNF indicates a clause that does not have exactly two literals
	// where a 2-CNF formula is required.
	ErrNotTwoCNF = errors.New("cnf: clause is not a 2-literal clause")

	// ErrMalformedLine indicates a DIMACS clause line with a non-integer token
	// or without its terminating 0.
	ErrMalformedLine = errors.New("cnf: malformed DIMACS line")
)
