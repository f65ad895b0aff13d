// SPDX-License-Identifier: MIT
// Package: runcsp/converters
//
// cnf.go — 2-CNF formula → max-2-SAT instance.
//
// Clause classification for [a, b]:
//   - mixed signs        → IMPL, canonicalized so the negative literal comes first
//   - both positive      → OR
//   - both negative      → NAND
//
// Variable k (1-indexed in DIMACS) becomes instance variable k-1; the instance
// holds as many variables as the largest absolute literal.

package converters

import (
	"fmt"

	"github.com/go-air/gini/z"

	"github.com/katalvlaran/runcsp/cnf"
	"github.com/katalvlaran/runcsp/instance"
	"github.com/katalvlaran/runcsp/language"
)

const methodCNFToInstance = "CNFToInstance"

// CNFToInstance encodes the 2-CNF formula f over language.Max2SAT().
//
// Errors: cnf.ErrEmptyFormula, cnf.ErrZeroLiteral, cnf.ErrLiteralOutOfRange,
// cnf.ErrNotTwoCNF.
// Complexity: O(m) for m clauses.
func CNFToInstance(f cnf.Formula) (*instance.Instance, error) {
	if err := f.ValidateTwoCNF(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodCNFToInstance, err)
	}

	clauses := map[string][]instance.Clause{
		language.OR:   {},
		language.IMPL: {},
		language.NAND: {},
	}
	for _, c := range f {
		lits := cnf.Lits(c)
		a, b := lits[0], lits[1]
		rel := classify(a, b)
		if rel == language.IMPL && a.IsPos() {
			a, b = b, a
		}
		clauses[rel] = append(clauses[rel], instance.Clause{varIndex(a), varIndex(b)})
	}

	in, err := instance.New(language.Max2SAT(), f.NumVariables(), clauses)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCNFToInstance, err)
	}

	return in, nil
}

// classify maps a 2-literal clause to its max-2-SAT relation name.
func classify(a, b z.Lit) string {
	switch {
	case a.IsPos() != b.IsPos():
		return language.IMPL
	case a.IsPos():
		return language.OR
	default:
		return language.NAND
	}
}

// varIndex is the 0-based instance variable of a DIMACS literal.
func varIndex(l z.Lit) int {
	return int(l.Var()) - 1
}
