// SPDX-License-Identifier: MIT
// Package: runcsp/builder
//
// random_cnf.go — random 2-CNF formulas for max-2-SAT datasets.
//
// Each clause mentions two distinct variables drawn like RandomInstance pairs;
// each literal is negated with probability 1/2.

package builder

import (
	"fmt"

	"github.com/katalvlaran/runcsp/cnf"
)

const (
	methodRandom2CNF = "Random2CNF"
	minCNFClauses    = 1
)

// Random2CNF samples a formula with nClauses 2-literal clauses over variables
// 1..nVariables.
//
// Errors: ErrTooFewVertices (nVariables < 2 or nClauses < 1), ErrNeedRandSource.
// Complexity: O(nClauses).
func Random2CNF(nVariables, nClauses int, opts ...BuilderOption) (cnf.Formula, error) {
	cfg := newBuilderConfig(opts...)

	if nVariables < minPairVariables || nClauses < minCNFClauses {
		return nil, fmt.Errorf("%s: n_variables=%d n_clauses=%d: %w",
			methodRandom2CNF, nVariables, nClauses, ErrTooFewVertices)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandom2CNF, ErrNeedRandSource)
	}

	f := make(cnf.Formula, nClauses)
	for k := range f {
		u, v := distinctPair(cfg.rng, nVariables)
		f[k] = []int{literal(u+1, cfg.rng.Intn(2) == 1), literal(v+1, cfg.rng.Intn(2) == 1)}
	}

	return f, nil
}

func literal(variable int, negated bool) int {
	if negated {
		return -variable
	}

	return variable
}
